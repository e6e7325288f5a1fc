package response

// User-facing messages, kept in one place. The wording is part of the
// public contract and pinned by the API tests.
const (
	MsgInternal         = "Errore interno del server"
	MsgEndpointNotFound = "Endpoint non trovato"
	MsgRequiredUser     = "Nome e email sono obbligatori"
	MsgEmailTaken       = "Email già registrata"
	MsgRegisterFailed   = "Errore durante la registrazione"
	MsgRegisterOK       = "Registrazione completata con successo"
	MsgListFailed       = "Errore nel recupero dei professionisti"
	MsgDetailFailed     = "Errore nel recupero del professionista"
	MsgProfNotFound     = "Professionista non trovato"
	MsgBookingRequired  = "Campi obbligatori mancanti"
	MsgBookingFailed    = "Errore durante la creazione della prenotazione"
	MsgBookingOK        = "Prenotazione creata con successo"
	MsgStatsFailed      = "Errore nel recupero delle statistiche"
	MsgUnauthorized     = "Non autorizzato"
	MsgBadCredentials   = "Credenziali non valide"
)
