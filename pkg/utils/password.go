package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a bcrypt hash suitable for the ADMIN_PASSWORD
// environment value when deployments prefer not to store it in clear.
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
