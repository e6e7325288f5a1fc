package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare/internal/service"
	"petcare/internal/transport/http/response"
)

type Accounts struct {
	accounts *service.Accounts
}

func NewAccounts(accounts *service.Accounts) *Accounts {
	return &Accounts{accounts: accounts}
}

type registerIn struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	UserType   string `json:"user_type"`
	Profession string `json:"profession"`
	City       string `json:"city"`
	Region     string `json:"region"`
}

func (h *Accounts) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgRequiredUser)
		return
	}
	id, err := h.accounts.Register(service.RegisterInput{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		UserType:   in.UserType,
		Profession: in.Profession,
		City:       in.City,
		Region:     in.Region,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			response.Error(c, http.StatusBadRequest, response.MsgRequiredUser)
		case errors.Is(err, service.ErrEmailTaken):
			response.Error(c, http.StatusBadRequest, response.MsgEmailTaken)
		default:
			response.Error(c, http.StatusInternalServerError, response.MsgRegisterFailed)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": response.MsgRegisterOK,
		"user_id": id,
	})
}
