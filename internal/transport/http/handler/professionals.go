package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petcare/internal/service"
	"petcare/internal/transport/http/response"
)

type Professionals struct {
	directory *service.Directory
}

func NewProfessionals(directory *service.Directory) *Professionals {
	return &Professionals{directory: directory}
}

// List answers the public catalog query. The body is a bare JSON array;
// an empty result is [] with 200.
func (h *Professionals) List(c *gin.Context) {
	out, err := h.directory.ListProfessionals(c.Query("profession"), c.Query("city"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.MsgListFailed)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Professionals) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		// A non-numeric id can never match a row.
		response.Error(c, http.StatusNotFound, response.MsgProfNotFound)
		return
	}
	detail, err := h.directory.GetProfessional(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProfessionalNotFound) {
			response.Error(c, http.StatusNotFound, response.MsgProfNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, response.MsgDetailFailed)
		return
	}
	c.JSON(http.StatusOK, detail)
}
