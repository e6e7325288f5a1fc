package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Pages struct{}

func NewPages() *Pages { return &Pages{} }

func (h *Pages) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// NotFoundLanding serves the landing page body with a 404 status for
// unmatched non-API routes.
func (h *Pages) NotFoundLanding(c *gin.Context) {
	c.HTML(http.StatusNotFound, "index.html", gin.H{})
}
