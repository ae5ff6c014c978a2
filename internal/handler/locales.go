package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LocalesHandler handles locale discovery requests
type LocalesHandler struct {
	service LocaleLister
}

// Service interface for dependency injection
type LocaleLister interface {
	ListLocales() []string
}

// NewLocalesHandler creates a new locales handler
func NewLocalesHandler(svc LocaleLister) *LocalesHandler {
	return &LocalesHandler{service: svc}
}

// List handles GET /locales requests
// @Summary List available locales
// @Produce json
// @Success 200 {array} string
// @Router /locales [get]
func (h *LocalesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListLocales())
}
