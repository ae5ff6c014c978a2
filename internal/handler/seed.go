package handler

import (
	"context"
	"net/http"

	"datagen-api/internal/export"

	"github.com/gin-gonic/gin"
)

// SeedHandler handles requests that load a generated batch straight into
// the configured database.
type SeedHandler struct {
	service DataGenService
	store   SeedStore
}

// Store interface for dependency injection
type SeedStore interface {
	ExecScript(ctx context.Context, script string) error
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(svc DataGenService, store SeedStore) *SeedHandler {
	return &SeedHandler{service: svc, store: store}
}

// SeedRequest is the POST /seed body.
type SeedRequest struct {
	Locale   string   `json:"locale" binding:"required"`
	Quantity int      `json:"quantity"`
	Fields   []string `json:"fields"`
	Table    string   `json:"table"`
}

// Seed handles POST /seed requests: generate a batch, render it as a
// single-table SQL script and execute it against the database.
// @Summary Generate records and insert them into the database
// @Accept json
// @Produce json
// @Param request body SeedRequest true "seeding parameters"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Router /seed [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	records, err := h.service.Generate(req.Locale, req.Quantity, req.Fields)
	if err != nil {
		status := http.StatusInternalServerError
		if isCallerError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	script, err := h.service.ExportSQL(records, req.Fields, export.ModeSingleTable, req.Table)
	if err != nil {
		status := http.StatusInternalServerError
		if isCallerError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.ExecScript(c.Request.Context(), script); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed database"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"inserted": len(records)})
}
