package handler

import (
	"errors"
	"fmt"
	"net/http"

	"datagen-api/internal/export"
	"datagen-api/internal/models"

	"github.com/gin-gonic/gin"
)

// GenerateHandler handles batch generation and export requests
type GenerateHandler struct {
	service DataGenService
}

// Service interface for dependency injection
type DataGenService interface {
	Generate(locale string, count int, fields []string) ([]*models.Record, error)
	ExportCSV(records []*models.Record, fields []string) string
	ExportSQL(records []*models.Record, fields []string, mode export.SQLMode, table string) (string, error)
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(svc DataGenService) *GenerateHandler {
	return &GenerateHandler{service: svc}
}

// GenerateRequest is the POST /generate body.
type GenerateRequest struct {
	Locale   string   `json:"locale" binding:"required"`
	Quantity int      `json:"quantity"`
	Fields   []string `json:"fields"`
	Format   string   `json:"format"` // "csv" (default) or "sql"
	Mode     string   `json:"mode"`   // sql only: "two-table" (default) or "single-table"
	Table    string   `json:"table"`  // sql single-table target name
}

// Generate handles POST /generate requests, streaming the exported batch
// back as a file attachment.
// @Summary Generate a batch of identity records as CSV or SQL
// @Accept json
// @Produce plain
// @Param request body GenerateRequest true "generation parameters"
// @Success 200 {string} string "exported batch"
// @Failure 400 {object} map[string]string
// @Router /generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
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

	if req.Format == "sql" {
		mode, err := parseSQLMode(req.Mode)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		script, err := h.service.ExportSQL(records, req.Fields, mode, req.Table)
		if err != nil {
			status := http.StatusInternalServerError
			if isCallerError(err) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		attach(c, fmt.Sprintf("generated_data_%s.sql", req.Locale))
		c.Data(http.StatusOK, "application/sql", []byte(script))
		return
	}

	fields := req.Fields
	if len(fields) == 0 {
		fields = recordFields(records)
	}
	csv := h.service.ExportCSV(records, fields)
	attach(c, fmt.Sprintf("generated_data_%s.csv", req.Locale))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// recordFields collects the union of field names across records, keeping
// first-appearance order, for requests that do not name fields.
func recordFields(records []*models.Record) []string {
	var fields []string
	seen := make(map[string]bool)
	for _, record := range records {
		for _, key := range record.Keys() {
			if !seen[key] {
				seen[key] = true
				fields = append(fields, key)
			}
		}
	}
	return fields
}

// parseSQLMode maps the request's mode string onto an export mode.
func parseSQLMode(mode string) (export.SQLMode, error) {
	switch mode {
	case "", "two-table":
		return export.ModeTwoTable, nil
	case "single-table":
		return export.ModeSingleTable, nil
	}
	return 0, fmt.Errorf("unknown sql mode %q, expected \"two-table\" or \"single-table\"", mode)
}

// attach marks the response as a downloadable file.
func attach(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
}

// isCallerError reports whether the error is the caller's fault and should
// map to a 400 rather than a 500.
func isCallerError(err error) bool {
	var (
		invalidArg *models.InvalidArgumentError
		unknown    *models.UnknownLocaleError
		rangeErr   *models.RangeError
		notFound   *models.FieldNotFoundError
	)
	return errors.As(err, &invalidArg) ||
		errors.As(err, &unknown) ||
		errors.As(err, &rangeErr) ||
		errors.As(err, &notFound)
}
