package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"datagen-api/internal/export"
	"datagen-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSeedStore is a mock implementation of the SeedStore interface
type MockSeedStore struct {
	mock.Mock
}

func (m *MockSeedStore) ExecScript(ctx context.Context, script string) error {
	args := m.Called(ctx, script)
	return args.Error(0)
}

func TestSeedHandler_Seed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockDataGenService)
	mockStore := new(MockSeedStore)

	records := testRecords()
	mockSvc.On("Generate", "pl", 10, []string(nil)).Return(records, nil)
	mockSvc.On("ExportSQL", records, []string(nil), export.ModeSingleTable, "people").
		Return("DROP TABLE IF EXISTS people;\n", nil)
	mockStore.On("ExecScript", mock.Anything, "DROP TABLE IF EXISTS people;\n").Return(nil)

	h := NewSeedHandler(mockSvc, mockStore)
	w := postJSON(t, h.Seed, SeedRequest{Locale: "pl", Quantity: 10, Table: "people"})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body["inserted"])

	mockSvc.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestSeedHandler_GenerateError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockDataGenService)
	mockSvc.On("Generate", "xx", 10, []string(nil)).
		Return([]*models.Record(nil), &models.UnknownLocaleError{Locale: "xx"})

	h := NewSeedHandler(mockSvc, new(MockSeedStore))
	w := postJSON(t, h.Seed, SeedRequest{Locale: "xx", Quantity: 10})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSeedHandler_StoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockDataGenService)
	mockStore := new(MockSeedStore)

	records := testRecords()
	mockSvc.On("Generate", "pl", 1, []string(nil)).Return(records, nil)
	mockSvc.On("ExportSQL", records, []string(nil), export.ModeSingleTable, "").
		Return("DROP TABLE IF EXISTS generated_people;\n", nil)
	mockStore.On("ExecScript", mock.Anything, mock.Anything).Return(assert.AnError)

	h := NewSeedHandler(mockSvc, mockStore)
	w := postJSON(t, h.Seed, SeedRequest{Locale: "pl", Quantity: 1})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockStore.AssertExpectations(t)
}
