package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocaleLister is a mock implementation of the LocaleLister interface
type MockLocaleLister struct {
	mock.Mock
}

func (m *MockLocaleLister) ListLocales() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func TestLocalesHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		locales []string
	}{
		{name: "two locales", locales: []string{"de", "pl"}},
		{name: "no data root", locales: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocaleLister)
			mockSvc.On("ListLocales").Return(tt.locales)

			h := NewLocalesHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/locales", nil)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			h.List(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var got []string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.locales, got)
			mockSvc.AssertExpectations(t)
		})
	}
}
