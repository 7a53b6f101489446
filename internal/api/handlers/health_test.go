package handlers_test

import (
	"net/http"
	"testing"

	"dealflow-backend/internal/api/handlers"
	"dealflow-backend/internal/mocks"
	"dealflow-backend/internal/service"
	"dealflow-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockHealthServiceInterface(ctrl)
	handler := handlers.NewHealthHandler(mockService)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/health", handler.Health)
	httpSuite.Router.GET("/health/live", handler.Live)

	t.Run("connected", func(t *testing.T) {
		mockService.EXPECT().Check(gomock.Any()).Return(&service.HealthStatus{
			Connected: true,
			Counts:    map[string]int{"startups": 3, "tasks": 12},
		})

		var status service.HealthStatus
		w := httpSuite.MakeRequest(http.MethodGet, "/api/health", nil)
		testutils.AssertJSONResponse(t, w, http.StatusOK, &status)
		assert.Equal(t, 12, status.Counts["tasks"])
	})

	t.Run("unreachable spreadsheet", func(t *testing.T) {
		mockService.EXPECT().Check(gomock.Any()).Return(&service.HealthStatus{
			Connected: false,
			Counts:    map[string]int{},
			Error:     "spreadsheet unavailable",
		})

		var status service.HealthStatus
		w := httpSuite.MakeRequest(http.MethodGet, "/api/health", nil)
		testutils.AssertJSONResponse(t, w, http.StatusServiceUnavailable, &status)
		assert.False(t, status.Connected)
		assert.Equal(t, "spreadsheet unavailable", status.Error)
	})

	t.Run("live", func(t *testing.T) {
		w := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"alive":true`)
	})
}
