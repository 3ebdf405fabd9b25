package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/barber-stats/internal/config"
	"github.com/vfg2006/barber-stats/internal/domain"
	"github.com/vfg2006/barber-stats/internal/usecases/reporting/mocks"
	"github.com/vfg2006/barber-stats/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type idleStatus struct{}

func (idleStatus) GetStatus() (bool, time.Time, time.Time) {
	return false, time.Time{}, time.Time{}
}

func TestServer_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReporter := mocks.NewMockStatsReporter(ctrl)
	mockReporter.EXPECT().Run(gomock.Any()).Return(&domain.StatsReport{
		Stats: domain.Stats{"lele": {}},
	}, nil)

	cfg := &config.Config{
		Server: config.Server{
			Host:           "localhost",
			Port:           "0",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}

	server, err := New(cfg, mockReporter, idleStatus{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"lele"`)
}
