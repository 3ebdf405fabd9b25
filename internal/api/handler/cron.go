package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ReportStatusProvider expõe o estado do agendador do relatório
type ReportStatusProvider interface {
	GetStatus() (running bool, lastStartedAt time.Time, lastCompletedAt time.Time)
}

type CronStatusResponse struct {
	StatsReport CronJobStatus `json:"stats_report"`
}

type CronJobStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

func GetCronStatus(provider ReportStatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		running, startedAt, completedAt := provider.GetStatus()

		status := CronJobStatus{Running: running}
		if !startedAt.IsZero() {
			status.LastStartedAt = &startedAt
		}
		if !completedAt.IsZero() {
			status.LastCompletedAt = &completedAt
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(CronStatusResponse{StatsReport: status}); err != nil {
			logrus.WithError(err).Error("Erro ao enviar status das crons")
		}
	}
}
