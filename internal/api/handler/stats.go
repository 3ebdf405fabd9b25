package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/barber-stats/internal/usecases/reporting"
	"github.com/vfg2006/barber-stats/pkg/apiErrors"
	"github.com/vfg2006/barber-stats/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetStats calcula o faturamento por barbeiro e devolve o relatório em JSON
func GetStats(service reporting.StatsReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.Run(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, reporting.ErrNoBarbers):
				apiErrors.WriteError(w, apiErrors.ErrNoBarbers, "Nenhum barbeiro encontrado", nil)
			case errors.Is(err, reporting.ErrBarbersUnavailable):
				logger.WithError(err).Error("Erro ao buscar barbeiros")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível consultar a API de agendamentos", nil)
			default:
				logger.WithError(err).Error("Erro ao gerar relatório de faturamento")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta do relatório")
		}
	}
}
