package handler

import (
	"net/http"

	"github.com/vfg2006/barber-stats/internal/api/handler/router"
	"github.com/vfg2006/barber-stats/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Stats(service reporting.StatsReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stats",
			Method:  http.MethodGet,
			Handler: GetStats(service),
		},
	}
}

func CronJobs(provider ReportStatusProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(provider),
		},
	}
}
