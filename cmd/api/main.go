package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/barber-stats/infrastructure/integrator/booking"
	"github.com/vfg2006/barber-stats/infrastructure/integrator/booking/bookingclient"
	"github.com/vfg2006/barber-stats/internal/api"
	"github.com/vfg2006/barber-stats/internal/config"
	"github.com/vfg2006/barber-stats/internal/scheduler"
	"github.com/vfg2006/barber-stats/internal/usecases/reporting"
	"github.com/vfg2006/barber-stats/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := bookingclient.NewClient(cfg.BookingAPI)
	bookingIntegrator := booking.New(client)

	reportService := reporting.NewService(cfg, bookingIntegrator)

	// O agendador escreve no stdout do processo; a API só consulta o estado dele
	reportScheduler := scheduler.NewStatsReportService(reportService, os.Stdout, cfg)
	if err := reportScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório de faturamento")
	}

	server, err := api.New(cfg, reportService, reportScheduler)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
