package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/barber-stats/infrastructure/integrator/booking"
	"github.com/vfg2006/barber-stats/infrastructure/integrator/booking/bookingclient"
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

	client := bookingclient.NewClient(cfg.BookingAPI)
	reportService := reporting.NewService(cfg, booking.New(client))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.StatsReport.Enabled {
		runScheduled(ctx, reportService, cfg)
		return
	}

	report, err := reportService.Run(ctx)
	switch {
	case errors.Is(err, reporting.ErrNoBarbers):
		_ = reporting.WriteReport(os.Stdout, nil)
		return
	case err != nil:
		logrus.WithError(err).Error("Não foi possível gerar o relatório de faturamento")
		stop()
		os.Exit(1)
	}

	if err := reporting.WriteReport(os.Stdout, report); err != nil {
		logrus.WithError(err).Error("Erro ao escrever o relatório")
	}
}

// runScheduled gera o relatório imediatamente e depois segundo a cron configurada,
// até receber SIGINT/SIGTERM
func runScheduled(ctx context.Context, reporter reporting.StatsReporter, cfg *config.Config) {
	reportScheduler := scheduler.NewStatsReportService(reporter, os.Stdout, cfg)

	if err := reportScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o agendador do relatório de faturamento")
	}
	logrus.Info("Agendador do relatório de faturamento iniciado com sucesso")

	if err := reportScheduler.RunNow(ctx); err != nil {
		logrus.WithError(err).Error("Erro na geração do relatório de faturamento")
	}

	<-ctx.Done()
	logrus.Info("Sinal de interrupção recebido, encerrando")
}
