// Package scheduler contém o agendamento periódico do relatório de faturamento
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/barber-stats/internal/config"
	"github.com/vfg2006/barber-stats/internal/usecases/reporting"
)

type StatsReportConfig struct {
	CronSchedule string
	Enabled      bool
}

type StatsReportService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.StatsReporter
	out                 io.Writer
	config              StatsReportConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewStatsReportService(reporter reporting.StatsReporter, out io.Writer, cfg *config.Config) *StatsReportService {
	reportConfig := StatsReportConfig{
		CronSchedule: cfg.StatsReport.CronSchedule,
		Enabled:      cfg.StatsReport.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)
	scheduler.SingletonModeAll()

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"enabled":       reportConfig.Enabled,
	}).Debug("Configuração do agendador do relatório de faturamento carregada")

	return &StatsReportService{
		scheduler: scheduler,
		reporter:  reporter,
		out:       out,
		config:    reportConfig,
	}
}

func (s *StatsReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do relatório de faturamento desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório de faturamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunNow(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração do relatório de faturamento")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório de faturamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório de faturamento")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow gera o relatório imediatamente. Uma execução pedida enquanto outra
// está em andamento é descartada.
func (s *StatsReportService) RunNow(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Relatório de faturamento já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	report, err := s.reporter.Run(ctx)
	if errors.Is(err, reporting.ErrNoBarbers) {
		return reporting.WriteReport(s.out, nil)
	}
	if err != nil {
		return err
	}

	return reporting.WriteReport(s.out, report)
}

// GetStatus retorna o estado da última execução
func (s *StatsReportService) GetStatus() (bool, time.Time, time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt
}
