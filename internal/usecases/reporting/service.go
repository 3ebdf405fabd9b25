package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/barber-stats/infrastructure/integrator/booking"
	"github.com/vfg2006/barber-stats/internal/config"
	"github.com/vfg2006/barber-stats/internal/domain"
	"github.com/vfg2006/barber-stats/pkg/log"
	"github.com/vfg2006/barber-stats/pkg/utils"
)

// Dados fixos do agendamento de teste
const (
	testBookingService = "cut"
	testBookingTime    = "10:00"
	testBookingName    = "Test"
	testBookingSurname = "User"
	testBookingEmail   = "test@example.com"
	testBookingPhone   = "1234567890"
	testBookingPrice   = 30.0
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type StatsReporter interface {
	Run(ctx context.Context) (*domain.StatsReport, error)
}

type Service struct {
	integrator    booking.BookingIntegrator
	seedWhenEmpty bool
	now           func() time.Time
}

func NewService(cfg *config.Config, integrator booking.BookingIntegrator) *Service {
	return &Service{
		integrator:    integrator,
		seedWhenEmpty: cfg.Report.SeedWhenEmpty,
		now:           time.Now,
	}
}

// WithClock troca a fonte de horário usada para as janelas e para a data do agendamento de teste
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetData busca barbeiros e agendamentos. Se os barbeiros não puderem ser
// obtidos, retorna listas vazias e ErrBarbersUnavailable sem consultar os
// agendamentos. Falha ao buscar agendamentos resulta em lista vazia.
func (s *Service) GetData(ctx context.Context) ([]domain.Barber, []domain.Booking, error) {
	logger := log.ForContext(ctx)
	logger.WithField("url", s.integrator.BaseURL()).Infof("Conectando a %s...", s.integrator.BaseURL())

	barbers, err := s.integrator.GetBarbers(ctx)
	if err != nil {
		return []domain.Barber{}, []domain.Booking{}, NewReportError(ErrBarbersUnavailable, CodeBarbersUnavailable, err.Error())
	}

	bookings, err := s.integrator.GetBookings(ctx)
	if err != nil {
		logger.WithError(err).Warn("Não foi possível buscar os agendamentos, seguindo sem nenhum")
		bookings = []domain.Booking{}
	}

	logger.WithFields(log.Fields{
		"barbers":  len(barbers),
		"bookings": len(bookings),
	}).Debug("Dados carregados")

	return barbers, bookings, nil
}

// CreateTestBooking cria um agendamento de teste para hoje no barbeiro informado
func (s *Service) CreateTestBooking(ctx context.Context, barberID domain.BarberID) (*domain.Booking, error) {
	tag, err := utils.GenerateTag()
	if err != nil {
		return nil, NewReportError(ErrSeedFailed, "", err.Error())
	}

	testBooking := domain.Booking{
		Barber:  barberID,
		Service: testBookingService,
		Date:    domain.BookingDate(s.now().Format(domain.BookingDateLayout)),
		Time:    testBookingTime,
		Name:    testBookingName,
		Surname: testBookingSurname,
		Email:   testBookingEmail,
		Phone:   testBookingPhone,
		Message: "seed-" + tag,
		Price:   testBookingPrice,
	}

	log.ForContext(ctx).Infof("Criando agendamento: %s", utils.PrettyJson(testBooking))

	created, err := s.integrator.CreateBooking(ctx, testBooking)
	if err != nil {
		return nil, NewReportError(ErrSeedFailed, "", err.Error())
	}

	return created, nil
}

// Run busca os dados, cria um agendamento de teste quando não há nenhum e
// calcula as estatísticas.
func (s *Service) Run(ctx context.Context) (*domain.StatsReport, error) {
	logger := log.ForContext(ctx)

	barbers, bookings, err := s.GetData(ctx)
	if err != nil {
		return nil, err
	}

	if len(barbers) > 0 && len(bookings) == 0 && s.seedWhenEmpty {
		logger.Info("Nenhum agendamento encontrado. Criando agendamento de teste...")

		if _, err := s.CreateTestBooking(ctx, barbers[0].ID); err != nil {
			logger.WithError(err).Error("Erro ao criar agendamento de teste")
		}

		barbers, bookings, err = s.GetData(ctx)
		if err != nil {
			return nil, err
		}
	}

	report := CalculateStats(barbers, bookings, s.now())
	if report == nil {
		return nil, NewReportError(ErrNoBarbers, CodeNoBarbers, "")
	}

	return report, nil
}
