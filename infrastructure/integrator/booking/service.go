package booking

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/barber-stats/infrastructure/integrator/booking/bookingclient"
	"github.com/vfg2006/barber-stats/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	barbersPath  = "barbers"
	bookingsPath = "bookings"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type BookingIntegrator interface {
	GetBarbers(ctx context.Context) ([]domain.Barber, error)
	GetBookings(ctx context.Context) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
	CheckConnection(ctx context.Context) (int, error)
	BaseURL() string
}

type BookingService struct {
	Client bookingclient.Client
}

func New(client bookingclient.Client) BookingIntegrator {
	return &BookingService{
		Client: client,
	}
}

func (s *BookingService) BaseURL() string {
	return s.Client.BaseURL()
}

func (s *BookingService) GetBarbers(ctx context.Context) ([]domain.Barber, error) {
	var items []jsoniter.RawMessage
	if err := s.Client.GetJSON(ctx, barbersPath, &items); err != nil {
		return nil, err
	}

	return decodeEach[domain.Barber](items, barbersPath), nil
}

func (s *BookingService) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	var items []jsoniter.RawMessage
	if err := s.Client.GetJSON(ctx, bookingsPath, &items); err != nil {
		return nil, err
	}

	return decodeEach[domain.Booking](items, bookingsPath), nil
}

// decodeEach decodifica cada registro da lista separadamente. Um registro
// malformado é descartado com aviso e não invalida os demais.
func decodeEach[T any](items []jsoniter.RawMessage, resource string) []T {
	decoded := make([]T, 0, len(items))
	skipped := 0

	for i, item := range items {
		var value T
		if err := json.Unmarshal(item, &value); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"resource": resource,
				"index":    i,
			}).Warn("Registro malformado ignorado")
			skipped++
			continue
		}
		decoded = append(decoded, value)
	}

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"resource": resource,
			"skipped":  skipped,
			"total":    len(items),
		}).Warnf("%d registros de %s ignorados por formato inválido", skipped, resource)
	}

	return decoded
}

func (s *BookingService) CreateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	booking.ID = nil

	var created domain.Booking
	if err := s.Client.PostJSON(ctx, bookingsPath, booking, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// CheckConnection busca os barbeiros e retorna quantos foram encontrados
func (s *BookingService) CheckConnection(ctx context.Context) (int, error) {
	barbers, err := s.GetBarbers(ctx)
	if err != nil {
		return 0, err
	}

	return len(barbers), nil
}
