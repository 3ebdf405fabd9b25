package reporting

import (
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/barber-stats/internal/domain"
	"github.com/vfg2006/barber-stats/pkg/log"
)

// Quarta-feira, 17 de janeiro de 2024: semana começa dia 15, mês dia 1
var referenceNow = time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC)

func int64Ptr(i int64) *int64 {
	return &i
}

func newBooking(id int64, barber domain.BarberID, date string, price domain.Price) domain.Booking {
	return domain.Booking{
		ID:     int64Ptr(id),
		Barber: barber,
		Date:   domain.BookingDate(date),
		Price:  price,
	}
}

func TestCalculateWindows(t *testing.T) {
	windows := CalculateWindows(referenceNow)

	assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), windows.StartOfDay)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), windows.StartOfWeek)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), windows.StartOfMonth)
}

func TestCalculateStats(t *testing.T) {
	barbers := []domain.Barber{{ID: "p1"}, {ID: "p2"}}

	tests := []struct {
		name     string
		bookings []domain.Booking
		expected domain.Stats
	}{
		{
			name:     "Agendamento de hoje conta nas três janelas",
			bookings: []domain.Booking{newBooking(1, "p1", "2024-01-17", 30)},
			expected: domain.Stats{
				"p1": {Daily: 30, Weekly: 30, Monthly: 30},
				"p2": {},
			},
		},
		{
			name: "Agendamento de oito dias atrás conta só no mês",
			bookings: []domain.Booking{
				newBooking(1, "p1", "2024-01-17", 30),
				newBooking(2, "p1", "2024-01-09", 50),
			},
			expected: domain.Stats{
				"p1": {Daily: 30, Weekly: 30, Monthly: 80},
				"p2": {},
			},
		},
		{
			name: "Início da semana é inclusivo",
			bookings: []domain.Booking{
				newBooking(1, "p2", "2024-01-15", 20),
				newBooking(2, "p2", "2024-01-14", 10),
			},
			expected: domain.Stats{
				"p1": {},
				"p2": {Daily: 0, Weekly: 20, Monthly: 30},
			},
		},
		{
			name: "Mês anterior não conta em nenhuma janela",
			bookings: []domain.Booking{
				newBooking(1, "p1", "2023-12-31", 100),
			},
			expected: domain.Stats{
				"p1": {},
				"p2": {},
			},
		},
		{
			name: "Datas ausentes ou inválidas são ignoradas",
			bookings: []domain.Booking{
				newBooking(1, "p1", "", 30),
				newBooking(2, "p1", "not-a-date", 30),
				newBooking(3, "p1", "17/01/2024", 30),
			},
			expected: domain.Stats{
				"p1": {},
				"p2": {},
			},
		},
		{
			name: "Preço ausente soma zero",
			bookings: []domain.Booking{
				{ID: int64Ptr(1), Barber: "p1", Date: "2024-01-17"},
				newBooking(2, "p1", "2024-01-16", 12.5),
			},
			expected: domain.Stats{
				"p1": {Daily: 0, Weekly: 12.5, Monthly: 12.5},
				"p2": {},
			},
		},
		{
			name: "Somas são arredondadas em duas casas",
			bookings: []domain.Booking{
				newBooking(1, "p1", "2024-01-17", 0.1),
				newBooking(2, "p1", "2024-01-17", 0.2),
			},
			expected: domain.Stats{
				"p1": {Daily: 0.3, Weekly: 0.3, Monthly: 0.3},
				"p2": {},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := CalculateStats(barbers, tt.bookings, referenceNow)
			require.NotNil(t, report)
			assert.Equal(t, tt.expected, report.Stats)
			assert.Equal(t, len(tt.bookings), report.ProcessedBookings)
		})
	}
}

func TestCalculateStats_UnknownBarber(t *testing.T) {
	log.SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	barbers := []domain.Barber{{ID: "p1"}}
	bookings := []domain.Booking{
		newBooking(77, "fantasma", "2024-01-17", 40),
		newBooking(78, "p1", "2024-01-17", 10),
	}

	report := CalculateStats(barbers, bookings, referenceNow)
	require.NotNil(t, report)

	assert.Equal(t, domain.Stats{"p1": {Daily: 10, Weekly: 10, Monthly: 10}}, report.Stats)
	assert.Equal(t, 1, report.UnknownBarberBookings)

	var warnings []*logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings = append(warnings, entry)
		}
	}
	require.Len(t, warnings, 1)
	assert.Equal(t, "77", warnings[0].Data["booking_id"])
	assert.Equal(t, "fantasma", warnings[0].Data["barber_id"])
	assert.Contains(t, warnings[0].Message, "77")
}

func TestCalculateStats_SkippedCounters(t *testing.T) {
	barbers := []domain.Barber{{ID: "p1"}}
	bookings := []domain.Booking{
		newBooking(1, "p1", "", 30),
		newBooking(2, "p1", "not-a-date", 30),
		newBooking(3, "x", "2024-01-17", 30),
		newBooking(4, "p1", "2024-01-17", 30),
	}

	report := CalculateStats(barbers, bookings, referenceNow)
	require.NotNil(t, report)

	assert.Equal(t, 4, report.ProcessedBookings)
	assert.Equal(t, 2, report.SkippedBookings)
	assert.Equal(t, 1, report.UnknownBarberBookings)
}

func TestCalculateStats_UnpaddedDate(t *testing.T) {
	barbers := []domain.Barber{{ID: "p1"}}
	bookings := []domain.Booking{
		newBooking(1, "p1", "2024-1-17", 30),
		newBooking(2, "p1", "2024-1-2", 20),
	}

	report := CalculateStats(barbers, bookings, referenceNow)
	require.NotNil(t, report)

	assert.Equal(t, 0, report.SkippedBookings)
	assert.Equal(t, domain.StatsEntry{Daily: 30, Weekly: 30, Monthly: 50}, *report.Stats["p1"])
}

func TestCalculateStats_NoBarbers(t *testing.T) {
	assert.Nil(t, CalculateStats(nil, []domain.Booking{newBooking(1, "p1", "2024-01-17", 30)}, referenceNow))
	assert.Nil(t, CalculateStats([]domain.Barber{}, nil, referenceNow))
}

func TestCalculateStats_NoBookings(t *testing.T) {
	report := CalculateStats([]domain.Barber{{ID: "p1"}}, nil, referenceNow)
	require.NotNil(t, report)
	assert.Equal(t, domain.Stats{"p1": {}}, report.Stats)
	assert.Equal(t, 0, report.ProcessedBookings)
}

func TestCalculateStats_WindowsAreMonotonic(t *testing.T) {
	barbers := []domain.Barber{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}

	var bookings []domain.Booking
	start := time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 40; i++ {
		date := start.AddDate(0, 0, i).Format(domain.BookingDateLayout)
		barber := barbers[i%len(barbers)].ID
		bookings = append(bookings, newBooking(int64(i), barber, date, domain.Price(float64(i%7)*12.5)))
	}

	report := CalculateStats(barbers, bookings, referenceNow)
	require.NotNil(t, report)

	for id, entry := range report.Stats {
		t.Run(fmt.Sprintf("Barbeiro %s", id), func(t *testing.T) {
			assert.LessOrEqual(t, entry.Daily, entry.Weekly)
			assert.LessOrEqual(t, entry.Weekly, entry.Monthly)
		})
	}
}
