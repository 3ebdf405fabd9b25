package reporting

import (
	"time"

	"github.com/vfg2006/barber-stats/internal/domain"
	"github.com/vfg2006/barber-stats/pkg/log"
	"github.com/vfg2006/barber-stats/pkg/utils"
)

// CalculateWindows retorna o início do dia, da semana (segunda-feira) e do mês
// de now, todos à meia-noite no fuso de now.
func CalculateWindows(now time.Time) domain.StatsWindows {
	return domain.StatsWindows{
		StartOfDay:   utils.StartOfDay(now),
		StartOfWeek:  utils.StartOfWeek(now),
		StartOfMonth: utils.StartOfMonth(now),
	}
}

// CalculateStats soma o valor dos agendamentos por barbeiro nas janelas de dia,
// semana e mês. As janelas se sobrepõem: um agendamento de hoje conta nas três.
// Agendamentos sem data ou com data inválida são ignorados em silêncio; os de
// barbeiro desconhecido geram um aviso e também são ignorados.
// Retorna nil quando não há barbeiros.
func CalculateStats(barbers []domain.Barber, bookings []domain.Booking, now time.Time) *domain.StatsReport {
	if len(barbers) == 0 {
		log.L.Info("Nenhum barbeiro encontrado")
		return nil
	}

	windows := CalculateWindows(now)

	stats := make(domain.Stats, len(barbers))
	for _, barber := range barbers {
		stats[barber.ID] = &domain.StatsEntry{}
	}

	report := &domain.StatsReport{
		GeneratedAt:       now,
		Windows:           windows,
		ProcessedBookings: len(bookings),
		Stats:             stats,
	}

	for _, booking := range bookings {
		if booking.Date == "" {
			report.SkippedBookings++
			continue
		}

		date, err := utils.ParseDateIn(string(booking.Date), now.Location())
		if err != nil {
			report.SkippedBookings++
			continue
		}

		price := float64(booking.Price)

		entry, ok := stats[booking.Barber]
		if !ok {
			log.L.WithFields(log.Fields{
				"booking_id": booking.BookingIDString(),
				"barber_id":  string(booking.Barber),
			}).Warnf("Agendamento %s tem barbeiro desconhecido '%s'", booking.BookingIDString(), booking.Barber)
			report.UnknownBarberBookings++
			continue
		}

		if !date.Before(windows.StartOfDay) {
			entry.Daily += price
		}
		if !date.Before(windows.StartOfWeek) {
			entry.Weekly += price
		}
		if !date.Before(windows.StartOfMonth) {
			entry.Monthly += price
		}
	}

	for _, entry := range stats {
		entry.Daily = utils.RoundWithTwoDecimalPlace(entry.Daily)
		entry.Weekly = utils.RoundWithTwoDecimalPlace(entry.Weekly)
		entry.Monthly = utils.RoundWithTwoDecimalPlace(entry.Monthly)
	}

	return report
}
