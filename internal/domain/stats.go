package domain

import "time"

type StatsEntry struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}

// Stats agrupa os totais por barbeiro
type Stats map[BarberID]*StatsEntry

// StatsWindows são os inícios (inclusivos) das janelas de dia, semana e mês
type StatsWindows struct {
	StartOfDay   time.Time `json:"start_of_day"`
	StartOfWeek  time.Time `json:"start_of_week"`
	StartOfMonth time.Time `json:"start_of_month"`
}

type StatsReport struct {
	GeneratedAt           time.Time    `json:"generated_at"`
	Windows               StatsWindows `json:"windows"`
	ProcessedBookings     int          `json:"processed_bookings"`
	SkippedBookings       int          `json:"skipped_bookings"`
	UnknownBarberBookings int          `json:"unknown_barber_bookings"`
	Stats                 Stats        `json:"stats"`
}
