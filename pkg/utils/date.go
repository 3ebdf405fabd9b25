package utils

import (
	"time"
)

const DateLayout = "2006-01-02"

// dateParseLayout aceita mês e dia com ou sem zero à esquerda (2024-01-05 e 2024-1-5)
const dateParseLayout = "2006-1-2"

// ParseDateIn interpreta uma data YYYY-MM-DD como meia-noite no fuso informado
func ParseDateIn(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateParseLayout, dateStr, loc)
}

// StartOfDay retorna a meia-noite do dia de t, no fuso de t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek retorna a meia-noite da segunda-feira da semana de t
func StartOfWeek(t time.Time) time.Time {
	weekdayIndex := (int(t.Weekday()) + 6) % 7 // segunda = 0
	return StartOfDay(t.AddDate(0, 0, -weekdayIndex))
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
