package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Segunda-feira retorna o próprio dia",
			input:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Domingo volta seis dias",
			input:    time.Date(2024, 1, 21, 23, 59, 59, 0, time.UTC),
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Semana que começa no mês anterior",
			input:    time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StartOfWeek(tt.input))
		})
	}
}

func TestStartOfDayAndMonth(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 59, 59, 999, time.Local)

	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local), StartOfDay(now))
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), StartOfMonth(now))
}

func TestParseDateIn(t *testing.T) {
	date, err := ParseDateIn("2024-01-15", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), date)

	date, err = ParseDateIn("2024-1-5", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDateIn("2024-13-01", time.UTC)
	assert.Error(t, err)

	_, err = ParseDateIn("not-a-date", time.UTC)
	assert.Error(t, err)

	_, err = ParseDateIn("15/01/2024", time.UTC)
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.3, RoundWithTwoDecimalPlace(0.1+0.2))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.13, RoundWithTwoDecimalPlace(10.126))
}
