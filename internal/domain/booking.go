package domain

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// BookingDateLayout é o formato de data usado pelo backend de agendamentos
const BookingDateLayout = "2006-01-02"

type Booking struct {
	ID      *int64      `json:"id,omitempty"`
	Barber  BarberID    `json:"barber"`
	Service string      `json:"service"`
	Date    BookingDate `json:"date"`
	Time    string      `json:"time"`
	Name    string      `json:"name"`
	Surname string      `json:"surname"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Message string      `json:"message,omitempty"`
	Price   Price       `json:"price"`
}

// BookingIDString retorna o id do agendamento para logs, "<nil>" quando ausente
func (b Booking) BookingIDString() string {
	if b.ID == nil {
		return "<nil>"
	}
	return strconv.FormatInt(*b.ID, 10)
}

// BookingDate guarda a data crua (YYYY-MM-DD). Valores que não são string
// viram data vazia, assim um registro malformado não invalida a lista inteira.
type BookingDate string

func (d *BookingDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = ""
		return nil
	}
	*d = BookingDate(s)
	return nil
}

// Price é o valor do agendamento. Aceita número ou string numérica;
// null, ausente ou inválido vale 0.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*p = 0

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*p = parsePrice(strings.TrimSpace(s))
		return nil
	}

	*p = parsePrice(string(data))
	return nil
}

func parsePrice(s string) Price {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Price(f)
}
