// Package connectivity verifica se um deploy da API de agendamentos está no ar
package connectivity

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vfg2006/barber-stats/infrastructure/integrator/booking"
	"github.com/vfg2006/barber-stats/infrastructure/integrator/booking/bookingclient"
)

type Checker struct {
	integrator booking.BookingIntegrator
	out        io.Writer
}

func NewChecker(integrator booking.BookingIntegrator, out io.Writer) *Checker {
	return &Checker{
		integrator: integrator,
		out:        out,
	}
}

// Check busca /barbers e informa o resultado. Retorna true apenas quando ao
// menos um barbeiro foi encontrado.
func (c *Checker) Check(ctx context.Context) bool {
	fmt.Fprintf(c.out, "Testing connection to: %s\n", c.integrator.BaseURL())

	count, err := c.integrator.CheckConnection(ctx)
	if err != nil {
		fmt.Fprintln(c.out, DescribeError(err))
	}

	if err != nil || count == 0 {
		fmt.Fprintln(c.out, "\nFAILURE. Could not connect or retrieve data.")
		return false
	}

	fmt.Fprintf(c.out, "\nSUCCESS! Found %d barbers.\n", count)
	fmt.Fprintln(c.out, "The URL is correct and the backend is online.")
	return true
}

// DescribeError classifica a falha entre erro HTTP, erro de rede ou genérico
func DescribeError(err error) string {
	var httpErr *bookingclient.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return fmt.Sprintf("HTTP Error %d: %s", httpErr.StatusCode, httpErr.Reason())
	case errors.Is(err, bookingclient.ErrTransport):
		return fmt.Sprintf("URL Error: %s", err)
	default:
		return fmt.Sprintf("Error: %s", err)
	}
}
