package reporting

import (
	"fmt"
	"io"

	"github.com/vfg2006/barber-stats/internal/domain"
	"github.com/vfg2006/barber-stats/pkg/utils"
)

// WriteReport escreve o relatório no formato lido pelo operador no console
func WriteReport(w io.Writer, report *domain.StatsReport) error {
	if report == nil {
		_, err := fmt.Fprintln(w, "No barbers found.")
		return err
	}

	_, err := fmt.Fprintf(w,
		"Start of Day: %s\n\nProcessing %d bookings...\n\nCalculated Stats Results:\n%s\n",
		report.Windows.StartOfDay.Format("2006-01-02 15:04:05"),
		report.ProcessedBookings,
		utils.PrettyJson(report.Stats),
	)
	return err
}
