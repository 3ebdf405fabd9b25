package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de relatórios
var (
	ErrBarbersUnavailable = errors.New("could not fetch barbers")
	ErrNoBarbers          = errors.New("no barbers found")
	ErrSeedFailed         = errors.New("error creating test booking")
)

// Códigos usados pela API ao expor os erros de relatório
const (
	CodeBarbersUnavailable = "SRV_003"
	CodeNoBarbers          = "STATS_001"
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
