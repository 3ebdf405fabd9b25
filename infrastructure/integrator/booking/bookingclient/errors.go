package bookingclient

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrTransport = errors.New("erro de comunicação com a API de agendamentos")
	ErrDecode    = errors.New("erro ao decodificar a resposta")
	ErrEncode    = errors.New("erro ao codificar o corpo da requisição")
)

// HTTPError representa uma resposta com status fora da faixa 2xx
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("requisição para %s falhou com status: %s", e.URL, e.Status)
}

// Reason retorna a descrição padrão do status, como "Not Found"
func (e *HTTPError) Reason() string {
	return http.StatusText(e.StatusCode)
}
