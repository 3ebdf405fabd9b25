package bookingclient

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetJSON executa um GET e decodifica o corpo JSON em out
func (c *BookingClient) GetJSON(ctx context.Context, path string, out any) error {
	endpoint := c.url(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).WithField("url", endpoint).Error("Erro ao criar a requisição")
		return errors.Wrap(ErrTransport, err.Error())
	}

	return c.do(req, out)
}

// PostJSON serializa payload, envia como POST e decodifica a resposta em out
func (c *BookingClient) PostJSON(ctx context.Context, path string, payload any, out any) error {
	endpoint := c.url(path)

	body, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).WithField("url", endpoint).Error("Erro ao codificar o corpo da requisição")
		return errors.Wrap(ErrEncode, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).WithField("url", endpoint).Error("Erro ao criar a requisição")
		return errors.Wrap(ErrTransport, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *BookingClient) do(req *http.Request, out any) error {
	endpoint := req.URL.String()
	logger := logrus.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    endpoint,
	})

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Error("Erro ao executar a requisição")
		return errors.Wrap(ErrTransport, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Descarta o corpo para permitir reuso da conexão
		_, _ = io.Copy(io.Discard, resp.Body)

		httpErr := &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        endpoint,
		}
		logger.WithField("status_code", resp.StatusCode).Error(httpErr.Error())
		return httpErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler a resposta")
		return errors.Wrap(ErrTransport, err.Error())
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.WithError(err).Error("Erro ao decodificar JSON")
		return errors.Wrap(ErrDecode, err.Error())
	}

	return nil
}
