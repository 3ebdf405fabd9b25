package bookingclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/barber-stats/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 2 * time.Second

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// Client faz requisições JSON contra a API de agendamentos
type Client interface {
	GetJSON(ctx context.Context, path string, out any) error
	PostJSON(ctx context.Context, path string, payload any, out any) error
	BaseURL() string
}

type BookingClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(cfg config.BookingAPI) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &BookingClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   strings.TrimRight(cfg.URL, "/"),
		userAgent: cfg.UserAgent,
	}
}

func (c *BookingClient) BaseURL() string {
	return c.baseURL
}

func (c *BookingClient) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
