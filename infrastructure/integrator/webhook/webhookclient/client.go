package webhookclient

import (
	"context"
	"net/http"
	"time"

	webhookdomain "github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook/domain"
)

// DefaultTimeout é usado quando o canal não define timeout próprio
const DefaultTimeout = 15 * time.Second

type Client interface {
	PostJSON(ctx context.Context, url string, payload any, timeout time.Duration) (*webhookdomain.Response, error)
}

type WebhookClient struct {
	httpClient *http.Client
}

func NewClient() Client {
	return &WebhookClient{
		httpClient: &http.Client{},
	}
}

// NewClientWithHTTP permite injetar o http.Client (testes com httptest)
func NewClientWithHTTP(httpClient *http.Client) Client {
	return &WebhookClient{
		httpClient: httpClient,
	}
}
