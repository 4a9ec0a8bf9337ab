package webhook

import (
	"context"
	"fmt"

	webhookdomain "github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook/domain"
	"github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook/webhookclient"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
)

type WebhookIntegrator interface {
	Send(ctx context.Context, channel domain.DeliveryChannel, title, content string) (*webhookdomain.Response, error)
}

type WebhookService struct {
	Client webhookclient.Client
}

func New(client webhookclient.Client) WebhookIntegrator {
	return &WebhookService{
		Client: client,
	}
}

// Send monta o envelope do canal e faz um único POST
func (s *WebhookService) Send(ctx context.Context, channel domain.DeliveryChannel, title, content string) (*webhookdomain.Response, error) {
	payload, err := Payload(channel.PayloadStyle, title, content)
	if err != nil {
		return nil, err
	}

	return s.Client.PostJSON(ctx, channel.EndpointURL, payload, channel.Timeout)
}

// Payload devolve o envelope JSON correspondente ao estilo do canal
func Payload(style domain.PayloadStyle, title, content string) (any, error) {
	switch style {
	case domain.PayloadCardWithTitle:
		return webhookdomain.NewFeishuCard(title, content), nil
	case domain.PayloadPlainMarkdown:
		return webhookdomain.NewWeComMarkdown(content), nil
	default:
		return nil, fmt.Errorf("estilo de payload desconhecido: %s", style)
	}
}
