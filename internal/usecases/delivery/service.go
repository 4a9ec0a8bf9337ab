package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
)

// DefaultCardTitle é usado quando o documento não tem heading
const DefaultCardTitle = "AI 竞品动态报告"

var (
	ErrNoChannel        = errors.New("nenhum webhook configurado")
	ErrUnexpectedStatus = errors.New("webhook respondeu com status diferente de 200")
)

// Message é o conteúdo entregue em uma execução
type Message struct {
	Title    string   // Título do cartão; vazio usa o primeiro heading do documento
	Markdown string   // Documento completo
	Parts    []string // Um documento por domínio, usado pelos canais com SplitDomains
}

type DeliveryService interface {
	Dispatch(ctx context.Context, channels []domain.DeliveryChannel, msg Message) domain.RunStatus
}

type Dispatcher struct {
	Webhook    webhook.WebhookIntegrator
	DetailLink string
}

func NewDispatcher(integrator webhook.WebhookIntegrator, detailLink string) DeliveryService {
	return &Dispatcher{
		Webhook:    integrator,
		DetailLink: detailLink,
	}
}

// Dispatch envia a mensagem para cada canal, em sequência. Falha em um canal é registrada
// no resultado e não interrompe os demais.
func (d *Dispatcher) Dispatch(ctx context.Context, channels []domain.DeliveryChannel, msg Message) domain.RunStatus {
	results := make([]domain.DeliveryResult, 0, len(channels))

	for _, channel := range channels {
		parts := []string{msg.Markdown}
		if channel.SplitDomains && len(msg.Parts) > 0 {
			parts = msg.Parts
		}

		for i, part := range parts {
			results = append(results, d.send(ctx, channel, i+1, msg.Title, part))
		}
	}

	status := domain.NewRunStatus(results)

	logrus.WithFields(logrus.Fields{
		"successes": status.Successes,
		"failures":  status.Failures,
	}).Info("Entrega finalizada")

	return status
}

func (d *Dispatcher) send(ctx context.Context, channel domain.DeliveryChannel, part int, title, markdown string) domain.DeliveryResult {
	content := markdown
	if channel.Bounded() {
		content = Truncate(markdown, channel.MaxPayloadBytes, ContinuationSuffix(d.DetailLink))
	}

	if title == "" {
		title = ExtractTitle(markdown, DefaultCardTitle)
	}

	result := domain.DeliveryResult{
		Channel:   channel.Name,
		Part:      part,
		Bytes:     len(content),
		Truncated: content != markdown,
	}

	logger := logrus.WithFields(logrus.Fields{
		"channel":   channel.Name,
		"part":      part,
		"bytes":     result.Bytes,
		"truncated": result.Truncated,
	})

	resp, err := d.Webhook.Send(ctx, channel, title, content)
	if err == nil && resp == nil {
		err = errors.New("webhook sem resposta")
	}
	if err != nil {
		result.Err = err
		logger.WithError(err).Error("Falha ao enviar para o webhook")
		return result
	}

	result.StatusCode = resp.StatusCode
	result.Response = resp.Body

	if resp.StatusCode != http.StatusOK {
		result.Err = fmt.Errorf("%w: status=%d resp=%s", ErrUnexpectedStatus, resp.StatusCode, resp.Body)
		logger.WithField("status", resp.StatusCode).WithField("response", resp.Body).Error("Webhook recusou a mensagem")
		return result
	}

	logger.Info("Mensagem enviada com sucesso")

	return result
}

// ExtractTitle devolve o texto do primeiro heading markdown (sem os "#"), ou fallback
func ExtractTitle(markdown, fallback string) string {
	for _, line := range strings.Split(markdown, "\n") {
		l := strings.TrimSpace(line)
		if !strings.HasPrefix(l, "#") {
			continue
		}
		if title := strings.TrimSpace(strings.TrimLeft(l, "#")); title != "" {
			return title
		}
		return fallback
	}
	return fallback
}
