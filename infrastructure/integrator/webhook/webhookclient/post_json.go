package webhookclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	webhookdomain "github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxResponseBody limita o quanto do corpo de resposta é guardado para log
const maxResponseBody = 64 << 10

// PostJSON envia uma única requisição POST. Respostas não 200 voltam sem erro,
// com o status e o corpo; erro só em falha de rede, timeout ou payload inválido.
func (c *WebhookClient) PostJSON(ctx context.Context, url string, payload any, timeout time.Duration) (*webhookdomain.Response, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o payload: %w", err)
	}

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return &webhookdomain.Response{StatusCode: resp.StatusCode}, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	return &webhookdomain.Response{
		StatusCode: resp.StatusCode,
		Body:       string(bytes.ToValidUTF8(respBody, nil)),
	}, nil
}
