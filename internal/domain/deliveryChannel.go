package domain

import "time"

// PayloadStyle define o envelope JSON usado por um canal de entrega
type PayloadStyle string

const (
	PayloadCardWithTitle PayloadStyle = "CARD_WITH_TITLE"
	PayloadPlainMarkdown PayloadStyle = "PLAIN_MARKDOWN"
)

// DeliveryChannel é um destino de entrega (webhook de bot)
type DeliveryChannel struct {
	Name            string        `json:"name"`
	EndpointURL     string        `json:"-"`
	PayloadStyle    PayloadStyle  `json:"payload_style"`
	MaxPayloadBytes int           `json:"max_payload_bytes"` // 0 significa sem limite
	Timeout         time.Duration `json:"timeout"`
	SplitDomains    bool          `json:"split_domains"` // Envia um relatório por mensagem em vez do digest combinado
}

// Bounded indica se o canal impõe limite de tamanho
func (c DeliveryChannel) Bounded() bool {
	return c.MaxPayloadBytes > 0
}

// DeliveryResult é o resultado de uma tentativa de envio para um canal
type DeliveryResult struct {
	Channel    string `json:"channel"`
	Part       int    `json:"part"`
	StatusCode int    `json:"status_code"`
	Response   string `json:"response,omitempty"`
	Bytes      int    `json:"bytes"`
	Truncated  bool   `json:"truncated"`
	Err        error  `json:"-"`
}

// Success indica se o canal respondeu 200
func (r DeliveryResult) Success() bool {
	return r.Err == nil && r.StatusCode == 200
}

// RunStatus agrega os resultados de entrega de uma execução
type RunStatus struct {
	Successes int              `json:"successes"`
	Failures  int              `json:"failures"`
	Results   []DeliveryResult `json:"results"`
}

// NewRunStatus contabiliza sucessos e falhas
func NewRunStatus(results []DeliveryResult) RunStatus {
	status := RunStatus{Results: results}
	for _, r := range results {
		if r.Success() {
			status.Successes++
		} else {
			status.Failures++
		}
	}
	return status
}
