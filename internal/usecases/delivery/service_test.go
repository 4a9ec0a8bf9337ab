package delivery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook"
	webhookdomain "github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook/domain"
	"github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook/mocks"
	"github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook/webhookclient"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
)

var (
	feishu = domain.DeliveryChannel{Name: "feishu", PayloadStyle: domain.PayloadCardWithTitle, Timeout: time.Second}
	wecom  = domain.DeliveryChannel{Name: "wecom", PayloadStyle: domain.PayloadPlainMarkdown, MaxPayloadBytes: 4096, Timeout: time.Second, SplitDomains: true}
)

func TestDispatcher_TwoChannelsOneFails(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":0}`))
	}))
	defer ok.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`internal error`))
	}))
	defer failing.Close()

	channelA := feishu
	channelA.EndpointURL = ok.URL
	channelB := domain.DeliveryChannel{Name: "wecom", EndpointURL: failing.URL, PayloadStyle: domain.PayloadPlainMarkdown, Timeout: time.Second}

	dispatcher := NewDispatcher(webhook.New(webhookclient.NewClient()), detailLink)

	status := dispatcher.Dispatch(context.Background(), []domain.DeliveryChannel{channelA, channelB}, Message{Markdown: "# 周报\n\nconteúdo"})

	assert.Equal(t, 1, status.Successes)
	assert.Equal(t, 1, status.Failures)
	require.Len(t, status.Results, 2)
	assert.True(t, status.Results[0].Success())
	assert.Equal(t, http.StatusInternalServerError, status.Results[1].StatusCode)
	assert.ErrorIs(t, status.Results[1].Err, ErrUnexpectedStatus)
	assert.Equal(t, "internal error", status.Results[1].Response)
}

func TestDispatcher_Dispatch(t *testing.T) {
	long := "# Longo\n\n" + strings.Repeat("榜单内容", 400)

	tests := []struct {
		name     string
		channels []domain.DeliveryChannel
		msg      Message
		setup    func(m *mocks.MockWebhookIntegrator)
		validate func(t *testing.T, status domain.RunStatus)
	}{
		{
			name:     "Cartão usa o título informado",
			channels: []domain.DeliveryChannel{feishu},
			msg:      Message{Title: "小游戏周报（微信/抖音 + SensorTower）", Markdown: "# 周报简要 W1\n\nx"},
			setup: func(m *mocks.MockWebhookIntegrator) {
				m.EXPECT().Send(gomock.Any(), feishu, "小游戏周报（微信/抖音 + SensorTower）", "# 周报简要 W1\n\nx").
					Return(&webhookdomain.Response{StatusCode: 200}, nil)
			},
			validate: func(t *testing.T, status domain.RunStatus) {
				assert.Equal(t, 1, status.Successes)
				assert.Zero(t, status.Failures)
			},
		},
		{
			name:     "Sem título usa o primeiro heading",
			channels: []domain.DeliveryChannel{feishu},
			msg:      Message{Markdown: "intro\n## AI 竞品动态报告（本周简要版）\n\nx"},
			setup: func(m *mocks.MockWebhookIntegrator) {
				m.EXPECT().Send(gomock.Any(), feishu, "AI 竞品动态报告（本周简要版）", gomock.Any()).
					Return(&webhookdomain.Response{StatusCode: 200}, nil)
			},
			validate: func(t *testing.T, status domain.RunStatus) {
				assert.Equal(t, 1, status.Successes)
			},
		},
		{
			name:     "WeCom recebe uma mensagem por domínio",
			channels: []domain.DeliveryChannel{wecom},
			msg:      Message{Markdown: "# A\n\n---\n\n# B", Parts: []string{"# A", "# B"}},
			setup: func(m *mocks.MockWebhookIntegrator) {
				gomock.InOrder(
					m.EXPECT().Send(gomock.Any(), wecom, "A", "# A").Return(&webhookdomain.Response{StatusCode: 200}, nil),
					m.EXPECT().Send(gomock.Any(), wecom, "B", "# B").Return(&webhookdomain.Response{StatusCode: 200}, nil),
				)
			},
			validate: func(t *testing.T, status domain.RunStatus) {
				require.Len(t, status.Results, 2)
				assert.Equal(t, 1, status.Results[0].Part)
				assert.Equal(t, 2, status.Results[1].Part)
			},
		},
		{
			name:     "Canal limitado recebe o documento truncado",
			channels: []domain.DeliveryChannel{wecom},
			msg:      Message{Markdown: long},
			setup: func(m *mocks.MockWebhookIntegrator) {
				m.EXPECT().Send(gomock.Any(), wecom, "Longo", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.DeliveryChannel, _ string, content string) (*webhookdomain.Response, error) {
						assert.LessOrEqual(t, len(content), 4096)
						assert.True(t, strings.HasSuffix(content, ContinuationSuffix(detailLink)))
						return &webhookdomain.Response{StatusCode: 200}, nil
					})
			},
			validate: func(t *testing.T, status domain.RunStatus) {
				require.Len(t, status.Results, 1)
				assert.True(t, status.Results[0].Truncated)
				assert.LessOrEqual(t, status.Results[0].Bytes, 4096)
			},
		},
		{
			name:     "Erro de rede não interrompe o próximo canal",
			channels: []domain.DeliveryChannel{feishu, wecom},
			msg:      Message{Markdown: "# X"},
			setup: func(m *mocks.MockWebhookIntegrator) {
				m.EXPECT().Send(gomock.Any(), feishu, "X", "# X").Return(nil, errors.New("dial tcp: connection refused"))
				m.EXPECT().Send(gomock.Any(), wecom, "X", "# X").Return(&webhookdomain.Response{StatusCode: 200}, nil)
			},
			validate: func(t *testing.T, status domain.RunStatus) {
				assert.Equal(t, 1, status.Successes)
				assert.Equal(t, 1, status.Failures)
				assert.EqualError(t, status.Results[0].Err, "dial tcp: connection refused")
				assert.False(t, status.Results[0].Truncated)
			},
		},
		{
			name:     "Resposta nula conta como falha",
			channels: []domain.DeliveryChannel{feishu},
			msg:      Message{Markdown: "# X"},
			setup: func(m *mocks.MockWebhookIntegrator) {
				m.EXPECT().Send(gomock.Any(), feishu, "X", "# X").Return(nil, nil)
			},
			validate: func(t *testing.T, status domain.RunStatus) {
				assert.Equal(t, 1, status.Failures)
			},
		},
		{
			name:     "Sem canais",
			channels: nil,
			msg:      Message{Markdown: "# X"},
			setup:    func(m *mocks.MockWebhookIntegrator) {},
			validate: func(t *testing.T, status domain.RunStatus) {
				assert.Zero(t, status.Successes)
				assert.Zero(t, status.Failures)
				assert.Empty(t, status.Results)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			integrator := mocks.NewMockWebhookIntegrator(ctrl)
			tt.setup(integrator)

			status := NewDispatcher(integrator, detailLink).Dispatch(context.Background(), tt.channels, tt.msg)

			tt.validate(t, status)
		})
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		expected string
	}{
		{name: "Primeiro heading", markdown: "# 周报简要 W1\n\n## Seção", expected: "周报简要 W1"},
		{name: "Heading com espaços à esquerda", markdown: "texto\n   ### Título  \n", expected: "Título"},
		{name: "Sem heading", markdown: "só texto", expected: DefaultCardTitle},
		{name: "Heading vazio", markdown: "###\n# Outro", expected: DefaultCardTitle},
		{name: "Documento vazio", markdown: "", expected: DefaultCardTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractTitle(tt.markdown, DefaultCardTitle))
		})
	}
}
