package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/weekly-rank-digest/internal/config"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/digest"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/digest/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Report: config.Report{
			OutputDir:   "/tmp/reports",
			DigestTitle: "小游戏周报",
		},
		Feishu:       config.Feishu{WebhookURL: "https://open.feishu.cn/hook", Timeout: time.Second},
		WeeklyDigest: config.WeeklyDigest{CronSchedule: "0 10 * * 1", Enabled: true},
	}
}

func TestWeeklyDigestService_RunDigest(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mockDigest *mocks.MockDigestService)
		validate func(t *testing.T, service *WeeklyDigestService, report *digest.RunReport, err error)
	}{
		{
			name: "Executa o digest com as opções da configuração",
			setup: func(mockDigest *mocks.MockDigestService) {
				mockDigest.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, opts digest.Options) (*digest.RunReport, error) {
						assert.Equal(t, "/tmp/reports", opts.OutputDir)
						assert.Equal(t, "小游戏周报", opts.Title)
						assert.False(t, opts.DryRun)
						assert.Empty(t, opts.Period)
						require.Len(t, opts.Channels, 1)
						assert.Equal(t, domain.PayloadCardWithTitle, opts.Channels[0].PayloadStyle)
						return &digest.RunReport{RunID: "run-1", Outcome: digest.OutcomeDelivered}, nil
					})
			},
			validate: func(t *testing.T, service *WeeklyDigestService, report *digest.RunReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, digest.OutcomeDelivered, report.Outcome)

				status := service.GetStatus()
				assert.Equal(t, "run-1", status["last_run_id"])
				assert.Equal(t, false, status["sync_running"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name: "Erro da execução é devolvido com o relatório",
			setup: func(mockDigest *mocks.MockDigestService) {
				mockDigest.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					Return(&digest.RunReport{Outcome: digest.OutcomeNoChannel}, digest.NewDigestError(errors.New("sem canal"), digest.OutcomeNoChannel, ""))
			},
			validate: func(t *testing.T, service *WeeklyDigestService, report *digest.RunReport, err error) {
				require.Error(t, err)
				assert.Equal(t, digest.OutcomeNoChannel, report.Outcome)
				assert.Equal(t, digest.OutcomeNoChannel, service.GetStatus()["last_outcome"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDigest := mocks.NewMockDigestService(ctrl)
			tt.setup(mockDigest)

			service := NewWeeklyDigestService(mockDigest, testConfig())
			report, err := service.RunDigest(context.Background())

			tt.validate(t, service, report, err)
		})
	}
}

func TestWeeklyDigestService_RunInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewWeeklyDigestService(mocks.NewMockDigestService(ctrl), testConfig())
	service.syncRunning = true

	_, err := service.RunDigest(context.Background())
	assert.ErrorIs(t, err, digest.ErrRunInProgress)

	assert.ErrorIs(t, service.TriggerManualSync(), digest.ErrRunInProgress)
}

func TestWeeklyDigestService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDigest := mocks.NewMockDigestService(ctrl)

	done := make(chan struct{})
	mockDigest.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, digest.Options) (*digest.RunReport, error) {
			defer close(done)
			return &digest.RunReport{Outcome: digest.OutcomeDryRun}, nil
		})

	service := NewWeeklyDigestService(mockDigest, testConfig())
	require.NoError(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("execução manual não foi disparada")
	}
}

func TestWeeklyDigestService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda", func(t *testing.T) {
		cfg := testConfig()
		cfg.WeeklyDigest.Enabled = false
		service := NewWeeklyDigestService(nil, cfg)

		require.NoError(t, service.Start(context.Background()))
		assert.Equal(t, false, service.GetStatus()["sync_enabled"])
	})

	t.Run("Cron inválida retorna erro", func(t *testing.T) {
		cfg := testConfig()
		cfg.WeeklyDigest.CronSchedule = "toda segunda"
		service := NewWeeklyDigestService(nil, cfg)

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Agenda e para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service := NewWeeklyDigestService(nil, testConfig())

		require.NoError(t, service.Start(ctx))
		assert.Equal(t, "0 10 * * 1", service.GetStatus()["sync_cron"])
	})
}
