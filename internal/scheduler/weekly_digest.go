// Package scheduler contém os serviços de agendamento do digest semanal
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weekly-rank-digest/internal/config"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/digest"
)

type WeeklyDigestConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type WeeklyDigestService struct {
	scheduler           *gocron.Scheduler
	digestService       digest.DigestService
	cfg                 *config.Config
	config              WeeklyDigestConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *digest.RunReport
}

func NewWeeklyDigestService(digestService digest.DigestService, cfg *config.Config) *WeeklyDigestService {
	digestConfig := WeeklyDigestConfig{
		CronSchedule: cfg.WeeklyDigest.CronSchedule, // Default: segunda-feira às 10h
		SyncEnabled:  cfg.WeeklyDigest.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
	}).Info("Configuração do agendador do digest semanal carregada")

	return &WeeklyDigestService{
		scheduler:     gocron.NewScheduler(time.Local),
		digestService: digestService,
		cfg:           cfg,
		config:        digestConfig,
	}
}

func (s *WeeklyDigestService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do digest semanal desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do digest semanal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunDigest(ctx); err != nil {
			logrus.WithError(err).Error("Erro na execução agendada do digest semanal")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o digest semanal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do digest semanal")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest executa o digest com a configuração atual. Só uma execução por vez.
func (s *WeeklyDigestService) RunDigest(ctx context.Context) (*digest.RunReport, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Digest semanal já está em execução")
		return nil, digest.ErrRunInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando digest semanal")

	report, err := s.digestService.Run(ctx, s.options())

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if report != nil {
		s.lastReport = report
	}
	s.syncMutex.Unlock()

	if err != nil {
		return report, err
	}

	logrus.WithField("outcome", report.Outcome).Info("Digest semanal concluído")

	return report, nil
}

func (s *WeeklyDigestService) options() digest.Options {
	return digest.Options{
		DryRun:    s.cfg.Report.DryRun,
		OutputDir: s.cfg.Report.OutputDir,
		Title:     s.cfg.Report.DigestTitle,
		Channels:  s.cfg.Channels(),
	}
}

// TriggerManualSync inicia manualmente uma execução do digest em segundo plano
func (s *WeeklyDigestService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Digest semanal já em andamento, ignorando solicitação manual")
		return digest.ErrRunInProgress
	}

	logrus.Info("Iniciando execução manual do digest semanal")
	go func() {
		if _, err := s.RunDigest(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do digest semanal")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *WeeklyDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_run_id"] = s.lastReport.RunID
		status["last_outcome"] = s.lastReport.Outcome
		status["last_delivery"] = s.lastReport.Delivery
	}

	return status
}
