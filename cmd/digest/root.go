package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook"
	"github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook/webhookclient"
	"github.com/vfg2006/weekly-rank-digest/internal/config"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/delivery"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/digest"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/reporting"
	"github.com/vfg2006/weekly-rank-digest/pkg/log"
)

// storeFlags são os caminhos dos bancos aceitos por todos os subcomandos
type storeFlags struct {
	videosDB      string
	sensorTowerDB string
	logLevel      string
}

func newRootCmd() *cobra.Command {
	flags := &storeFlags{}

	cmd := &cobra.Command{
		Use:           "digest",
		Short:         "Relatórios semanais de ranking de mini games e envio para Feishu / WeCom",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.videosDB, "videos-db", "", "Banco com weekly_report_simple (padrão VIDEOS_DB_PATH)")
	cmd.PersistentFlags().StringVar(&flags.sensorTowerDB, "sensortower-db", "", "Banco com rank_changes (padrão SENSORTOWER_DB_PATH)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Nível de log (padrão LOG_LEVEL)")

	cmd.AddCommand(
		sendCmd(flags),
		generateCmd(flags),
		pickCmd(flags),
		sendFileCmd(flags),
		serveCmd(flags),
		hashPasswordCmd(),
	)

	return cmd
}

// loadConfig lê .env + ambiente e aplica as flags globais por cima
func loadConfig(flags *storeFlags) (*config.Config, error) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	if flags.videosDB != "" {
		cfg.Stores.VideosDBPath = flags.videosDB
	}
	if flags.sensorTowerDB != "" {
		cfg.Stores.SensorTowerDBPath = flags.sensorTowerDB
	}
	if flags.logLevel != "" {
		cfg.App.LogLevel = flags.logLevel
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Setup("info")
	}

	return cfg, nil
}

// newDispatcher monta o envio pelos webhooks configurados
func newDispatcher(cfg *config.Config) delivery.DeliveryService {
	return delivery.NewDispatcher(webhook.New(webhookclient.NewClient()), cfg.Report.DetailLink)
}

func newSensorTowerSource(cfg *config.Config) *digest.SensorTowerSource {
	return digest.NewSensorTowerSource(
		digest.StoreConnector(cfg.Database, cfg.Stores.SensorTowerDBPath),
		reporting.NewRenderer(cfg.Report.DetailLink),
		cfg.Report.NewEntrantRankCeiling,
		cfg.Report.SurgeLimit,
	)
}

// newPipeline registra os domínios na ordem do digest: resumo WeChat/Douyin e depois SensorTower
func newPipeline(cfg *config.Config) digest.DigestService {
	brief := digest.NewWeeklyBriefSource(
		digest.StoreConnector(cfg.Database, cfg.Stores.VideosDBPath),
		reporting.NewRenderer(cfg.Report.DetailLink),
	)

	return digest.NewPipelineService(newDispatcher(cfg), brief, newSensorTowerSource(cfg))
}
