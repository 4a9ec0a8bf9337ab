package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/weekly-rank-digest/internal/api"
	"github.com/vfg2006/weekly-rank-digest/internal/scheduler"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/authenticating"
)

func serveCmd(store *storeFlags) *cobra.Command {
	var port string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Sobe a API de relatórios e a cron do digest semanal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(store)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			pipeline := newPipeline(cfg)
			authenticator := authenticating.NewService(cfg)

			weeklyDigestService := scheduler.NewWeeklyDigestService(pipeline, cfg)
			if err := weeklyDigestService.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao iniciar o agendador do digest semanal")
			} else {
				logrus.Info("Agendador do digest semanal iniciado com sucesso")
			}

			server, err := api.New(cfg, pipeline, authenticator, weeklyDigestService)
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}

	c.Flags().StringVar(&port, "port", "", "Porta HTTP (padrão PORT)")

	return c
}
