package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vfg2006/weekly-rank-digest/internal/domain"
)

func generateCmd(store *storeFlags) *cobra.Command {
	var outputDir string
	var reportDomain string

	c := &cobra.Command{
		Use:   "generate",
		Short: "Grava um relatório Markdown por período disponível",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(store)
			if err != nil {
				return err
			}

			if outputDir == "" {
				outputDir = cfg.Report.OutputDir
			}
			if outputDir == "" {
				outputDir = "reports"
			}

			written, err := newPipeline(cfg).Generate(cmd.Context(), domain.ReportDomain(reportDomain), outputDir)
			for _, path := range written {
				fmt.Fprintf(os.Stdout, "已生成: %s\n", path)
			}
			if err != nil {
				return &exitError{code: 1, err: err}
			}

			fmt.Fprintf(os.Stdout, "共生成 %d 份周报\n", len(written))
			return nil
		},
	}

	c.Flags().StringVar(&outputDir, "out", "", "Diretório de saída (padrão OUTPUT_DIR ou ./reports)")
	c.Flags().StringVar(&reportDomain, "domain", string(domain.ReportDomainSensorTower), "Domínio: sensortower | wechat_douyin")

	return c
}
