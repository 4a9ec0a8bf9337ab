package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vfg2006/weekly-rank-digest/internal/config"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/digest"
	"github.com/vfg2006/weekly-rank-digest/pkg/utils"
)

type sendFlags struct {
	period    string
	dryRun    bool
	outputDir string
	title     string
	feishuURL string
	wecomURL  string
}

func sendCmd(store *storeFlags) *cobra.Command {
	flags := &sendFlags{}

	c := &cobra.Command{
		Use:   "send",
		Short: "Monta os relatórios semanais e envia o digest para Feishu e WeCom",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(store)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return &exitError{code: 1, err: err}
			}

			report, err := newPipeline(cfg).Run(cmd.Context(), digest.Options{
				Period:    flags.period,
				DryRun:    cfg.Report.DryRun,
				OutputDir: cfg.Report.OutputDir,
				Title:     cfg.Report.DigestTitle,
				Channels:  cfg.Channels(),
			})
			if report != nil {
				printRunReport(os.Stdout, os.Stderr, report)
			}

			if err != nil {
				code := 1
				if outcome, ok := digest.OutcomeOf(err); ok {
					code = outcome.ExitCode()
				}
				return &exitError{code: code, err: err}
			}

			return nil
		},
	}

	flags.bind(c)

	return c
}

func (f *sendFlags) bind(c *cobra.Command) {
	c.Flags().StringVar(&f.period, "period", "", "Período do relatório (vazio usa o mais recente de cada domínio)")
	c.Flags().BoolVar(&f.dryRun, "dry-run", false, "Só monta e imprime o conteúdo, sem enviar")
	c.Flags().StringVar(&f.outputDir, "out", "", "Diretório onde gravar os relatórios em Markdown (padrão OUTPUT_DIR)")
	c.Flags().StringVar(&f.title, "title", "", "Título do cartão do Feishu (padrão DIGEST_TITLE)")
	c.Flags().StringVar(&f.feishuURL, "feishu-url", "", "Webhook do Feishu (padrão FEISHU_WEBHOOK_URL)")
	c.Flags().StringVar(&f.wecomURL, "wecom-url", "", "Webhook do WeCom (padrão WECOM_WEBHOOK_URL_REAL)")
}

// apply valida o período e sobrescreve a configuração com as flags informadas
func (f *sendFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	period, err := utils.NormalizePeriod(f.period)
	if err != nil {
		return err
	}
	f.period = period

	if cmd.Flags().Changed("dry-run") {
		cfg.Report.DryRun = f.dryRun
	}
	if f.outputDir != "" {
		cfg.Report.OutputDir = f.outputDir
	}
	if f.title != "" {
		cfg.Report.DigestTitle = f.title
	}
	if f.feishuURL != "" {
		cfg.Feishu.WebhookURL = f.feishuURL
	}
	if f.wecomURL != "" {
		cfg.WeCom.WebhookURL = f.wecomURL
	}
	cfg.Normalize()

	return nil
}

func printRunReport(out, errOut io.Writer, report *digest.RunReport) {
	for _, d := range report.Domains {
		switch {
		case d.Skipped:
			fmt.Fprintf(errOut, "[跳过] %s: %s\n", d.Domain, d.Reason)
		case d.Archived != "":
			fmt.Fprintf(out, "[%s] %s (%d 条) -> %s\n", d.Domain, d.Period, d.Rows, d.Archived)
		}
	}

	switch report.Outcome {
	case digest.OutcomeNoData:
		fmt.Fprintln(errOut, "未生成任何周报内容，请检查数据库与表结构。")

	case digest.OutcomeDryRun:
		fmt.Fprintln(out, "=== 构建结果（dry-run，不发送）===")
		fmt.Fprintf(out, "标题: %s\n", report.Title)
		fmt.Fprintln(out, "---")
		fmt.Fprintln(out, report.Markdown)

	case digest.OutcomeDelivered:
		printDelivery(out, errOut, report.Delivery)
	}
}

func printDelivery(out, errOut io.Writer, status domain.RunStatus) {
	for _, r := range status.Results {
		if r.Success() {
			fmt.Fprintf(out, "[%s] 发送成功（第 %d 条，%d 字节）\n", r.Channel, r.Part, r.Bytes)
			continue
		}
		fmt.Fprintf(errOut, "[%s] 发送失败 status=%d resp=%s\n", r.Channel, r.StatusCode, r.Response)
	}
}
