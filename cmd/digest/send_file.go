package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/integrator/webhook"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/delivery"
	"github.com/vfg2006/weekly-rank-digest/pkg/utils"
)

func sendFileCmd(store *storeFlags) *cobra.Command {
	var title string
	var dryRun bool

	c := &cobra.Command{
		Use:   "send-file <arquivo.md>",
		Short: "Envia um relatório Markdown já pronto para os webhooks configurados",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(store)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return &exitError{code: 1, err: fmt.Errorf("erro ao ler %s: %w", args[0], err)}
			}

			md := strings.TrimSpace(string(raw))
			if md == "" {
				return &exitError{code: 1, err: fmt.Errorf("arquivo vazio: %s", args[0])}
			}

			if title == "" {
				title = delivery.ExtractTitle(md, delivery.DefaultCardTitle)
			}

			channels := cfg.Channels()

			if dryRun {
				return printPayloads(os.Stdout, channels, title, md, cfg.Report.DetailLink)
			}

			if len(channels) == 0 {
				return &exitError{code: 1, err: delivery.ErrNoChannel}
			}

			status := newDispatcher(cfg).Dispatch(cmd.Context(), channels, delivery.Message{
				Title:    title,
				Markdown: md,
			})
			printDelivery(os.Stdout, os.Stderr, status)

			return nil
		},
	}

	c.Flags().StringVar(&title, "title", "", "Título do cartão (padrão: primeiro heading do arquivo)")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "Só imprime o conteúdo, sem enviar")

	return c
}

// printPayloads mostra o JSON que seria enviado para cada canal, já truncado quando o canal tem limite
func printPayloads(w io.Writer, channels []domain.DeliveryChannel, title, md, detailLink string) error {
	fmt.Fprintf(w, "标题: %s\n", title)

	if len(channels) == 0 {
		fmt.Fprintln(w, "---")
		fmt.Fprintln(w, md)
		return nil
	}

	for _, channel := range channels {
		content := md
		if channel.Bounded() {
			content = delivery.Truncate(md, channel.MaxPayloadBytes, delivery.ContinuationSuffix(detailLink))
		}

		payload, err := webhook.Payload(channel.PayloadStyle, title, content)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "--- %s（%d 字节）---\n", channel.Name, len(content))
		fmt.Fprintln(w, utils.PrettyJson(payload))
	}

	return nil
}
