package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/pkg/utils"
)

var pickHeaders = []string{"地区", "榜单", "平台", "当前排名", "上周排名", "变化", "异动类型", "App ID", "游戏名", "下载量", "收入"}

// partitionPicker devolve um registro por partição no período
type partitionPicker interface {
	Pick(ctx context.Context, period string, key domain.PartitionKey) (*domain.Period, []domain.RankRecord, error)
}

func pickCmd(store *storeFlags) *cobra.Command {
	var period string
	var csvPath string

	c := &cobra.Command{
		Use:   "pick",
		Short: "Lista um registro por região, ranking e plataforma na semana",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(store)
			if err != nil {
				return err
			}

			if err := runPick(cmd.Context(), os.Stdout, newSensorTowerSource(cfg), period, csvPath); err != nil {
				return &exitError{code: 1, err: err}
			}

			return nil
		},
	}

	c.Flags().StringVar(&period, "period", "", "Data do ranking YYYY-MM-DD (padrão: a mais recente)")
	c.Flags().StringVar(&csvPath, "csv", "", "Grava o resultado também em CSV")

	return c
}

// runPick imprime a tabela do período. Ausência de dados não é erro.
func runPick(ctx context.Context, w io.Writer, picker partitionPicker, period, csvPath string) error {
	period, err := utils.NormalizePeriod(period)
	if err != nil {
		return err
	}

	p, records, err := picker.Pick(ctx, period, domain.RegionSignalPlatform)
	switch {
	case errors.Is(err, domain.ErrNoData) && period == "":
		fmt.Fprintln(w, "未找到任何异动数据（rank_changes 为空）")
		return nil
	case errors.Is(err, domain.ErrNoData):
		fmt.Fprintf(w, "未找到榜单日期 %s 的异动数据\n", period)
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(w, "最近一周榜单日期：%s\n\n", p.Current)

	if len(records) == 0 {
		fmt.Fprintln(w, "该周没有任何异动记录。")
		return nil
	}

	rows := pickRows(records)

	renderTable(w, pickHeaders, rows)
	fmt.Fprintf(w, "\n共 %d 条（每地区每榜单每平台一条）\n", len(rows))

	if csvPath == "" {
		return nil
	}

	if err := writeCSV(csvPath, pickHeaders, rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "已写入 CSV：%s\n", csvPath)

	return nil
}

func pickRows(records []domain.RankRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Region,
			r.Signal,
			r.Platform,
			strconv.Itoa(r.CurrentRank),
			r.PreviousRankLabel(),
			r.ChangeAnnotation,
			r.ChangeTag,
			r.EntityID,
			r.DisplayName,
			r.Downloads.String(),
			r.Revenue.String(),
		})
	}
	return rows
}

// renderTable imprime uma tabela ASCII alinhada pela largura de exibição (CJK ocupa duas colunas)
func renderTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}

	sep := separator(widths)

	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, tableLine(widths, headers))
	fmt.Fprintln(w, sep)
	for _, row := range rows {
		fmt.Fprintln(w, tableLine(widths, row))
	}
	fmt.Fprintln(w, sep)
}

func separator(widths []int) string {
	var b strings.Builder
	b.WriteString("+")
	for _, width := range widths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteString("+")
	}
	return b.String()
}

func tableLine(widths []int, cells []string) string {
	var b strings.Builder
	b.WriteString("|")
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(" ")
		b.WriteString(runewidth.FillRight(cell, width))
		b.WriteString(" |")
	}
	return b.String()
}

func writeCSV(path string, headers []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("erro ao criar diretório %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("erro ao criar %s: %w", path, err)
	}
	defer f.Close()

	// BOM para o Excel abrir o UTF-8 corretamente
	if _, err := f.WriteString("\ufeff"); err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(headers); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}

	return cw.Error()
}
