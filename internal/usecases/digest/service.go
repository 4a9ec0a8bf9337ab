package digest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/archive"
	"github.com/vfg2006/weekly-rank-digest/infrastructure/database"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/delivery"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/reporting"
	"github.com/vfg2006/weekly-rank-digest/pkg/log"
	"github.com/vfg2006/weekly-rank-digest/pkg/utils"
)

// ErrUnknownDomain indica um domínio de relatório não registrado
var ErrUnknownDomain = errors.New("domínio de relatório desconhecido")

// Options são os parâmetros já resolvidos de uma execução
type Options struct {
	Period    string // Vazio usa o período mais recente de cada domínio
	DryRun    bool
	OutputDir string // Vazio não grava arquivos
	Title     string // Título do cartão do digest combinado
	Channels  []domain.DeliveryChannel
}

// DomainResult registra o que aconteceu com cada domínio na execução
type DomainResult struct {
	Domain   domain.ReportDomain `json:"domain"`
	Period   string              `json:"period,omitempty"`
	Rows     int                 `json:"rows"`
	Skipped  bool                `json:"skipped"`
	Reason   string              `json:"reason,omitempty"`
	Archived string              `json:"archived,omitempty"`
	Err      error               `json:"-"`
}

// RunReport é o relatório de uma execução do digest
type RunReport struct {
	RunID      string                  `json:"run_id"`
	Outcome    Outcome                 `json:"outcome"`
	StartedAt  time.Time               `json:"started_at"`
	FinishedAt time.Time               `json:"finished_at"`
	Title      string                  `json:"title"`
	Domains    []DomainResult          `json:"domains"`
	Documents  []domain.ReportDocument `json:"-"`
	Markdown   string                  `json:"markdown,omitempty"`
	Delivery   domain.RunStatus        `json:"delivery"`
}

type DigestService interface {
	Run(ctx context.Context, opts Options) (*RunReport, error)
	Preview(ctx context.Context, reportDomain domain.ReportDomain, period string) (*domain.ReportDocument, string, error)
	Periods(ctx context.Context, reportDomain domain.ReportDomain) (*domain.AvailablePeriods, error)
	Generate(ctx context.Context, reportDomain domain.ReportDomain, outputDir string) ([]string, error)
}

type PipelineService struct {
	Builders   []DomainBuilder
	Dispatcher delivery.DeliveryService
	NewArchive func(dir string) archive.Writer
}

func NewPipelineService(dispatcher delivery.DeliveryService, builders ...DomainBuilder) DigestService {
	return &PipelineService{
		Builders:   builders,
		Dispatcher: dispatcher,
		NewArchive: archive.NewFileWriter,
	}
}

// Run executa o digest: monta um relatório por domínio, grava (opcional), junta e envia.
// Domínios sem dados ou indisponíveis são pulados sem interromper os demais.
func (s *PipelineService) Run(ctx context.Context, opts Options) (*RunReport, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	ctx, _ = log.WithCorrelationID(ctx)
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	report := &RunReport{
		RunID:     runID,
		StartedAt: time.Now(),
		Title:     opts.Title,
		Domains:   make([]DomainResult, 0, len(s.Builders)),
		Documents: make([]domain.ReportDocument, 0, len(s.Builders)),
	}
	defer func() { report.FinishedAt = time.Now() }()

	if !opts.DryRun && len(opts.Channels) == 0 {
		report.Outcome = OutcomeNoChannel
		logger.Error("Nenhum webhook configurado. Defina FEISHU_WEBHOOK_URL ou WECOM_WEBHOOK_URL_REAL (ou WECOM_WEBHOOK_URL)")
		return report, NewDigestError(delivery.ErrNoChannel, OutcomeNoChannel, "")
	}

	missing := 0
	parts := make([]string, 0, len(s.Builders))

	for _, builder := range s.Builders {
		result := DomainResult{Domain: builder.Domain()}
		domainLogger := logger.WithField("domain", builder.Domain())

		doc, err := builder.Build(ctx, opts.Period)
		if err != nil {
			result.Skipped = true
			result.Err = err
			switch {
			case errors.Is(err, database.ErrStoreMissing):
				missing++
				result.Reason = string(OutcomeStoreMissing)
				domainLogger.WithError(err).Warn("[pulado] banco do domínio não encontrado")
			case errors.Is(err, domain.ErrNoData):
				result.Reason = string(OutcomeNoData)
				domainLogger.Info("[pulado] domínio sem dados para o período")
			default:
				result.Reason = "unavailable"
				domainLogger.WithError(err).Error("[pulado] falha ao ler o domínio")
			}
			report.Domains = append(report.Domains, result)
			continue
		}

		result.Period = doc.PeriodLabel
		result.Rows = doc.RowCount()
		md := reporting.Markdown(*doc)

		if opts.OutputDir != "" {
			path, err := s.NewArchive(opts.OutputDir).Write(doc.Domain, doc.PeriodLabel, md)
			if err != nil {
				domainLogger.WithError(err).Error("Falha ao gravar o relatório em disco")
			} else {
				result.Archived = path
			}
		}

		report.Domains = append(report.Domains, result)
		report.Documents = append(report.Documents, *doc)
		parts = append(parts, md)

		domainLogger.Infof("Relatório montado: período %s, %d linhas", result.Period, result.Rows)
	}

	if len(report.Documents) == 0 {
		if missing > 0 && missing == len(s.Builders) {
			report.Outcome = OutcomeStoreMissing
			logger.Error("Nenhum banco de dados encontrado")
			return report, NewDigestError(database.ErrStoreMissing, OutcomeStoreMissing, "")
		}
		report.Outcome = OutcomeNoData
		logger.Warn("Nenhum relatório gerado: não há dados para o período")
		return report, nil
	}

	report.Markdown = reporting.Merge(report.Documents...)

	if opts.DryRun {
		report.Outcome = OutcomeDryRun
		logger.Info("dry-run: envio suprimido")
		return report, nil
	}

	report.Delivery = s.Dispatcher.Dispatch(ctx, opts.Channels, delivery.Message{
		Title:    opts.Title,
		Markdown: report.Markdown,
		Parts:    parts,
	})
	report.Outcome = OutcomeDelivered

	logger.Infof("Digest entregue: %d sucesso(s), %d falha(s)", report.Delivery.Successes, report.Delivery.Failures)

	return report, nil
}

// Preview monta o relatório de um domínio sem enviar
func (s *PipelineService) Preview(ctx context.Context, reportDomain domain.ReportDomain, period string) (*domain.ReportDocument, string, error) {
	builder, err := s.builder(reportDomain)
	if err != nil {
		return nil, "", err
	}

	doc, err := builder.Build(ctx, period)
	if err != nil {
		return nil, "", err
	}

	return doc, reporting.Markdown(*doc), nil
}

func (s *PipelineService) Periods(ctx context.Context, reportDomain domain.ReportDomain) (*domain.AvailablePeriods, error) {
	builder, err := s.builder(reportDomain)
	if err != nil {
		return nil, err
	}

	periods, err := builder.Periods(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.AvailablePeriods{Domain: reportDomain, Periods: periods}, nil
}

// Generate grava um arquivo por período disponível do domínio
func (s *PipelineService) Generate(ctx context.Context, reportDomain domain.ReportDomain, outputDir string) ([]string, error) {
	builder, err := s.builder(reportDomain)
	if err != nil {
		return nil, err
	}

	periods, err := builder.Periods(ctx)
	if err != nil {
		return nil, err
	}

	writer := s.NewArchive(outputDir)
	written := make([]string, 0, len(periods))

	for _, p := range periods {
		doc, err := builder.Build(ctx, p.Current)
		if err != nil {
			return written, fmt.Errorf("erro ao montar relatório de %s: %w", p.Current, err)
		}

		path, err := writer.Write(doc.Domain, doc.PeriodLabel, reporting.Markdown(*doc))
		if err != nil {
			return written, err
		}

		log.L.WithField("domain", reportDomain).Infof("Gerado: %s (%d linhas)", path, doc.RowCount())
		written = append(written, path)
	}

	return written, nil
}

func (s *PipelineService) builder(reportDomain domain.ReportDomain) (DomainBuilder, error) {
	for _, b := range s.Builders {
		if b.Domain() == reportDomain {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownDomain, reportDomain)
}
