package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/database"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/digest"
	"github.com/vfg2006/weekly-rank-digest/pkg/apiErrors"
	"github.com/vfg2006/weekly-rank-digest/pkg/utils"
)

type ReportResponse struct {
	Domain   domain.ReportDomain    `json:"domain"`
	Period   string                 `json:"period"`
	Title    string                 `json:"title"`
	Rows     int                    `json:"rows"`
	Markdown string                 `json:"markdown"`
	Document *domain.ReportDocument `json:"document"`
}

// GetReport renderiza o relatório de um domínio (?period= vazio usa o mais recente)
func GetReport(service digest.DigestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportDomain := domain.ReportDomain(httprouter.ParamsFromContext(r.Context()).ByName("domain"))
		period, err := utils.NormalizePeriod(r.URL.Query().Get("period"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		doc, md, err := service.Preview(r.Context(), reportDomain, period)
		if err != nil {
			handleReportError(w, err, reportDomain)
			return
		}

		writeJSON(w, http.StatusOK, ReportResponse{
			Domain:   doc.Domain,
			Period:   doc.PeriodLabel,
			Title:    doc.Title,
			Rows:     doc.RowCount(),
			Markdown: md,
			Document: doc,
		})
	}
}

// GetReportPeriods lista os períodos disponíveis do domínio
func GetReportPeriods(service digest.DigestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportDomain := domain.ReportDomain(httprouter.ParamsFromContext(r.Context()).ByName("domain"))

		periods, err := service.Periods(r.Context(), reportDomain)
		if err != nil {
			handleReportError(w, err, reportDomain)
			return
		}

		writeJSON(w, http.StatusOK, periods)
	}
}

func handleReportError(w http.ResponseWriter, err error, reportDomain domain.ReportDomain) {
	switch {
	case errors.Is(err, digest.ErrUnknownDomain):
		apiErrors.WriteError(w, apiErrors.ErrUnknownDomain, err.Error(), nil)

	case errors.Is(err, database.ErrStoreMissing):
		apiErrors.WriteError(w, apiErrors.ErrStoreMissing, "Banco de dados do domínio não encontrado", nil)

	case errors.Is(err, domain.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrReportNotFound, err.Error(), nil)

	default:
		logrus.WithError(err).WithField("domain", reportDomain).Error("Erro ao montar relatório")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar relatório", nil)
	}
}
