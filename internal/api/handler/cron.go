package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weekly-rank-digest/internal/usecases/digest"
	"github.com/vfg2006/weekly-rank-digest/pkg/apiErrors"
)

// CronJobTypeWeeklyDigest identifica a cron do digest semanal
const CronJobTypeWeeklyDigest = "weekly-digest"

// CronJob é uma cron que pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	WeeklyDigestService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeWeeklyDigest:
			if services.WeeklyDigestService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do digest semanal não disponível", nil)
				return
			}
			if err := services.WeeklyDigestService.TriggerManualSync(); err != nil {
				if errors.Is(err, digest.ErrRunInProgress) {
					apiErrors.WriteError(w, apiErrors.ErrRunInProgress, err.Error(), nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: weekly-digest", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.WeeklyDigestService != nil {
			status[CronJobTypeWeeklyDigest] = services.WeeklyDigestService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
