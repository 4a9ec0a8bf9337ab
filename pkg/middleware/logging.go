package middleware

import (
	"context"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/vfg2006/weekly-rank-digest/pkg/apiErrors"
	"github.com/vfg2006/weekly-rank-digest/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o ID usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

const slowRequest = 500 * time.Millisecond

// quietPaths não geram log por requisição (sondas de saúde)
var quietPaths = map[string]bool{
	"/healthcheck": true,
}

// LoggingMiddleware registra cada requisição com status, duração e o domínio/job envolvido
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if id := strings.TrimSpace(r.Header.Get(CorrelationIDHeader)); id != "" {
				ctx = context.WithValue(ctx, log.CorrelationIDKey, id)
			}
			ctx, correlationID := log.WithCorrelationID(ctx)
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			if quietPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			lrw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(start)

			fields := requestFields(r)
			fields["method"] = r.Method
			fields["path"] = r.URL.Path
			fields["status_code"] = lrw.statusCode
			fields["duration_ms"] = elapsed.Milliseconds()

			logger := log.ForContext(ctx).WithFields(fields)

			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case lrw.statusCode >= http.StatusBadRequest:
				logger.Warn("Requisição recusada")
			default:
				logger.Info("Requisição finalizada")
			}

			if elapsed > slowRequest {
				logger.Warnf("Requisição lenta: %s", elapsed)
			}
		})
	}
}

// requestFields extrai o domínio e o período de /v1/reports e o job de /v1/cron/:type/run
func requestFields(r *http.Request) log.Fields {
	fields := log.Fields{}
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	if len(segments) >= 3 && segments[0] == "v1" {
		switch segments[1] {
		case "reports":
			fields["domain"] = segments[2]
			if period := r.URL.Query().Get("period"); period != "" {
				fields["period"] = period
			}
		case "cron":
			if len(segments) == 4 && segments[3] == "run" {
				fields["job"] = segments[2]
			}
		}
	}

	return fields
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.statusCode = code
	s.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware transforma um panic em 500 no formato de erro da API, com a pilha no log
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       rec,
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(stack),
				}).Error("Panic ao atender requisição")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
