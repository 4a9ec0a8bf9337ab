package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o logger estruturado usado pelas execuções do digest e pela API
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	RunIDKey         contextKey = "run_id"

	correlationIDField = "correlation_id"
	runIDField         = "run_id"
)

// devFields são os campos mantidos em desenvolvimento; o resto só aparece nos logs JSON
var devFields = map[string]bool{
	correlationIDField: true,
	runIDField:         true,
	"domain":           true,
	"period":           true,
	"channel":          true,
	"part":             true,
	"job":              true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
}

type logger struct {
	entry *logrus.Entry
}

var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment é verdadeiro quando APP_ENV está vazio, "development" ou "dev"
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// Setup configura nível e formato do logger global. Fora de desenvolvimento os logs saem em JSON.
func Setup(level string) error {
	lvl := logrus.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		lvl = parsed
	}

	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)

	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

	return nil
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !devFields[key] {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
	}

	kept := make(logrus.Fields)
	for k, v := range fields {
		if devFields[k] || strings.HasPrefix(k, "user_") {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) Info(args ...interface{})                 { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...interface{})                 { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...interface{})                { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// WithCorrelationID reaproveita o ID já presente no contexto ou gera um novo
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	if id := GetCorrelationID(ctx); id != "" {
		return ctx, id
	}
	id := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, id), id
}

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}

// WithRunID marca o contexto com o ID da execução do digest
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

func GetRunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey).(string)
	return id
}

// ForContext devolve o logger com correlation_id e run_id do contexto, quando presentes
func ForContext(ctx context.Context) Logger {
	fields := Fields{}
	if id := GetCorrelationID(ctx); id != "" {
		fields[correlationIDField] = id
	}
	if id := GetRunID(ctx); id != "" {
		fields[runIDField] = id
	}
	if len(fields) == 0 {
		return L
	}
	return L.WithFields(fields)
}
