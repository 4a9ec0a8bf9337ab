package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Período sem dados", code: ErrReportNotFound, wantStatus: http.StatusNotFound},
		{name: "Digest em execução", code: ErrRunInProgress, wantStatus: http.StatusConflict},
		{name: "Token inválido", code: ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{name: "Código desconhecido vira 500", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"code":"`+tt.code+`","message":"mensagem"}`, rec.Body.String())
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}, FromError(nil, ErrStoreMissing))
	assert.Equal(t, APIError{Code: ErrStoreMissing, Message: "sem banco"}, FromError(errors.New("sem banco"), ErrStoreMissing))
}
