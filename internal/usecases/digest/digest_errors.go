package digest

import (
	"errors"
	"fmt"
)

// Outcome é o resultado final de uma execução do digest
type Outcome string

const (
	OutcomeStoreMissing Outcome = "store_missing"
	OutcomeNoChannel    Outcome = "no_channel"
	OutcomeNoData       Outcome = "no_data"
	OutcomeDryRun       Outcome = "dry_run"
	OutcomeDelivered    Outcome = "delivered"
)

// ExitCode mapeia o resultado para o código de saída do processo.
// Falha de um canal não altera o código: o status por canal é reportado à parte.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeStoreMissing, OutcomeNoChannel:
		return 1
	default:
		return 0
	}
}

var ErrRunInProgress = errors.New("já existe uma execução do digest em andamento")

// DigestError é um erro de configuração que encerra a execução antes de qualquer envio
type DigestError struct {
	Err     error   // Erro base
	Outcome Outcome // Resultado reportado ao operador
	Details string  // Detalhes adicionais
}

// Error implementa a interface error
func (e *DigestError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DigestError) Unwrap() error {
	return e.Err
}

// NewDigestError cria um novo erro de execução do digest
func NewDigestError(baseErr error, outcome Outcome, details string) *DigestError {
	return &DigestError{
		Err:     baseErr,
		Outcome: outcome,
		Details: details,
	}
}

// OutcomeOf extrai o resultado de um DigestError
func OutcomeOf(err error) (Outcome, bool) {
	var digestErr *DigestError
	if errors.As(err, &digestErr) {
		return digestErr.Outcome, true
	}
	return "", false
}
