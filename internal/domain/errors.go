package domain

import "errors"

var (
	// ErrNoData indica que o domínio não possui registros para o período (não é falha da execução)
	ErrNoData = errors.New("nenhum dado disponível")

	// ErrDomainUnavailable indica que o banco ou a tabela do domínio não puderam ser lidos
	ErrDomainUnavailable = errors.New("domínio de relatório indisponível")
)
