package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFilterDate  = errors.New("filtro de data deve estar no formato YYYY-MM-DD")
	ErrInvalidFilterRange = errors.New("data inicial posterior à data final")
	ErrInvalidFilterEnum  = errors.New("filtro fora da enumeração")
	ErrLoadData           = errors.New("erro ao carregar dados do dashboard")
)

// FilterError identifica o filtro rejeitado
type FilterError struct {
	Err   error
	Field string
	Value string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("%s (%s=%q)", e.Err.Error(), e.Field, e.Value)
}

func (e *FilterError) Unwrap() error {
	return e.Err
}
