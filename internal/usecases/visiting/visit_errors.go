package visiting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/visita360-api/pkg/apiErrors"
)

// Erros específicos para o contexto de visitas e follow-ups
var (
	// Erros de validação
	ErrVisitIDRequired       = errors.New("visit ID is required")
	ErrCompanyRequired       = errors.New("empresa é obrigatória")
	ErrAddressRequired       = errors.New("endereço é obrigatório")
	ErrInvalidDate           = errors.New("data deve estar no formato YYYY-MM-DD")
	ErrInvalidEnum           = errors.New("valor fora da enumeração")
	ErrCoordinatesIncomplete = errors.New("latitude e longitude devem ser informadas juntas")
	ErrInvalidCoordinates    = errors.New("coordenadas inválidas")
	ErrTooManyPhotos         = errors.New("máximo de fotos excedido")
	ErrNoFieldsToUpdate      = errors.New("nenhum campo para atualizar")
	ErrNegativeValue         = errors.New("valor não pode ser negativo")
	ErrLossReasonOnClosed    = errors.New("motivo de perda não se aplica a pedido fechado")

	// Erros de recurso
	ErrVisitNotFound = errors.New("visit not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// VisitError é um erro com contexto adicional para visitas
type VisitError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *VisitError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *VisitError) Unwrap() error {
	return e.Err
}

func NewVisitError(err error, code string, details string) *VisitError {
	return &VisitError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func newValidationError(err error, details string) *VisitError {
	code := apiErrors.ErrInvalidRequest
	switch {
	case errors.Is(err, ErrInvalidEnum):
		code = apiErrors.ErrInvalidEnum
	case errors.Is(err, ErrInvalidCoordinates), errors.Is(err, ErrCoordinatesIncomplete):
		code = apiErrors.ErrInvalidCoordinates
	case errors.Is(err, ErrInvalidDate):
		code = apiErrors.ErrInvalidFormat
	case errors.Is(err, ErrCompanyRequired), errors.Is(err, ErrAddressRequired), errors.Is(err, ErrVisitIDRequired):
		code = apiErrors.ErrMissingRequiredData
	}
	return NewVisitError(err, code, details)
}

func newNotFoundError(id int64) *VisitError {
	return NewVisitError(ErrVisitNotFound, apiErrors.ErrVisitNotFound, fmt.Sprintf("visita %d", id))
}

func newDatabaseError(err error) *VisitError {
	return NewVisitError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
}
