package geocoding

import (
	"errors"
	"fmt"
)

// Erros de geocodificação. Nenhum deles interrompe o fluxo de cadastro:
// o chamador recebe resultado nulo e a mensagem fica em LastError.
var (
	ErrEmptyAddress       = errors.New("Endereço não pode estar vazio")
	ErrAddressNotFound    = errors.New("Não foi possível encontrar as coordenadas para este endereço")
	ErrInvalidCoordinates = errors.New("coordenadas inválidas")
	ErrProvider           = errors.New("erro no provedor de geocodificação")
)

// ProviderError carrega a falha de transporte ou de status do provedor
type ProviderError struct {
	Operation  string // geocodificação ou reverse geocoding
	StatusCode int    // zero quando a falha não é de status HTTP
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Erro na %s: %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("Erro na %s: %s", e.Operation, e.Err.Error())
}

func (e *ProviderError) Unwrap() []error {
	return []error{ErrProvider, e.Err}
}
