package pitching

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrCreatorRequired = errors.New("creator is required")
	ErrBrandRequired   = errors.New("brand is required")
	ErrEmptyTranscript = errors.New("messages must be a non-empty array")
	ErrInvalidRole     = errors.New("message role must be user or assistant")
	ErrCreatorNotFound = errors.New("creator profile not found")

	// Erros de serviços externos
	ErrUpstreamFailure = errors.New("text generation backend failure")
	ErrProfileFailure  = errors.New("profile service failure")
)

// PitchError é um erro com o código da API para geração e refinamento
type PitchError struct {
	Err     error
	Code    string
	Details string
}

func (e *PitchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PitchError) Unwrap() error {
	return e.Err
}

func NewPitchError(err error, code string, details string) *PitchError {
	return &PitchError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
