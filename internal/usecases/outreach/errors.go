package outreach

import (
	"errors"
	"fmt"

	"github.com/vfg2006/creator-pitch-api/internal/domain"
)

// Erros específicos para o contexto de outreach
var (
	// Erros de validação
	ErrBrandIDRequired    = errors.New("brand ID is required")
	ErrOutreachIDRequired = errors.New("outreach ID is required")
	ErrInvalidStatus      = errors.New("invalid outreach status")
	ErrInvalidAmount      = errors.New("amount must not be negative")
	ErrNoChanges          = errors.New("no fields to update")

	// Erros de recurso
	ErrBrandNotFound    = errors.New("brand not found")
	ErrOutreachNotFound = errors.New("outreach not found")

	// Erros de estado
	ErrAlreadyPitched    = errors.New("brand already pitched by user")
	ErrConcurrentUpdate  = errors.New("outreach was modified by another request")
	ErrInvalidTransition = errors.New("invalid outreach status transition")
	ErrTerminalStatus    = fmt.Errorf("%w: outreach is in a final status", ErrInvalidTransition)

	// Erros de infraestrutura
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating outreach ID")
)

// OutreachError carrega o código da API e, em conflitos, o registro existente
type OutreachError struct {
	Err      error
	Code     string
	Existing *domain.OutreachRecord
	Details  string
}

func (e *OutreachError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OutreachError) Unwrap() error {
	return e.Err
}

func NewOutreachError(err error, code string, details string) *OutreachError {
	return &OutreachError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewConflictError cria um OutreachError de conflito com o registro atual anexado
func NewConflictError(err error, existing *domain.OutreachRecord, details string) *OutreachError {
	return &OutreachError{
		Err:      err,
		Code:     conflictCode,
		Existing: existing,
		Details:  details,
	}
}
