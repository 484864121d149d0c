// Package apperror defines the error taxonomy shared by services and
// handlers. Every error here eventually surfaces as a human-readable
// message on a re-rendered screen; nothing in this application returns a
// machine-readable error response.
package apperror

import (
	"errors"
	"strings"
)

var (
	// ErrAdminNoConfigurado: the admin identity is missing from the
	// configuration. Distinct from a credential mismatch on purpose.
	ErrAdminNoConfigurado = errors.New("configuracion de admin no encontrada")

	// ErrCredenciales: username or password did not match.
	ErrCredenciales = errors.New("credenciales incorrectas")

	// ErrClaveDuplicada: another usuario already holds the submitted clave.
	ErrClaveDuplicada = errors.New("ya existe un usuario con esa clave")

	// ErrUsuarioNoEncontrado: no usuario row for the requested id.
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
)

// ValidationError collects every violated rule before reporting — the form
// flows are not fail-fast.
type ValidationError struct {
	Errores []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errores, ", ")
}

// AsValidation unwraps err into a ValidationError, or nil.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
