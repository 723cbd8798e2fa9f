package helpers

import (
	"errors"
	"fmt"
	"strings"
)

// AppError representa un error controlado con código HTTP y mensaje funcional.
type AppError struct {
	Status  int
	Message string
	Err     error
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap permite extraer el error original cuando exista.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError construye un AppError con mensaje y status.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// AsAppError convierte cualquier error en AppError. Los errores HTTP del CRUD
// conservan su status y su mensaje funcional; el resto cae a 500 con el
// mensaje por defecto.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	msg := defaultMessage
	if msg == "" {
		msg = "error inesperado"
	}
	var he *HTTPError
	if errors.As(err, &he) {
		if remoto := strings.TrimSpace(he.Message); remoto != "" {
			msg = remoto
		}
		return &AppError{Status: he.Status, Message: msg, Err: err}
	}
	return &AppError{Status: 500, Message: msg, Err: err}
}

// ContainsMessage busca un fragmento dentro del mensaje del error, sin
// distinguir mayúsculas. Se usa para reconocer fallos específicos reportados
// por bienes_crud en texto plano.
func ContainsMessage(err error, fragment string) bool {
	if err == nil || strings.TrimSpace(fragment) == "" {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(fragment))
}
