package models

import "strings"

// Tipos de mantenimiento aceptados en solicitudes y reportes.
const (
	MantenimientoPreventivo = "Preventivo"
	MantenimientoCorrectivo = "Correctivo"
	MantenimientoPredictivo = "Predictivo"
	MantenimientoEmergencia = "Emergencia"
)

// Prioridades de orden de trabajo.
const (
	PrioridadAlta  = "alta"
	PrioridadMedia = "media"
	PrioridadBaja  = "baja"
)

// Tipos de documento de identidad.
const (
	DocumentoCC  = "CC"
	DocumentoCE  = "CE"
	DocumentoTI  = "TI"
	DocumentoPAS = "PAS"
)

// Estados de cuenta de usuario.
const (
	UsuarioActivo    = "activo"
	UsuarioPendiente = "pendiente"
	UsuarioInactivo  = "inactivo"
)

// TipoMantenimientoValido valida el tipo contra la lista cerrada.
// La comparación ignora mayúsculas pero el valor canónico conserva la forma original.
func TipoMantenimientoValido(tipo string) (string, bool) {
	return matchCanonico(tipo, []string{
		MantenimientoPreventivo,
		MantenimientoCorrectivo,
		MantenimientoPredictivo,
		MantenimientoEmergencia,
	})
}

// PrioridadValida valida la prioridad de una orden de trabajo.
func PrioridadValida(prioridad string) (string, bool) {
	return matchCanonico(prioridad, []string{PrioridadAlta, PrioridadMedia, PrioridadBaja})
}

// TipoDocumentoValido valida el tipo de documento de un usuario.
func TipoDocumentoValido(tipo string) (string, bool) {
	return matchCanonico(tipo, []string{DocumentoCC, DocumentoCE, DocumentoTI, DocumentoPAS})
}

// EstadoUsuarioValido valida el estado de cuenta.
func EstadoUsuarioValido(estado string) (string, bool) {
	return matchCanonico(estado, []string{UsuarioActivo, UsuarioPendiente, UsuarioInactivo})
}

func matchCanonico(value string, allowed []string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range allowed {
		if strings.EqualFold(trimmed, candidate) {
			return candidate, true
		}
	}
	return "", false
}
