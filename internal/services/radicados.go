package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerarRadicadoOrden produce el radicado legible de una orden de trabajo a
// partir de su fecha de inicio, con el formato histórico OT-DD-MM-YYYY.
// La generación vive en el servidor: el panel sólo muestra el resultado.
func GenerarRadicadoOrden(fechaInicio time.Time) string {
	return fechaInicio.Format("OT-02-01-2006")
}

// GenerarNumeroSeguimiento produce el número público que se entrega al
// solicitante para consultar el estado de su solicitud. Lleva un sufijo
// aleatorio porque varias solicitudes pueden registrarse el mismo día.
func GenerarNumeroSeguimiento(fecha time.Time) string {
	sufijo := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "SM-" + fecha.Format("02012006") + "-" + sufijo
}

// GenerarCodigoReporte produce el código de un reporte de trabajo.
func GenerarCodigoReporte(fecha time.Time) string {
	sufijo := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "RT-" + fecha.Format("02012006") + "-" + sufijo
}
