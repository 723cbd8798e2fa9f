package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerarRadicadoOrden(t *testing.T) {
	fecha := time.Date(2025, time.April, 5, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "OT-05-04-2025", GenerarRadicadoOrden(fecha))

	fecha = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "OT-31-12-2024", GenerarRadicadoOrden(fecha))
}

func TestGenerarNumeroSeguimiento(t *testing.T) {
	fecha := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)
	numero := GenerarNumeroSeguimiento(fecha)

	require.Regexp(t, `^SM-05042025-[0-9A-F]{8}$`, numero)
	// El sufijo es aleatorio: dos generaciones no deben coincidir.
	assert.NotEqual(t, numero, GenerarNumeroSeguimiento(fecha))
}

func TestGenerarCodigoReporte(t *testing.T) {
	fecha := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)
	require.Regexp(t, `^RT-05042025-[0-9A-F]{8}$`, GenerarCodigoReporte(fecha))
}

func TestParseFecha(t *testing.T) {
	assert.Equal(t, 2025, ParseFecha("2025-04-05").Year())
	assert.Equal(t, time.April, ParseFecha("2025-04-05T10:30:00Z").Month())
	assert.True(t, ParseFecha("no-es-fecha").IsZero())
	assert.True(t, ParseFecha("").IsZero())
}
