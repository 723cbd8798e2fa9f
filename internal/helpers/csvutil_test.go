package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigebi/bienes_mid/models"
)

func TestBienesACSVIncluyeCabeceraYFilas(t *testing.T) {
	out, err := BienesACSV([]models.Bien{
		{Nombre: "Torno CNC", Ubicacion: "Taller 2", FechaAdquisicion: "2024-01-15", Placa: "INV-001", Activo: true},
		{Nombre: "Fresadora", Ubicacion: "Taller 1", FechaAdquisicion: "2023-06-01", Placa: "INV-002"},
	})
	require.NoError(t, err)

	lineas := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lineas, 3)
	assert.Equal(t, "nombre,ubicacion,fechaAdquisicion,marca,modelo,serial,placa,responsable,activo", lineas[0])
	assert.Contains(t, lineas[1], "Torno CNC")
	assert.True(t, strings.HasSuffix(lineas[1], "true"))
	assert.True(t, strings.HasSuffix(lineas[2], "false"))
}

func TestCSVABienesRespetaElOrdenDeCabecera(t *testing.T) {
	// columnas en orden distinto al de exportación
	csv := "placa,nombre,ubicacion,fechaAdquisicion,activo\n" +
		"INV-009,Compresor,Bodega,2022-03-10,TRUE\n"

	bienes, fallos, err := CSVABienes(strings.NewReader(csv))
	require.NoError(t, err)
	require.Empty(t, fallos)
	require.Len(t, bienes, 1)

	assert.Equal(t, 2, bienes[0].Fila)
	assert.Equal(t, "Compresor", bienes[0].Bien.Nombre)
	assert.Equal(t, "INV-009", bienes[0].Bien.Placa)
	assert.True(t, bienes[0].Bien.Activo)
}

func TestCSVABienesReportaFilasInvalidasSinAbortar(t *testing.T) {
	csv := "nombre,ubicacion,fechaAdquisicion\n" +
		"Torno,Taller 2,2024-01-15\n" +
		",Taller 1,2023-06-01\n" +
		"Prensa,,2021-09-09\n" +
		"Taladro,Bodega,2020-02-02\n"

	bienes, fallos, err := CSVABienes(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, bienes, 2)
	assert.Equal(t, 2, bienes[0].Fila)
	assert.Equal(t, 5, bienes[1].Fila)

	require.Len(t, fallos, 2)
	assert.Equal(t, 3, fallos[0].Fila)
	assert.Equal(t, 4, fallos[1].Fila)
	assert.Contains(t, fallos[0].Mensaje, "obligatorios")
}

func TestCSVABienesSinColumnaObligatoria(t *testing.T) {
	csv := "nombre,ubicacion\nTorno,Taller 2\n"
	_, _, err := CSVABienes(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fechaAdquisicion")
}

func TestCSVABienesVacio(t *testing.T) {
	_, _, err := CSVABienes(strings.NewReader(""))
	assert.Error(t, err)
}
