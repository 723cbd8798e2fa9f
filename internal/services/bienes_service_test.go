package services

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigebi/bienes_mid/models"
)

func TestCambiarEstadoBienInvierteYRecarga(t *testing.T) {
	var patchBody map[string]bool
	var recargado atomic.Bool
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/assets/5":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"result": models.Bien{Id: 5, Nombre: "Torno", Activo: true},
			})
		case r.Method == http.MethodPatch && r.URL.Path == "/assets/5":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&patchBody))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"result": models.Bien{Id: 5, Nombre: "Torno", Activo: false},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/assets":
			recargado.Store(true)
			json.NewEncoder(w).Encode([]models.Bien{{Id: 5, Nombre: "Torno", Activo: false}})
		default:
			http.NotFound(w, r)
		}
	}))

	ctx := newTestCtx(t, nil)
	bienes, err := CambiarEstadoBien(ctx, 5)

	require.NoError(t, err)
	// El bien estaba activo: el PATCH debe enviar el flag invertido.
	require.Contains(t, patchBody, "activo")
	assert.False(t, patchBody["activo"])
	assert.True(t, recargado.Load(), "tras la mutación se recarga la lista completa")
	require.Len(t, bienes, 1)
	assert.False(t, bienes[0].Activo)
}

func TestCrearBienValidaAntesDeLaRed(t *testing.T) {
	var llamadas atomic.Int32
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
		http.NotFound(w, r)
	}))
	ctx := newTestCtx(t, nil)

	casos := []models.Bien{
		{Ubicacion: "Bodega", FechaAdquisicion: "2024-01-01"},
		{Nombre: "Torno", FechaAdquisicion: "2024-01-01"},
		{Nombre: "Torno", Ubicacion: "Bodega"},
		{Nombre: "Torno", Ubicacion: "Bodega", FechaAdquisicion: "ayer"},
		{Nombre: "Torno", Ubicacion: "Bodega", FechaAdquisicion: "2024-01-01", Imagen: "data:text/plain;base64,aG9sYQ=="},
	}
	for _, caso := range casos {
		_, err := CrearBien(ctx, caso)
		require.Error(t, err)
	}
	assert.Zero(t, llamadas.Load(), "la validación de formulario no debe tocar la red")
}

func TestListarBienesConMetaExterna(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []models.Bien{{Id: 1, Nombre: "Torno"}, {Id: 2, Nombre: "Fresadora"}},
			"meta": map[string]int{"total": 37, "page": 2, "limit": 2, "totalPages": 19},
		})
	}))

	ctx := newTestCtx(t, nil)
	page, err := ListarBienes(ctx, "2", "2")

	require.NoError(t, err)
	assert.Equal(t, int64(37), page.Total)
	assert.Len(t, page.Items, 2)
}

func TestTablaBienesModoExternoRespetaBordes(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []models.Bien{{Id: 1, Nombre: "Torno", FechaAdquisicion: "2024-01-15", Activo: true}},
			"meta": map[string]int{"total": 31, "page": 4, "limit": 10, "totalPages": 4},
		})
	}))

	ctx := newTestCtx(t, nil)
	resultado, err := TablaBienes(ctx, "", "", "", "4", "10")

	require.NoError(t, err)
	assert.True(t, resultado.Paginacion.TienePrev)
	assert.False(t, resultado.Paginacion.TieneSig, "en la última página el siguiente queda deshabilitado")
	require.Len(t, resultado.Filas, 1)
	assert.Equal(t, "15/01/2024", resultado.Filas[0]["fechaAdquisicion"])
	assert.Equal(t, "Activo", resultado.Filas[0]["estado"])
}

func TestTablaBienesModoInternoConListaPlana(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Bien{
			{Id: 1, Nombre: "Torno", Activo: true},
			{Id: 2, Nombre: "Fresadora", Activo: false},
			{Id: 3, Nombre: "Taladro", Activo: true},
		})
	}))

	ctx := newTestCtx(t, nil)
	resultado, err := TablaBienes(ctx, "fresa", "", "", "1", "10")

	require.NoError(t, err)
	require.Len(t, resultado.Filas, 1)
	assert.Equal(t, "Fresadora", resultado.Filas[0]["nombre"])
}

func TestExportarBienesCSV(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Bien{
			{Nombre: "Torno", Ubicacion: "Bodega A", FechaAdquisicion: "2024-01-01", Placa: "INV-001", Activo: true},
		})
	}))

	ctx := newTestCtx(t, nil)
	csv, err := ExportarBienesCSV(ctx)

	require.NoError(t, err)
	lineas := strings.Split(strings.TrimSpace(csv), "\n")
	require.Len(t, lineas, 2)
	assert.Contains(t, lineas[0], "nombre")
	assert.Contains(t, lineas[1], "Torno")
	assert.Contains(t, lineas[1], "INV-001")
}

func TestImportarBienesCSVAcumulaFallosPorFila(t *testing.T) {
	var creados atomic.Int32
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var bien models.Bien
		require.NoError(t, json.NewDecoder(r.Body).Decode(&bien))
		if bien.Nombre == "Rechazado" {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "placa duplicada"})
			return
		}
		creados.Add(1)
		json.NewEncoder(w).Encode(map[string]interface{}{"result": bien})
	}))

	csv := "nombre,ubicacion,fechaAdquisicion,placa\n" +
		"Torno,Bodega A,2024-01-01,INV-001\n" +
		",Bodega B,2024-01-01,INV-002\n" +
		"Rechazado,Bodega C,2024-01-01,INV-003\n"

	ctx := newTestCtx(t, nil)
	resultado, err := ImportarBienesCSV(ctx, strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 1, resultado.Creados)
	require.Len(t, resultado.Fallos, 2)
	// Los números de fila refieren al archivo original, contando la cabecera.
	assert.Equal(t, 3, resultado.Fallos[0].Fila)
	assert.Equal(t, 4, resultado.Fallos[1].Fila)
	assert.Contains(t, resultado.Fallos[1].Mensaje, "placa duplicada")
}
