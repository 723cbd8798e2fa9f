package services

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	"github.com/sigebi/bienes_mid/models"
)

func reporteValido() internaldto.ReporteCrear {
	return internaldto.ReporteCrear{
		Horas:             3.5,
		Costo:             120000,
		TrabajoRealizado:  "Cambio de rodamientos del eje principal",
		TipoMantenimiento: "correctivo",
		Ejecutado:         true,
	}
}

func TestCrearReporteCopiaResponsablesDeLaOrden(t *testing.T) {
	var enviado models.ReporteTrabajo
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/word-orden/4":
			json.NewEncoder(w).Encode(map[string]interface{}{"result": models.OrdenTrabajo{
				Id: 4, TecnicoId: 11, InstructorId: 7, FechaInicio: "2025-04-01", FechaFin: "2025-04-10",
			}})
		case r.Method == http.MethodPost && r.URL.Path == "/work-report":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&enviado))
			enviado.Id = 30
			json.NewEncoder(w).Encode(map[string]interface{}{"result": enviado})
		default:
			t.Fatalf("llamada inesperada %s %s", r.Method, r.URL.Path)
		}
	}))

	ctx := newTestCtx(t, nil)
	created, err := CrearReporte(ctx, 4, reporteValido())

	require.NoError(t, err)
	assert.Equal(t, int64(4), enviado.OrdenId)
	assert.Equal(t, int64(11), enviado.TecnicoId)
	assert.Equal(t, int64(7), enviado.InstructorId)
	assert.Equal(t, "Correctivo", enviado.TipoMantenimiento)
	assert.Regexp(t, `^RT-\d{8}-[0-9A-F]{8}$`, enviado.Codigo)
	assert.False(t, enviado.Cerrado)
	assert.Equal(t, int64(30), created.Id)
}

func TestCrearReporteValidaSinTocarLaRed(t *testing.T) {
	var llamadas atomic.Int32
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
	}))
	ctx := newTestCtx(t, nil)

	sinTrabajo := reporteValido()
	sinTrabajo.TrabajoRealizado = "   "

	tipoMalo := reporteValido()
	tipoMalo.TipoMantenimiento = "cosmético"

	horasNegativas := reporteValido()
	horasNegativas.Horas = -1

	firmaMala := reporteValido()
	firmaMala.Firma = "data:text/plain;base64,aG9sYQ=="

	for _, req := range []internaldto.ReporteCrear{sinTrabajo, tipoMalo, horasNegativas, firmaMala} {
		_, err := CrearReporte(ctx, 4, req)
		require.Error(t, err)
	}
	assert.Zero(t, llamadas.Load())
}

func TestEditarReporteValidaCamposParciales(t *testing.T) {
	var llamadas atomic.Int32
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
	}))
	ctx := newTestCtx(t, nil)

	negativo := -2.0
	_, err := EditarReporte(ctx, 30, internaldto.ReporteEditar{Horas: &negativo})
	require.Error(t, err)

	vacio := "  "
	_, err = EditarReporte(ctx, 30, internaldto.ReporteEditar{TrabajoRealizado: &vacio})
	require.Error(t, err)

	assert.Zero(t, llamadas.Load())
}

func TestEditarReporteEnviaSoloLosCamposPresentes(t *testing.T) {
	var patch map[string]interface{}
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/work-report/30", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		json.NewEncoder(w).Encode(map[string]interface{}{"result": models.ReporteTrabajo{Id: 30}})
	}))
	ctx := newTestCtx(t, nil)

	cerrado := true
	_, err := EditarReporte(ctx, 30, internaldto.ReporteEditar{Cerrado: &cerrado})
	require.NoError(t, err)

	assert.Equal(t, true, patch["cerrado"])
	_, tieneHoras := patch["horas"]
	assert.False(t, tieneHoras)
}
