package services

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	"github.com/sigebi/bienes_mid/models"
)

func authDeInstructor(t *testing.T, id int) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + mintToken(t, jwt.MapClaims{"sub": id, "nombre": "Laura Pinzón", "rol": "instructor"}),
	}
}

func TestCrearOrdenGeneraRadicadoYTomaInstructorDelToken(t *testing.T) {
	var recibido models.OrdenTrabajo
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/application-maintenance/8":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"result": models.Solicitud{Id: 8, Placa: "INV-001", OrdenCreada: false},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/word-orden":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
			recibido.Id = 44
			json.NewEncoder(w).Encode(map[string]interface{}{"result": recibido})
		default:
			http.NotFound(w, r)
		}
	}))

	ctx := newTestCtx(t, authDeInstructor(t, 7))
	orden, err := CrearOrden(ctx, 8, internaldto.OrdenCrear{
		TecnicoId:   3,
		FechaInicio: "2025-04-05",
		FechaFin:    "2025-04-12",
		Prioridad:   "Alta",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(44), orden.Id)
	assert.Equal(t, "OT-05-04-2025", recibido.Radicado)
	assert.Equal(t, int64(8), recibido.SolicitudId)
	assert.Equal(t, int64(7), recibido.InstructorId)
	// La prioridad se normaliza a su forma canónica.
	assert.Equal(t, "alta", recibido.Prioridad)
	assert.Empty(t, orden.Advertencia)
}

func TestCrearOrdenFalloDeCorreoEsExitoConAdvertencia(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/application-maintenance/8":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"result": models.Solicitud{Id: 8, OrdenCreada: false},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/word-orden":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid login: 535 authentication failed"})
		default:
			http.NotFound(w, r)
		}
	}))

	ctx := newTestCtx(t, authDeInstructor(t, 7))
	orden, err := CrearOrden(ctx, 8, internaldto.OrdenCrear{
		TecnicoId:   3,
		FechaInicio: "2025-04-05",
		FechaFin:    "2025-04-12",
		Prioridad:   "media",
	})

	require.NoError(t, err)
	require.NotNil(t, orden)
	assert.Equal(t, "OT-05-04-2025", orden.Radicado)
	assert.NotEmpty(t, orden.Advertencia)
	assert.Equal(t, int64(3), orden.TecnicoId)
}

func TestCrearOrdenValidaSinTocarLaRed(t *testing.T) {
	var llamadas atomic.Int32
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
		http.NotFound(w, r)
	}))
	ctx := newTestCtx(t, authDeInstructor(t, 7))

	casos := []internaldto.OrdenCrear{
		{TecnicoId: 3, FechaInicio: "2025-04-05", FechaFin: "2025-04-12", Prioridad: "urgentísima"},
		{TecnicoId: 0, FechaInicio: "2025-04-05", FechaFin: "2025-04-12", Prioridad: "alta"},
		{TecnicoId: 3, FechaInicio: "no-fecha", FechaFin: "2025-04-12", Prioridad: "alta"},
		{TecnicoId: 3, FechaInicio: "2025-04-12", FechaFin: "2025-04-05", Prioridad: "alta"},
	}
	for _, caso := range casos {
		_, err := CrearOrden(ctx, 8, caso)
		require.Error(t, err)
	}
	assert.Zero(t, llamadas.Load(), "la validación debe rechazar antes de llamar al CRUD")
}

func TestCrearOrdenRechazaSolicitudYaProgramada(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": models.Solicitud{Id: 8, OrdenCreada: true},
		})
	}))

	ctx := newTestCtx(t, authDeInstructor(t, 7))
	_, err := CrearOrden(ctx, 8, internaldto.OrdenCrear{
		TecnicoId: 3, FechaInicio: "2025-04-05", FechaFin: "2025-04-12", Prioridad: "baja",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ya tiene una orden")
}

func TestDerivarEstadoTiempo(t *testing.T) {
	ahora := time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC)

	vencida := models.OrdenTrabajo{FechaFin: "2025-04-05"}
	derivarEstadoTiempo(&vencida, ahora)
	require.NotNil(t, vencida.EstadoTiempo)
	assert.True(t, vencida.EstadoTiempo.Vencida)

	vigente := models.OrdenTrabajo{FechaFin: "2025-04-20"}
	derivarEstadoTiempo(&vigente, ahora)
	require.NotNil(t, vigente.EstadoTiempo)
	assert.False(t, vigente.EstadoTiempo.Vencida)
	assert.Equal(t, 9, vigente.EstadoTiempo.DiasRestantes)

	cerrada := models.OrdenTrabajo{FechaFin: "2025-04-05", Cerrada: true}
	derivarEstadoTiempo(&cerrada, ahora)
	assert.Nil(t, cerrada.EstadoTiempo)

	sinFecha := models.OrdenTrabajo{}
	derivarEstadoTiempo(&sinFecha, ahora)
	assert.Nil(t, sinFecha.EstadoTiempo)
}

func TestEsFalloEntregaCorreo(t *testing.T) {
	assert.True(t, esFalloEntregaCorreo(errMensaje("smtp: Invalid login (535)")))
	assert.True(t, esFalloEntregaCorreo(errMensaje("invalid LOGIN")))
	assert.False(t, esFalloEntregaCorreo(errMensaje("credenciales inválidas")))
	assert.False(t, esFalloEntregaCorreo(nil))
}

type errMensaje string

func (e errMensaje) Error() string { return string(e) }
