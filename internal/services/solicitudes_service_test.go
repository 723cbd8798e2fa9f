package services

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	"github.com/sigebi/bienes_mid/models"
)

func crudDeSolicitudes(t *testing.T, recibida *models.Solicitud) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/assets":
			if r.URL.Query().Get("placa") == "INV-001" {
				json.NewEncoder(w).Encode([]models.Bien{{Id: 3, Placa: "INV-001", Serial: "SN-778"}})
				return
			}
			json.NewEncoder(w).Encode([]models.Bien{})
		case r.Method == http.MethodPost && r.URL.Path == "/application-maintenance":
			require.NoError(t, json.NewDecoder(r.Body).Decode(recibida))
			recibida.Id = 8
			json.NewEncoder(w).Encode(map[string]interface{}{"result": recibida})
		default:
			http.NotFound(w, r)
		}
	})
}

func TestCrearSolicitudGeneraSeguimientoYArrastraSerial(t *testing.T) {
	var recibida models.Solicitud
	conCRUDDePrueba(t, crudDeSolicitudes(t, &recibida))

	ctx := newTestCtx(t, nil)
	solicitud, err := CrearSolicitud(ctx, internaldto.SolicitudCrear{
		NombreSolicitante: "Pedro Gómez",
		Placa:             "INV-001",
		Descripcion:       "El torno vibra al encender",
		TipoMantenimiento: "Correctivo",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(8), solicitud.Id)
	assert.Regexp(t, regexp.MustCompile(`^SM-\d{8}-[0-9A-F]{8}$`), recibida.NumeroSeguimiento)
	// El serial se arrastra del bien resuelto por placa.
	assert.Equal(t, "SN-778", recibida.Serial)
	assert.False(t, recibida.OrdenCreada)
	assert.Equal(t, "Correctivo", recibida.TipoMantenimiento)
}

func TestCrearSolicitudPrefillDesdeToken(t *testing.T) {
	var recibida models.Solicitud
	conCRUDDePrueba(t, crudDeSolicitudes(t, &recibida))

	token := mintToken(t, jwt.MapClaims{"sub": 7, "nombre": "Laura Pinzón"})
	ctx := newTestCtx(t, map[string]string{"Authorization": "Bearer " + token})

	_, err := CrearSolicitud(ctx, internaldto.SolicitudCrear{
		Placa:             "INV-001",
		Descripcion:       "Mantenimiento preventivo anual",
		TipoMantenimiento: "Preventivo",
	})

	require.NoError(t, err)
	assert.Equal(t, "Laura Pinzón", recibida.NombreSolicitante)
}

func TestCrearSolicitudPublicaSinNombreFalla(t *testing.T) {
	conCRUDDePrueba(t, crudDeSolicitudes(t, &models.Solicitud{}))

	ctx := newTestCtx(t, nil)
	_, err := CrearSolicitud(ctx, internaldto.SolicitudCrear{
		Placa:             "INV-001",
		Descripcion:       "Algo falla",
		TipoMantenimiento: "Correctivo",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nombre del solicitante")
}

func TestCrearSolicitudPlacaInexistente(t *testing.T) {
	conCRUDDePrueba(t, crudDeSolicitudes(t, &models.Solicitud{}))

	ctx := newTestCtx(t, nil)
	_, err := CrearSolicitud(ctx, internaldto.SolicitudCrear{
		NombreSolicitante: "Pedro Gómez",
		Placa:             "NO-EXISTE",
		Descripcion:       "Algo falla",
		TipoMantenimiento: "Correctivo",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "placa")
}

func TestCrearSolicitudTipoInvalido(t *testing.T) {
	ctx := newTestCtx(t, nil)
	_, err := CrearSolicitud(ctx, internaldto.SolicitudCrear{
		NombreSolicitante: "Pedro Gómez",
		Placa:             "INV-001",
		Descripcion:       "Algo falla",
		TipoMantenimiento: "Cosmético",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tipo de mantenimiento")
}

func TestConsultarSeguimiento(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("numeroSeguimiento") == "SM-05042025-9F3C21AB" {
			json.NewEncoder(w).Encode([]models.Solicitud{
				{Id: 8, NumeroSeguimiento: "SM-05042025-9F3C21AB", OrdenCreada: true},
			})
			return
		}
		json.NewEncoder(w).Encode([]models.Solicitud{})
	}))

	ctx := newTestCtx(t, nil)

	solicitud, err := ConsultarSeguimiento(ctx, "SM-05042025-9F3C21AB")
	require.NoError(t, err)
	assert.True(t, solicitud.OrdenCreada)

	_, err = ConsultarSeguimiento(ctx, "SM-00000000-FFFFFFFF")
	require.Error(t, err)

	_, err = ConsultarSeguimiento(ctx, "  ")
	require.Error(t, err)
}
