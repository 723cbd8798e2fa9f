package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigebi/bienes_mid/models"
	rootservices "github.com/sigebi/bienes_mid/services"
)

func configCompleta() models.ConfiguracionSistema {
	return models.ConfiguracionSistema{
		Id: 1,
		Correo: models.ConfiguracionCorreo{
			Host: "smtp.example.com", Puerto: 587, Usuario: "avisos", Remitente: "avisos@example.com",
		},
	}
}

func TestObtenerConfiguracionSinRegistroEntregaVacia(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
	}))

	ctx := newTestCtx(t, nil)
	config, err := ObtenerConfiguracion(ctx)

	require.NoError(t, err)
	assert.Empty(t, config.Correo.Host)
}

func TestGuardarConfiguracionValida(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"result": configCompleta()})
	}))
	ctx := newTestCtx(t, nil)

	sinHost := configCompleta()
	sinHost.Correo.Host = ""
	_, err := GuardarConfiguracion(ctx, sinHost)
	require.Error(t, err)

	puertoMalo := configCompleta()
	puertoMalo.Correo.Puerto = 0
	_, err = GuardarConfiguracion(ctx, puertoMalo)
	require.Error(t, err)

	saved, err := GuardarConfiguracion(ctx, configCompleta())
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", saved.Correo.Host)
}

func TestProbarConfiguracionDespachaAlServicioDeNotificaciones(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"result": configCompleta()})
	}))

	var recibido map[string]interface{}
	notif := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/probar", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		json.NewEncoder(w).Encode(map[string]string{"estado": "enviado"})
	}))
	t.Cleanup(notif.Close)
	rootservices.SetNotificacionesURLForTests(notif.URL)
	t.Cleanup(func() { rootservices.SetNotificacionesURLForTests("") })

	ctx := newTestCtx(t, nil)
	err := ProbarConfiguracion(ctx, "soporte@example.com")

	require.NoError(t, err)
	assert.Equal(t, "soporte@example.com", recibido["destino"])
}

func TestProbarConfiguracionSinServicioConfigurado(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"result": configCompleta()})
	}))
	rootservices.SetNotificacionesURLForTests("")

	ctx := newTestCtx(t, nil)
	err := ProbarConfiguracion(ctx, "soporte@example.com")
	require.Error(t, err)
}

func TestProbarConfiguracionExigeDestino(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"result": configCompleta()})
	}))
	notif := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"estado": "enviado"})
	}))
	t.Cleanup(notif.Close)
	rootservices.SetNotificacionesURLForTests(notif.URL)
	t.Cleanup(func() { rootservices.SetNotificacionesURLForTests("") })

	ctx := newTestCtx(t, nil)
	err := ProbarConfiguracion(ctx, "   ")
	require.Error(t, err)
}
