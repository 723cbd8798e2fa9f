package helpers

import (
	"net/http"
	"strings"

	roothelpers "github.com/sigebi/bienes_mid/helpers"
	"github.com/sigebi/bienes_mid/models"
	rootservices "github.com/sigebi/bienes_mid/services"

	"github.com/beego/beego/v2/server/web/context"
)

type notificacionesClient struct{}

// Notificaciones expone el wrapper al servicio de notificaciones.
var Notificaciones = notificacionesClient{}

// Probar dispara un envío de prueba con la configuración dada. Lo usa el botón
// "probar configuración" del panel: un único POST, sin reintentos, cuyo fallo
// se reporta tal cual al operador.
func (notificacionesClient) Probar(ctx *context.Context, config models.ConfiguracionSistema, destino string) error {
	cfg := rootservices.GetConfig()
	base := cfg.NotificacionesBaseURL
	if base == "" {
		return roothelpers.NewAppError(http.StatusServiceUnavailable, "servicio de notificaciones no configurado", nil)
	}
	if strings.TrimSpace(destino) == "" {
		return roothelpers.NewAppError(http.StatusBadRequest, "destino de prueba requerido", nil)
	}

	headers := CopyRequestHeaders(ctx)
	if _, ok := headers["Authorization"]; !ok {
		headers = rootservices.AddServiceAuth(headers)
	}

	body := map[string]interface{}{
		"destino":       strings.TrimSpace(destino),
		"configuracion": config,
	}

	endpoint := rootservices.BuildURL(base, "probar")
	var response map[string]interface{}
	if err := SendJSON(ctx, "POST", endpoint, body, &response, headers); err != nil {
		return roothelpers.AsAppError(err, "error probando la configuración")
	}
	return nil
}
