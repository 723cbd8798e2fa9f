package services

import (
	"net/http"
	"strings"

	webctx "github.com/beego/beego/v2/server/web/context"

	roothelpers "github.com/sigebi/bienes_mid/helpers"
	"github.com/sigebi/bienes_mid/internal/clients"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	"github.com/sigebi/bienes_mid/models"
)

// ObtenerConfiguracion retorna el registro único de configuración de
// comunicaciones. Si aún no existe, entrega el formulario vacío en lugar de
// 404 para que la pantalla cargue en blanco.
func ObtenerConfiguracion(ctx *webctx.Context) (*models.ConfiguracionSistema, error) {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	config, err := clients.BienesCRUD().GetConfiguracion(headers)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return &models.ConfiguracionSistema{}, nil
		}
		return nil, roothelpers.AsAppError(err, "error consultando la configuración del sistema")
	}
	return config, nil
}

func validarConfiguracion(config models.ConfiguracionSistema) error {
	if strings.TrimSpace(config.Correo.Host) == "" {
		return roothelpers.NewAppError(http.StatusBadRequest, "host de correo requerido", nil)
	}
	if config.Correo.Puerto <= 0 || config.Correo.Puerto > 65535 {
		return roothelpers.NewAppError(http.StatusBadRequest, "puerto de correo inválido", nil)
	}
	if strings.TrimSpace(config.Correo.Remitente) == "" {
		return roothelpers.NewAppError(http.StatusBadRequest, "remitente de correo requerido", nil)
	}
	return nil
}

// GuardarConfiguracion reemplaza el registro de configuración.
func GuardarConfiguracion(ctx *webctx.Context, config models.ConfiguracionSistema) (*models.ConfiguracionSistema, error) {
	if err := validarConfiguracion(config); err != nil {
		return nil, err
	}
	headers := internalhelpers.CopyRequestHeaders(ctx)
	saved, err := clients.BienesCRUD().UpsertConfiguracion(headers, config)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error guardando la configuración del sistema")
	}
	return saved, nil
}

// ProbarConfiguracion envía una comunicación de prueba con la configuración
// guardada hacia el destino indicado.
func ProbarConfiguracion(ctx *webctx.Context, destino string) error {
	config, err := ObtenerConfiguracion(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(config.Correo.Host) == "" {
		return roothelpers.NewAppError(http.StatusConflict, "guarde la configuración antes de probarla", nil)
	}
	return internalhelpers.Notificaciones.Probar(ctx, *config, destino)
}
