package controllers

import (
	"net/http"

	rootcontrollers "github.com/sigebi/bienes_mid/controllers"
	"github.com/sigebi/bienes_mid/helpers"
	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	internalservices "github.com/sigebi/bienes_mid/internal/services"
	"github.com/sigebi/bienes_mid/models"
)

// ConfiguracionController gestiona la configuración de comunicaciones del sistema.
type ConfiguracionController struct {
	rootcontrollers.BaseController
}

// GetConfiguracion retorna el registro único de configuración.
// @Summary Consultar configuración del sistema
// @Tags Configuracion
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *ConfiguracionController) GetConfiguracion() {
	config, err := internalservices.ObtenerConfiguracion(c.Ctx)
	if err != nil {
		c.respondError(err, "error consultando la configuración")
		return
	}
	resp := internalhelpers.Ok(config)
	c.writeJSON(resp.Status, resp)
}

// PutGuardar reemplaza la configuración.
// @Summary Guardar configuración del sistema
// @Tags Configuracion
// @Accept json
// @Produce json
// @Param body body models.ConfiguracionSistema true "Configuración de correo, SMS y WhatsApp"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *ConfiguracionController) PutGuardar() {
	var config models.ConfiguracionSistema
	if err := c.ParseJSONBody(&config); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	saved, err := internalservices.GuardarConfiguracion(c.Ctx, config)
	if err != nil {
		c.respondError(err, "error guardando la configuración")
		return
	}
	resp := internalhelpers.Ok(saved)
	resp.Message = "Configuración guardada"
	c.writeJSON(resp.Status, resp)
}

// PostProbar dispara un envío de prueba al destino indicado.
// @Summary Probar configuración de comunicaciones
// @Tags Configuracion
// @Accept json
// @Produce json
// @Param body body internaldto.ProbarConfiguracion true "Destino de prueba"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 503 {object} internaldto.APIResponseDTO
func (c *ConfiguracionController) PostProbar() {
	var req internaldto.ProbarConfiguracion
	if err := c.ParseJSONBody(&req); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	if err := internalservices.ProbarConfiguracion(c.Ctx, req.Destino); err != nil {
		c.respondError(err, "error probando la configuración")
		return
	}
	resp := internalhelpers.Ok(nil)
	resp.Message = "Comunicación de prueba enviada"
	c.writeJSON(resp.Status, resp)
}

func (c *ConfiguracionController) respondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	resp := internalhelpers.Fail(appErr.Status, appErr.Message)
	c.writeJSON(resp.Status, resp)
}

func (c *ConfiguracionController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
