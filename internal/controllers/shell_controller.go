package controllers

import (
	rootcontrollers "github.com/sigebi/bienes_mid/controllers"
	"github.com/sigebi/bienes_mid/helpers"
	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	internalservices "github.com/sigebi/bienes_mid/internal/services"
)

// ShellController atiende el armazón del panel: menú lateral y dashboard.
type ShellController struct {
	rootcontrollers.BaseController
}

// GetMenu retorna las opciones del menú según el rol del token.
// @Summary Menú lateral por rol
// @Tags Shell
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
func (c *ShellController) GetMenu() {
	resp := internalhelpers.Ok(internalservices.MenuPorRol(c.Ctx))
	c.writeJSON(resp.Status, resp)
}

// GetDashboard retorna los contadores de la pantalla inicial.
// @Summary Dashboard del panel
// @Tags Shell
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *ShellController) GetDashboard() {
	data, err := internalservices.ObtenerDashboard(c.Ctx)
	if err != nil {
		c.respondError(err, "error consultando el dashboard")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

func (c *ShellController) respondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	resp := internalhelpers.Fail(appErr.Status, appErr.Message)
	c.writeJSON(resp.Status, resp)
}

func (c *ShellController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
