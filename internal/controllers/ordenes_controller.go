package controllers

import (
	"net/http"

	rootcontrollers "github.com/sigebi/bienes_mid/controllers"
	"github.com/sigebi/bienes_mid/helpers"
	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	internalservices "github.com/sigebi/bienes_mid/internal/services"
)

// OrdenesController gestiona las órdenes de trabajo.
type OrdenesController struct {
	rootcontrollers.BaseController
}

// GetListado lista órdenes con su estado de tiempo derivado.
// @Summary Listar órdenes de trabajo
// @Tags Ordenes
// @Accept json
// @Produce json
// @Param page query int false "Página" Example(1)
// @Param size query int false "Tamaño de página" Example(10)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *OrdenesController) GetListado() {
	data, err := internalservices.ListarOrdenes(c.Ctx, c.GetString("page"), c.GetString("size"))
	if err != nil {
		c.respondError(err, "error consultando órdenes de trabajo")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetTabla compone la tabla de órdenes.
// @Summary Tabla de órdenes de trabajo
// @Tags Ordenes
// @Accept json
// @Produce json
// @Param q query string false "Texto de búsqueda"
// @Param page query int false "Página" Example(1)
// @Param size query int false "Tamaño de página" Example(10)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *OrdenesController) GetTabla() {
	data, err := internalservices.TablaOrdenes(c.Ctx, c.GetString("q"), c.GetString("page"), c.GetString("size"))
	if err != nil {
		c.respondError(err, "error componiendo la tabla de órdenes")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetById retorna una orden de trabajo.
// @Summary Detalle de orden de trabajo
// @Tags Ordenes
// @Accept json
// @Produce json
// @Param id path int true "Id de la orden" Example(4)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *OrdenesController) GetById() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	orden, err := internalservices.ObtenerOrden(c.Ctx, id)
	if err != nil {
		c.respondError(err, "error consultando la orden de trabajo")
		return
	}
	resp := internalhelpers.Ok(orden)
	c.writeJSON(resp.Status, resp)
}

// PostCrear programa una orden de trabajo sobre una solicitud.
// @Summary Programar orden de trabajo
// @Description Genera el radicado a partir de la fecha de inicio y toma el instructor del token.
// @Tags Ordenes
// @Accept json
// @Produce json
// @Param id path int true "Id de la solicitud" Example(8)
// @Param body body internaldto.OrdenCrear true "Datos de programación"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 409 {object} internaldto.APIResponseDTO
func (c *OrdenesController) PostCrear() {
	solicitudID, ok := c.parseID()
	if !ok {
		return
	}
	var req internaldto.OrdenCrear
	if err := c.ParseJSONBody(&req); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	created, err := internalservices.CrearOrden(c.Ctx, solicitudID, req)
	if err != nil {
		c.respondError(err, "error programando la orden de trabajo")
		return
	}
	resp := internalhelpers.Ok(created)
	resp.Message = "Orden programada"
	if created.Advertencia != "" {
		resp.Message = created.Advertencia
	}
	c.writeJSON(resp.Status, resp)
}

// DeleteOne elimina una orden de trabajo.
// @Summary Eliminar orden de trabajo
// @Tags Ordenes
// @Accept json
// @Produce json
// @Param id path int true "Id de la orden" Example(4)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *OrdenesController) DeleteOne() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	if err := internalservices.EliminarOrden(c.Ctx, id); err != nil {
		c.respondError(err, "error eliminando la orden de trabajo")
		return
	}
	resp := internalhelpers.Ok(nil)
	resp.Message = "Orden eliminada"
	c.writeJSON(resp.Status, resp)
}

func (c *OrdenesController) parseID() (int64, bool) {
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil || id <= 0 {
		c.respondError(helpers.NewAppError(http.StatusBadRequest, "id inválido", err), "id inválido")
		return 0, false
	}
	return int64(id), true
}

func (c *OrdenesController) respondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	resp := internalhelpers.Fail(appErr.Status, appErr.Message)
	c.writeJSON(resp.Status, resp)
}

func (c *OrdenesController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
