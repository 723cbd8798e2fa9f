package controllers

import (
	"net/http"

	rootcontrollers "github.com/sigebi/bienes_mid/controllers"
	"github.com/sigebi/bienes_mid/helpers"
	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	internalservices "github.com/sigebi/bienes_mid/internal/services"
)

// ReportesController gestiona los reportes de trabajo.
type ReportesController struct {
	rootcontrollers.BaseController
}

// GetListado lista reportes paginados.
// @Summary Listar reportes de trabajo
// @Tags Reportes
// @Accept json
// @Produce json
// @Param page query int false "Página" Example(1)
// @Param size query int false "Tamaño de página" Example(10)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *ReportesController) GetListado() {
	data, err := internalservices.ListarReportes(c.Ctx, c.GetString("page"), c.GetString("size"))
	if err != nil {
		c.respondError(err, "error consultando reportes de trabajo")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetTabla compone la tabla de reportes.
// @Summary Tabla de reportes de trabajo
// @Tags Reportes
// @Accept json
// @Produce json
// @Param q query string false "Texto de búsqueda"
// @Param page query int false "Página" Example(1)
// @Param size query int false "Tamaño de página" Example(10)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *ReportesController) GetTabla() {
	data, err := internalservices.TablaReportes(c.Ctx, c.GetString("q"), c.GetString("page"), c.GetString("size"))
	if err != nil {
		c.respondError(err, "error componiendo la tabla de reportes")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetById retorna un reporte de trabajo.
// @Summary Detalle de reporte de trabajo
// @Tags Reportes
// @Accept json
// @Produce json
// @Param id path int true "Id del reporte" Example(2)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *ReportesController) GetById() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	reporte, err := internalservices.ObtenerReporte(c.Ctx, id)
	if err != nil {
		c.respondError(err, "error consultando el reporte de trabajo")
		return
	}
	resp := internalhelpers.Ok(reporte)
	c.writeJSON(resp.Status, resp)
}

// PostCrear registra el reporte de ejecución de una orden.
// @Summary Registrar reporte de trabajo
// @Description Genera el código y valida la firma como imagen embebida.
// @Tags Reportes
// @Accept json
// @Produce json
// @Param id path int true "Id de la orden" Example(4)
// @Param body body internaldto.ReporteCrear true "Reporte a registrar"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *ReportesController) PostCrear() {
	ordenID, ok := c.parseID()
	if !ok {
		return
	}
	var req internaldto.ReporteCrear
	if err := c.ParseJSONBody(&req); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	created, err := internalservices.CrearReporte(c.Ctx, ordenID, req)
	if err != nil {
		c.respondError(err, "error registrando el reporte de trabajo")
		return
	}
	resp := internalhelpers.Ok(created)
	resp.Message = "Reporte registrado"
	c.writeJSON(resp.Status, resp)
}

// PatchEditar aplica cambios parciales a un reporte.
// @Summary Editar reporte de trabajo
// @Tags Reportes
// @Accept json
// @Produce json
// @Param id path int true "Id del reporte" Example(2)
// @Param body body internaldto.ReporteEditar true "Campos a modificar"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *ReportesController) PatchEditar() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	var req internaldto.ReporteEditar
	if err := c.ParseJSONBody(&req); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	updated, err := internalservices.EditarReporte(c.Ctx, id, req)
	if err != nil {
		c.respondError(err, "error actualizando el reporte de trabajo")
		return
	}
	resp := internalhelpers.Ok(updated)
	resp.Message = "Reporte actualizado"
	c.writeJSON(resp.Status, resp)
}

// DeleteOne elimina un reporte.
// @Summary Eliminar reporte de trabajo
// @Tags Reportes
// @Accept json
// @Produce json
// @Param id path int true "Id del reporte" Example(2)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *ReportesController) DeleteOne() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	if err := internalservices.EliminarReporte(c.Ctx, id); err != nil {
		c.respondError(err, "error eliminando el reporte de trabajo")
		return
	}
	resp := internalhelpers.Ok(nil)
	resp.Message = "Reporte eliminado"
	c.writeJSON(resp.Status, resp)
}

func (c *ReportesController) parseID() (int64, bool) {
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil || id <= 0 {
		c.respondError(helpers.NewAppError(http.StatusBadRequest, "id inválido", err), "id inválido")
		return 0, false
	}
	return int64(id), true
}

func (c *ReportesController) respondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	resp := internalhelpers.Fail(appErr.Status, appErr.Message)
	c.writeJSON(resp.Status, resp)
}

func (c *ReportesController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
