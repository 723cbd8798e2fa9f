package controllers

import (
	"net/http"

	rootcontrollers "github.com/sigebi/bienes_mid/controllers"
	"github.com/sigebi/bienes_mid/helpers"
	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	internalservices "github.com/sigebi/bienes_mid/internal/services"
)

// SolicitudesController gestiona las solicitudes de mantenimiento.
type SolicitudesController struct {
	rootcontrollers.BaseController
}

// GetListado lista solicitudes paginadas.
// @Summary Listar solicitudes de mantenimiento
// @Tags Solicitudes
// @Accept json
// @Produce json
// @Param page query int false "Página" Example(1)
// @Param size query int false "Tamaño de página" Example(10)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *SolicitudesController) GetListado() {
	data, err := internalservices.ListarSolicitudes(c.Ctx, c.GetString("page"), c.GetString("size"))
	if err != nil {
		c.respondError(err, "error consultando solicitudes")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetTabla compone la tabla de solicitudes.
// @Summary Tabla de solicitudes
// @Tags Solicitudes
// @Accept json
// @Produce json
// @Param q query string false "Texto de búsqueda"
// @Param page query int false "Página" Example(1)
// @Param size query int false "Tamaño de página" Example(10)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *SolicitudesController) GetTabla() {
	data, err := internalservices.TablaSolicitudes(c.Ctx, c.GetString("q"), c.GetString("page"), c.GetString("size"))
	if err != nil {
		c.respondError(err, "error componiendo la tabla de solicitudes")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetById retorna una solicitud.
// @Summary Detalle de solicitud
// @Tags Solicitudes
// @Accept json
// @Produce json
// @Param id path int true "Id de la solicitud" Example(8)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *SolicitudesController) GetById() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	solicitud, err := internalservices.ObtenerSolicitud(c.Ctx, id)
	if err != nil {
		c.respondError(err, "error consultando la solicitud")
		return
	}
	resp := internalhelpers.Ok(solicitud)
	c.writeJSON(resp.Status, resp)
}

// PostCrear registra una solicitud de mantenimiento. Acepta peticiones con y
// sin token; con token el nombre del solicitante se completa desde los claims.
// @Summary Crear solicitud de mantenimiento
// @Description Genera el número de seguimiento y resuelve el bien por placa.
// @Tags Solicitudes
// @Accept json
// @Produce json
// @Param body body internaldto.SolicitudCrear true "Solicitud a crear"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *SolicitudesController) PostCrear() {
	var req internaldto.SolicitudCrear
	if err := c.ParseJSONBody(&req); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	created, err := internalservices.CrearSolicitud(c.Ctx, req)
	if err != nil {
		c.respondError(err, "error registrando la solicitud")
		return
	}
	resp := internalhelpers.Ok(created)
	resp.Message = "Solicitud registrada"
	c.writeJSON(resp.Status, resp)
}

// GetSeguimiento consulta una solicitud por número de seguimiento (público).
// @Summary Consultar seguimiento de una solicitud
// @Tags Solicitudes
// @Accept json
// @Produce json
// @Param numero query string true "Número de seguimiento" Example(SM-05042025-9F3C21AB)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *SolicitudesController) GetSeguimiento() {
	solicitud, err := internalservices.ConsultarSeguimiento(c.Ctx, c.GetString("numero"))
	if err != nil {
		c.respondError(err, "error consultando el seguimiento")
		return
	}
	resp := internalhelpers.Ok(solicitud)
	c.writeJSON(resp.Status, resp)
}

// DeleteOne elimina una solicitud.
// @Summary Eliminar solicitud
// @Tags Solicitudes
// @Accept json
// @Produce json
// @Param id path int true "Id de la solicitud" Example(8)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *SolicitudesController) DeleteOne() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	if err := internalservices.EliminarSolicitud(c.Ctx, id); err != nil {
		c.respondError(err, "error eliminando la solicitud")
		return
	}
	resp := internalhelpers.Ok(nil)
	resp.Message = "Solicitud eliminada"
	c.writeJSON(resp.Status, resp)
}

func (c *SolicitudesController) parseID() (int64, bool) {
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil || id <= 0 {
		c.respondError(helpers.NewAppError(http.StatusBadRequest, "id inválido", err), "id inválido")
		return 0, false
	}
	return int64(id), true
}

func (c *SolicitudesController) respondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	resp := internalhelpers.Fail(appErr.Status, appErr.Message)
	c.writeJSON(resp.Status, resp)
}

func (c *SolicitudesController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
