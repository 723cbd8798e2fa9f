package controllers

import (
	"net/http"
	"strings"
	"time"

	rootcontrollers "github.com/sigebi/bienes_mid/controllers"
	"github.com/sigebi/bienes_mid/helpers"
	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	internalservices "github.com/sigebi/bienes_mid/internal/services"
	"github.com/sigebi/bienes_mid/models"
)

// BienesController expone el inventario de bienes del panel.
type BienesController struct {
	rootcontrollers.BaseController
}

// GetListado lista bienes paginados.
// @Summary Listar bienes
// @Description Retorna la página solicitada del inventario.
// @Tags Bienes
// @Accept json
// @Produce json
// @Param page query int false "Página" Example(1)
// @Param size query int false "Tamaño de página" Example(10)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *BienesController) GetListado() {
	data, err := internalservices.ListarBienes(c.Ctx, c.GetString("page"), c.GetString("size"))
	if err != nil {
		c.respondError(err, "error consultando bienes")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetTabla compone la vista de tabla del inventario.
// @Summary Tabla de bienes
// @Description Retorna columnas, filas renderizadas, paginación y menú de acciones.
// @Tags Bienes
// @Accept json
// @Produce json
// @Param q query string false "Texto de búsqueda sobre la primera columna"
// @Param sort query string false "Columna de ordenamiento"
// @Param order query string false "asc o desc"
// @Param page query int false "Página" Example(1)
// @Param size query int false "Tamaño de página" Example(10)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *BienesController) GetTabla() {
	data, err := internalservices.TablaBienes(c.Ctx,
		c.GetString("q"), c.GetString("sort"), c.GetString("order"),
		c.GetString("page"), c.GetString("size"))
	if err != nil {
		c.respondError(err, "error componiendo la tabla de bienes")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetById retorna el detalle de un bien.
// @Summary Detalle de un bien
// @Tags Bienes
// @Accept json
// @Produce json
// @Param id path int true "Id del bien" Example(12)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *BienesController) GetById() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	bien, err := internalservices.ObtenerBien(c.Ctx, id)
	if err != nil {
		c.respondError(err, "error consultando el bien")
		return
	}
	resp := internalhelpers.Ok(bien)
	c.writeJSON(resp.Status, resp)
}

// GetPorPlaca resuelve un bien a partir de su placa (consulta pública del
// formulario de solicitudes).
// @Summary Consultar bien por placa
// @Tags Bienes
// @Accept json
// @Produce json
// @Param placa query string true "Placa del bien" Example(INV-00231)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *BienesController) GetPorPlaca() {
	placa := strings.TrimSpace(c.GetString("placa"))
	if placa == "" {
		c.respondError(helpers.NewAppError(http.StatusBadRequest, "placa requerida", nil), "placa requerida")
		return
	}
	bien, err := internalservices.ObtenerBienPorPlaca(c.Ctx, placa)
	if err != nil {
		c.respondError(err, "error consultando el bien")
		return
	}
	resp := internalhelpers.Ok(bien)
	c.writeJSON(resp.Status, resp)
}

// PostCrear registra un bien.
// @Summary Crear bien
// @Description Valida nombre, ubicación, fecha de adquisición e imagen antes de enviar al CRUD.
// @Tags Bienes
// @Accept json
// @Produce json
// @Param body body models.Bien true "Bien a crear"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *BienesController) PostCrear() {
	var bien models.Bien
	if err := c.ParseJSONBody(&bien); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	created, err := internalservices.CrearBien(c.Ctx, bien)
	if err != nil {
		c.respondError(err, "error creando el bien")
		return
	}
	resp := internalhelpers.Ok(created)
	resp.Message = "Bien creado"
	c.writeJSON(resp.Status, resp)
}

// PutActualizar reemplaza un bien.
// @Summary Actualizar bien
// @Tags Bienes
// @Accept json
// @Produce json
// @Param id path int true "Id del bien" Example(12)
// @Param body body models.Bien true "Bien actualizado"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *BienesController) PutActualizar() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	var bien models.Bien
	if err := c.ParseJSONBody(&bien); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	updated, err := internalservices.ActualizarBien(c.Ctx, id, bien)
	if err != nil {
		c.respondError(err, "error actualizando el bien")
		return
	}
	resp := internalhelpers.Ok(updated)
	resp.Message = "Bien actualizado"
	c.writeJSON(resp.Status, resp)
}

// PatchEstado invierte el estado activo/inactivo del bien y retorna el
// inventario actualizado.
// @Summary Cambiar estado de un bien
// @Tags Bienes
// @Accept json
// @Produce json
// @Param id path int true "Id del bien" Example(12)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *BienesController) PatchEstado() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	bienes, err := internalservices.CambiarEstadoBien(c.Ctx, id)
	if err != nil {
		c.respondError(err, "error cambiando el estado del bien")
		return
	}
	resp := internalhelpers.Ok(bienes)
	resp.Message = "Estado actualizado"
	c.writeJSON(resp.Status, resp)
}

// DeleteOne elimina un bien.
// @Summary Eliminar bien
// @Tags Bienes
// @Accept json
// @Produce json
// @Param id path int true "Id del bien" Example(12)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *BienesController) DeleteOne() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	if err := internalservices.EliminarBien(c.Ctx, id); err != nil {
		c.respondError(err, "error eliminando el bien")
		return
	}
	resp := internalhelpers.Ok(nil)
	resp.Message = "Bien eliminado"
	c.writeJSON(resp.Status, resp)
}

// GetExportarCSV descarga el inventario como CSV.
// @Summary Exportar bienes a CSV
// @Tags Bienes
// @Produce text/csv
// @Success 200 {string} string "archivo CSV"
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *BienesController) GetExportarCSV() {
	contenido, err := internalservices.ExportarBienesCSV(c.Ctx)
	if err != nil {
		c.respondError(err, "error exportando bienes")
		return
	}
	nombre := "bienes-" + time.Now().Format("20060102") + ".csv"
	c.Ctx.Output.Header("Content-Type", "text/csv; charset=utf-8")
	c.Ctx.Output.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	_ = c.Ctx.Output.Body([]byte(contenido))
}

// PostImportarCSV carga bienes desde un archivo CSV (multipart, campo "archivo").
// @Summary Importar bienes desde CSV
// @Description Crea los bienes válidos y reporta los rechazados fila a fila.
// @Tags Bienes
// @Accept multipart/form-data
// @Produce json
// @Param archivo formData file true "Archivo CSV"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *BienesController) PostImportarCSV() {
	file, _, err := c.GetFile("archivo")
	if err != nil {
		c.respondError(helpers.NewAppError(http.StatusBadRequest, "archivo CSV requerido", err), "archivo CSV requerido")
		return
	}
	defer file.Close()

	resultado, err := internalservices.ImportarBienesCSV(c.Ctx, file)
	if err != nil {
		c.respondError(err, "error importando bienes")
		return
	}
	resp := internalhelpers.Ok(resultado)
	resp.Message = "Importación procesada"
	c.writeJSON(resp.Status, resp)
}

func (c *BienesController) parseID() (int64, bool) {
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil || id <= 0 {
		c.respondError(helpers.NewAppError(http.StatusBadRequest, "id inválido", err), "id inválido")
		return 0, false
	}
	return int64(id), true
}

func (c *BienesController) respondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	resp := internalhelpers.Fail(appErr.Status, appErr.Message)
	c.writeJSON(resp.Status, resp)
}

func (c *BienesController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
