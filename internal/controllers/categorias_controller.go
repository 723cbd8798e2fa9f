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

// CategoriasController gestiona las categorías del inventario.
type CategoriasController struct {
	rootcontrollers.BaseController
}

// GetListado lista todas las categorías.
// @Summary Listar categorías
// @Tags Categorias
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *CategoriasController) GetListado() {
	data, err := internalservices.ListarCategorias(c.Ctx)
	if err != nil {
		c.respondError(err, "error consultando categorías")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetCatalogo retorna las categorías activas como opciones de selección.
// @Summary Catálogo de categorías activas
// @Description Respuesta cacheada por corto tiempo; se invalida con cada mutación.
// @Tags Categorias
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *CategoriasController) GetCatalogo() {
	data, err := internalservices.CatalogoCategorias(c.Ctx)
	if err != nil {
		c.respondError(err, "error consultando el catálogo de categorías")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// PostCrear registra una categoría.
// @Summary Crear categoría
// @Tags Categorias
// @Accept json
// @Produce json
// @Param body body models.Categoria true "Categoría a crear"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *CategoriasController) PostCrear() {
	var cat models.Categoria
	if err := c.ParseJSONBody(&cat); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	created, err := internalservices.CrearCategoria(c.Ctx, cat)
	if err != nil {
		c.respondError(err, "error creando la categoría")
		return
	}
	resp := internalhelpers.Ok(created)
	resp.Message = "Categoría creada"
	c.writeJSON(resp.Status, resp)
}

// PutActualizar reemplaza una categoría.
// @Summary Actualizar categoría
// @Tags Categorias
// @Accept json
// @Produce json
// @Param id path int true "Id de la categoría" Example(3)
// @Param body body models.Categoria true "Categoría actualizada"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *CategoriasController) PutActualizar() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	var cat models.Categoria
	if err := c.ParseJSONBody(&cat); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	updated, err := internalservices.ActualizarCategoria(c.Ctx, id, cat)
	if err != nil {
		c.respondError(err, "error actualizando la categoría")
		return
	}
	resp := internalhelpers.Ok(updated)
	resp.Message = "Categoría actualizada"
	c.writeJSON(resp.Status, resp)
}

// DeleteOne elimina una categoría.
// @Summary Eliminar categoría
// @Tags Categorias
// @Accept json
// @Produce json
// @Param id path int true "Id de la categoría" Example(3)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *CategoriasController) DeleteOne() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	if err := internalservices.EliminarCategoria(c.Ctx, id); err != nil {
		c.respondError(err, "error eliminando la categoría")
		return
	}
	resp := internalhelpers.Ok(nil)
	resp.Message = "Categoría eliminada"
	c.writeJSON(resp.Status, resp)
}

func (c *CategoriasController) parseID() (int64, bool) {
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil || id <= 0 {
		c.respondError(helpers.NewAppError(http.StatusBadRequest, "id inválido", err), "id inválido")
		return 0, false
	}
	return int64(id), true
}

func (c *CategoriasController) respondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	resp := internalhelpers.Fail(appErr.Status, appErr.Message)
	c.writeJSON(resp.Status, resp)
}

func (c *CategoriasController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
