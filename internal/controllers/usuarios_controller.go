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

// UsuariosController gestiona cuentas, roles y el control de acceso.
type UsuariosController struct {
	rootcontrollers.BaseController
}

// GetListado lista usuarios, opcionalmente filtrados por estado.
// @Summary Listar usuarios
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param estado query string false "activo, pendiente o inactivo"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *UsuariosController) GetListado() {
	data, err := internalservices.ListarUsuarios(c.Ctx, c.GetString("estado"))
	if err != nil {
		c.respondError(err, "error consultando usuarios")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetTabla compone la tabla de usuarios.
// @Summary Tabla de usuarios
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param q query string false "Texto de búsqueda"
// @Param page query int false "Página" Example(1)
// @Param size query int false "Tamaño de página" Example(10)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *UsuariosController) GetTabla() {
	data, err := internalservices.TablaUsuarios(c.Ctx, c.GetString("q"), c.GetString("page"), c.GetString("size"))
	if err != nil {
		c.respondError(err, "error componiendo la tabla de usuarios")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetById retorna un usuario.
// @Summary Detalle de usuario
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param id path int true "Id del usuario" Example(5)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *UsuariosController) GetById() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	usuario, err := internalservices.ObtenerUsuario(c.Ctx, id)
	if err != nil {
		c.respondError(err, "error consultando el usuario")
		return
	}
	resp := internalhelpers.Ok(usuario)
	c.writeJSON(resp.Status, resp)
}

// PostCrear registra una cuenta de usuario.
// @Summary Crear usuario
// @Description Exige clave con mayúscula, minúscula, dígito y carácter especial (mínimo 8).
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param body body internaldto.UsuarioCrear true "Usuario a crear"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *UsuariosController) PostCrear() {
	var req internaldto.UsuarioCrear
	if err := c.ParseJSONBody(&req); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	created, err := internalservices.CrearUsuario(c.Ctx, req)
	if err != nil {
		c.respondError(err, "error creando el usuario")
		return
	}
	resp := internalhelpers.Ok(created)
	resp.Message = "Usuario creado"
	c.writeJSON(resp.Status, resp)
}

// PutActualizar reemplaza los datos básicos de un usuario.
// @Summary Actualizar usuario
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param id path int true "Id del usuario" Example(5)
// @Param body body models.Usuario true "Usuario actualizado"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *UsuariosController) PutActualizar() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	var usuario models.Usuario
	if err := c.ParseJSONBody(&usuario); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	updated, err := internalservices.ActualizarUsuario(c.Ctx, id, usuario)
	if err != nil {
		c.respondError(err, "error actualizando el usuario")
		return
	}
	resp := internalhelpers.Ok(updated)
	resp.Message = "Usuario actualizado"
	c.writeJSON(resp.Status, resp)
}

// DeleteOne elimina un usuario.
// @Summary Eliminar usuario
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param id path int true "Id del usuario" Example(5)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *UsuariosController) DeleteOne() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	if err := internalservices.EliminarUsuario(c.Ctx, id); err != nil {
		c.respondError(err, "error eliminando el usuario")
		return
	}
	resp := internalhelpers.Ok(nil)
	resp.Message = "Usuario eliminado"
	c.writeJSON(resp.Status, resp)
}

// GetPendientes lista los usuarios pendientes de activación (control de acceso).
// @Summary Listar usuarios pendientes
// @Tags ControlAcceso
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *UsuariosController) GetPendientes() {
	data, err := internalservices.ListarUsuarios(c.Ctx, models.UsuarioPendiente)
	if err != nil {
		c.respondError(err, "error consultando usuarios pendientes")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// PutActivar asigna rol y cargo a un usuario pendiente y lo activa.
// @Summary Activar usuario pendiente
// @Tags ControlAcceso
// @Accept json
// @Produce json
// @Param id path int true "Id del usuario" Example(5)
// @Param body body internaldto.ActivarUsuario true "Rol y cargo asignados"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 409 {object} internaldto.APIResponseDTO
func (c *UsuariosController) PutActivar() {
	id, ok := c.parseID()
	if !ok {
		return
	}
	var req internaldto.ActivarUsuario
	if err := c.ParseJSONBody(&req); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	activated, err := internalservices.ActivarUsuario(c.Ctx, id, req)
	if err != nil {
		c.respondError(err, "error activando el usuario")
		return
	}
	resp := internalhelpers.Ok(activated)
	resp.Message = "Usuario activado"
	c.writeJSON(resp.Status, resp)
}

// GetRoles retorna el catálogo de roles.
// @Summary Listar roles
// @Tags Usuarios
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *UsuariosController) GetRoles() {
	data, err := internalservices.ListarRoles(c.Ctx)
	if err != nil {
		c.respondError(err, "error consultando roles")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// GetConRoles retorna usuarios y roles en una sola respuesta para la pantalla
// de ajustes.
// @Summary Usuarios y roles combinados
// @Tags Usuarios
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 500 {object} internaldto.APIResponseDTO
func (c *UsuariosController) GetConRoles() {
	data, err := internalservices.UsuariosYRoles(c.Ctx)
	if err != nil {
		c.respondError(err, "error consultando usuarios y roles")
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

func (c *UsuariosController) parseID() (int64, bool) {
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil || id <= 0 {
		c.respondError(helpers.NewAppError(http.StatusBadRequest, "id inválido", err), "id inválido")
		return 0, false
	}
	return int64(id), true
}

func (c *UsuariosController) respondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	resp := internalhelpers.Fail(appErr.Status, appErr.Message)
	c.writeJSON(resp.Status, resp)
}

func (c *UsuariosController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
