package services

import (
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	webctx "github.com/beego/beego/v2/server/web/context"

	roothelpers "github.com/sigebi/bienes_mid/helpers"
	"github.com/sigebi/bienes_mid/internal/clients"
	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	"github.com/sigebi/bienes_mid/internal/tabla"
	"github.com/sigebi/bienes_mid/models"
)

var cacheRoles struct {
	mu        sync.RWMutex
	expiresAt time.Time
	data      []models.Rol
}

// ValidarClave aplica la regla de complejidad del panel: mínimo 8 caracteres
// con mayúscula, minúscula, dígito y carácter especial.
func ValidarClave(clave string) error {
	if len(clave) < 8 {
		return roothelpers.NewAppError(http.StatusBadRequest, "la clave debe tener al menos 8 caracteres", nil)
	}
	var mayuscula, minuscula, digito, especial bool
	for _, r := range clave {
		switch {
		case unicode.IsUpper(r):
			mayuscula = true
		case unicode.IsLower(r):
			minuscula = true
		case unicode.IsDigit(r):
			digito = true
		default:
			especial = true
		}
	}
	if !mayuscula || !minuscula || !digito || !especial {
		return roothelpers.NewAppError(http.StatusBadRequest,
			"la clave debe combinar mayúsculas, minúsculas, dígitos y caracteres especiales", nil)
	}
	return nil
}

func validarUsuario(req internaldto.UsuarioCrear) error {
	if strings.TrimSpace(req.Nombre) == "" {
		return roothelpers.NewAppError(http.StatusBadRequest, "nombre requerido", nil)
	}
	if strings.TrimSpace(req.Correo) == "" {
		return roothelpers.NewAppError(http.StatusBadRequest, "correo requerido", nil)
	}
	if _, ok := models.TipoDocumentoValido(req.TipoDocumento); !ok {
		return roothelpers.NewAppError(http.StatusBadRequest, "tipo de documento inválido", nil)
	}
	if strings.TrimSpace(req.NumeroDocumento) == "" {
		return roothelpers.NewAppError(http.StatusBadRequest, "número de documento requerido", nil)
	}
	return ValidarClave(req.Clave)
}

// ListarUsuarios retorna usuarios, opcionalmente filtrados por estado.
func ListarUsuarios(ctx *webctx.Context, estado string) ([]models.Usuario, error) {
	filtro := ""
	if estado != "" {
		canonico, ok := models.EstadoUsuarioValido(estado)
		if !ok {
			return nil, roothelpers.NewAppError(http.StatusBadRequest, "estado inválido", nil)
		}
		filtro = canonico
	}

	headers := internalhelpers.CopyRequestHeaders(ctx)
	usuarios, err := clients.BienesCRUD().ListUsuarios(headers, filtro)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error consultando usuarios")
	}
	return usuarios, nil
}

// TablaUsuarios compone la vista de tabla de la pantalla de usuarios.
func TablaUsuarios(ctx *webctx.Context, busqueda, pageStr, sizeStr string) (tabla.Resultado, error) {
	usuarios, err := ListarUsuarios(ctx, "")
	if err != nil {
		return tabla.Resultado{}, err
	}

	page, size := internalhelpers.ParsePageSize(pageStr, sizeStr)
	columnas := []tabla.Columna[models.Usuario]{
		{
			ID: "nombre", Etiqueta: "Nombre", Ordenable: true,
			Accesor: func(u models.Usuario) interface{} { return strings.TrimSpace(u.Nombre + " " + u.Apellido) },
		},
		{
			ID: "correo", Etiqueta: "Correo",
			Accesor: func(u models.Usuario) interface{} { return u.Correo },
		},
		{
			ID: "documento", Etiqueta: "Documento",
			Accesor: func(u models.Usuario) interface{} { return u.NumeroDocumento },
			Render: func(_ interface{}, u models.Usuario) string {
				return u.TipoDocumento + " " + u.NumeroDocumento
			},
		},
		{
			ID: "rol", Etiqueta: "Rol",
			Accesor: func(u models.Usuario) interface{} { return u.Rol },
		},
		{
			ID: "estado", Etiqueta: "Estado", Ordenable: true,
			Accesor: func(u models.Usuario) interface{} { return u.Estado },
		},
	}

	resultado := tabla.Componer(usuarios, columnas, tabla.Opciones{
		Busqueda: busqueda,
		Pagina:   page,
		Tamano:   size,
	})
	resultado.Menu = tabla.ArmarMenu([]tabla.Accion{
		{ID: "activar", Etiqueta: "Asignar acceso"},
	}, true, true)
	resultado.SugerirCrear = resultado.Vacia
	return resultado, nil
}

// CrearUsuario valida y registra una cuenta nueva; entra en estado pendiente
// hasta que control de acceso le asigne rol y cargo.
func CrearUsuario(ctx *webctx.Context, req internaldto.UsuarioCrear) (*models.Usuario, error) {
	if err := validarUsuario(req); err != nil {
		return nil, err
	}

	tipoDoc, _ := models.TipoDocumentoValido(req.TipoDocumento)
	payload := map[string]interface{}{
		"nombre":          strings.TrimSpace(req.Nombre),
		"apellido":        strings.TrimSpace(req.Apellido),
		"correo":          strings.TrimSpace(req.Correo),
		"telefono":        strings.TrimSpace(req.Telefono),
		"tipoDocumento":   tipoDoc,
		"numeroDocumento": strings.TrimSpace(req.NumeroDocumento),
		"clave":           req.Clave,
		"estado":          models.UsuarioPendiente,
	}
	if req.RolId > 0 {
		payload["rolId"] = req.RolId
		payload["cargo"] = strings.TrimSpace(req.Cargo)
		payload["estado"] = models.UsuarioActivo
	}

	headers := internalhelpers.CopyRequestHeaders(ctx)
	created, err := clients.BienesCRUD().CreateUsuario(headers, payload)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error creando el usuario")
	}
	return created, nil
}

// ObtenerUsuario consulta un usuario por id.
func ObtenerUsuario(ctx *webctx.Context, id int64) (*models.Usuario, error) {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	usuario, err := clients.BienesCRUD().GetUsuario(headers, id)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return nil, roothelpers.NewAppError(http.StatusNotFound, "usuario no encontrado", err)
		}
		return nil, roothelpers.AsAppError(err, "error consultando el usuario")
	}
	return usuario, nil
}

// ActualizarUsuario reemplaza los datos básicos de la cuenta.
func ActualizarUsuario(ctx *webctx.Context, id int64, usuario models.Usuario) (*models.Usuario, error) {
	if strings.TrimSpace(usuario.Nombre) == "" {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "nombre requerido", nil)
	}
	headers := internalhelpers.CopyRequestHeaders(ctx)
	updated, err := clients.BienesCRUD().UpdateUsuario(headers, id, usuario)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return nil, roothelpers.NewAppError(http.StatusNotFound, "usuario no encontrado", err)
		}
		return nil, roothelpers.AsAppError(err, "error actualizando el usuario")
	}
	return updated, nil
}

// ActivarUsuario transiciona un usuario pendiente a activo asignando rol y
// cargo (pantalla de control de acceso).
func ActivarUsuario(ctx *webctx.Context, id int64, req internaldto.ActivarUsuario) (*models.Usuario, error) {
	if req.RolId <= 0 {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "rolId requerido", nil)
	}
	if strings.TrimSpace(req.Cargo) == "" {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "cargo requerido", nil)
	}

	headers := internalhelpers.CopyRequestHeaders(ctx)
	crud := clients.BienesCRUD()

	usuario, err := crud.GetUsuario(headers, id)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return nil, roothelpers.NewAppError(http.StatusNotFound, "usuario no encontrado", err)
		}
		return nil, roothelpers.AsAppError(err, "error consultando el usuario")
	}
	if usuario.Estado != models.UsuarioPendiente {
		return nil, roothelpers.NewAppError(http.StatusConflict, "el usuario no está pendiente de activación", nil)
	}

	payload := map[string]interface{}{
		"rolId":  req.RolId,
		"cargo":  strings.TrimSpace(req.Cargo),
		"estado": models.UsuarioActivo,
	}
	activated, err := crud.PatchUsuario(headers, id, payload)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error activando el usuario")
	}
	return activated, nil
}

// EliminarUsuario borra una cuenta.
func EliminarUsuario(ctx *webctx.Context, id int64) error {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	if err := clients.BienesCRUD().DeleteUsuario(headers, id); err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return roothelpers.NewAppError(http.StatusNotFound, "usuario no encontrado", err)
		}
		return roothelpers.AsAppError(err, "error eliminando el usuario")
	}
	return nil
}

// ListarRoles retorna el catálogo de roles con caché de corta vida.
func ListarRoles(ctx *webctx.Context) ([]models.Rol, error) {
	cacheRoles.mu.RLock()
	if time.Now().Before(cacheRoles.expiresAt) && cacheRoles.data != nil {
		data := cacheRoles.data
		cacheRoles.mu.RUnlock()
		return data, nil
	}
	cacheRoles.mu.RUnlock()

	headers := internalhelpers.CopyRequestHeaders(ctx)
	roles, err := clients.BienesCRUD().ListRoles(headers)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error consultando roles")
	}
	sort.Slice(roles, func(i, j int) bool {
		return strings.ToLower(roles[i].Nombre) < strings.ToLower(roles[j].Nombre)
	})

	cacheRoles.mu.Lock()
	cacheRoles.data = roles
	cacheRoles.expiresAt = time.Now().Add(catalogoTTL)
	cacheRoles.mu.Unlock()

	return roles, nil
}

// UsuariosYRoles arma en una sola respuesta lo que la pantalla de ajustes
// carga junto: la lista de usuarios y el catálogo de roles.
func UsuariosYRoles(ctx *webctx.Context) (map[string]interface{}, error) {
	usuarios, err := ListarUsuarios(ctx, "")
	if err != nil {
		return nil, err
	}
	roles, err := ListarRoles(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"usuarios": usuarios,
		"roles":    roles,
	}, nil
}
