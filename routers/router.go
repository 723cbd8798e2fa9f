package routers

import (
	"github.com/sigebi/bienes_mid/controllers/errorhandler"
	internalcontrollers "github.com/sigebi/bienes_mid/internal/controllers"
	"github.com/sigebi/bienes_mid/internal/middlewares"

	beego "github.com/beego/beego/v2/server/web"
)

func init() {
	// Manejador de errores
	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	middlewares.UseCorrelacion()
	middlewares.UseAuth()

	beego.Router("/v1/bienes", &internalcontrollers.BienesController{}, "get:GetListado;post:PostCrear")
	beego.Router("/v1/bienes/tabla", &internalcontrollers.BienesController{}, "get:GetTabla")
	beego.Router("/v1/bienes/placa", &internalcontrollers.BienesController{}, "get:GetPorPlaca")
	beego.Router("/v1/bienes/exportar", &internalcontrollers.BienesController{}, "get:GetExportarCSV")
	beego.Router("/v1/bienes/importar", &internalcontrollers.BienesController{}, "post:PostImportarCSV")
	beego.Router("/v1/bienes/:id/estado", &internalcontrollers.BienesController{}, "patch:PatchEstado")
	beego.Router("/v1/bienes/:id", &internalcontrollers.BienesController{}, "get:GetById;put:PutActualizar;delete:DeleteOne")

	beego.Router("/v1/categorias", &internalcontrollers.CategoriasController{}, "get:GetListado;post:PostCrear")
	beego.Router("/v1/categorias/catalogo", &internalcontrollers.CategoriasController{}, "get:GetCatalogo")
	beego.Router("/v1/categorias/:id", &internalcontrollers.CategoriasController{}, "put:PutActualizar;delete:DeleteOne")

	beego.Router("/v1/usuarios", &internalcontrollers.UsuariosController{}, "get:GetListado;post:PostCrear")
	beego.Router("/v1/usuarios/tabla", &internalcontrollers.UsuariosController{}, "get:GetTabla")
	beego.Router("/v1/usuarios/con-roles", &internalcontrollers.UsuariosController{}, "get:GetConRoles")
	beego.Router("/v1/usuarios/:id", &internalcontrollers.UsuariosController{}, "get:GetById;put:PutActualizar;delete:DeleteOne")
	beego.Router("/v1/roles", &internalcontrollers.UsuariosController{}, "get:GetRoles")
	beego.Router("/v1/acceso/pendientes", &internalcontrollers.UsuariosController{}, "get:GetPendientes")
	beego.Router("/v1/acceso/:id/activar", &internalcontrollers.UsuariosController{}, "put:PutActivar")

	beego.Router("/v1/solicitudes", &internalcontrollers.SolicitudesController{}, "get:GetListado;post:PostCrear")
	beego.Router("/v1/solicitudes/tabla", &internalcontrollers.SolicitudesController{}, "get:GetTabla")
	beego.Router("/v1/solicitudes/seguimiento", &internalcontrollers.SolicitudesController{}, "get:GetSeguimiento")
	beego.Router("/v1/solicitudes/:id/ordenes", &internalcontrollers.OrdenesController{}, "post:PostCrear")
	beego.Router("/v1/solicitudes/:id", &internalcontrollers.SolicitudesController{}, "get:GetById;delete:DeleteOne")

	beego.Router("/v1/ordenes", &internalcontrollers.OrdenesController{}, "get:GetListado")
	beego.Router("/v1/ordenes/tabla", &internalcontrollers.OrdenesController{}, "get:GetTabla")
	beego.Router("/v1/ordenes/:id/reportes", &internalcontrollers.ReportesController{}, "post:PostCrear")
	beego.Router("/v1/ordenes/:id", &internalcontrollers.OrdenesController{}, "get:GetById;delete:DeleteOne")

	beego.Router("/v1/reportes", &internalcontrollers.ReportesController{}, "get:GetListado")
	beego.Router("/v1/reportes/tabla", &internalcontrollers.ReportesController{}, "get:GetTabla")
	beego.Router("/v1/reportes/:id", &internalcontrollers.ReportesController{}, "get:GetById;patch:PatchEditar;delete:DeleteOne")

	beego.Router("/v1/configuracion", &internalcontrollers.ConfiguracionController{}, "get:GetConfiguracion;put:PutGuardar")
	beego.Router("/v1/configuracion/probar", &internalcontrollers.ConfiguracionController{}, "post:PostProbar")

	beego.Router("/v1/menu", &internalcontrollers.ShellController{}, "get:GetMenu")
	beego.Router("/v1/dashboard", &internalcontrollers.ShellController{}, "get:GetDashboard")
}
