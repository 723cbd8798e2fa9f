package services

import (
	"strings"

	webctx "github.com/beego/beego/v2/server/web/context"

	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
)

// OpcionMenu es una entrada del menú lateral del panel.
type OpcionMenu struct {
	ID       string `json:"id"`
	Etiqueta string `json:"etiqueta"`
	Ruta     string `json:"ruta"`
	Icono    string `json:"icono,omitempty"`
}

var menuBase = []OpcionMenu{
	{ID: "dashboard", Etiqueta: "Inicio", Ruta: "/dashboard", Icono: "home"},
	{ID: "solicitudes", Etiqueta: "Solicitudes", Ruta: "/solicitudes", Icono: "inbox"},
	{ID: "ordenes", Etiqueta: "Órdenes de trabajo", Ruta: "/ordenes", Icono: "clipboard"},
	{ID: "reportes", Etiqueta: "Reportes", Ruta: "/reportes", Icono: "file-text"},
}

var menuInventario = []OpcionMenu{
	{ID: "bienes", Etiqueta: "Bienes", Ruta: "/bienes", Icono: "box"},
	{ID: "categorias", Etiqueta: "Categorías", Ruta: "/categorias", Icono: "tag"},
}

var menuAdministracion = []OpcionMenu{
	{ID: "usuarios", Etiqueta: "Usuarios", Ruta: "/usuarios", Icono: "users"},
	{ID: "acceso", Etiqueta: "Control de acceso", Ruta: "/acceso", Icono: "key"},
	{ID: "configuracion", Etiqueta: "Configuración", Ruta: "/configuracion", Icono: "settings"},
}

// MenuPorRol resuelve las opciones del menú lateral según el rol del token.
// Un técnico solo ve el flujo de mantenimiento; el instructor suma el
// inventario; el administrador lo ve todo.
func MenuPorRol(ctx *webctx.Context) []OpcionMenu {
	rol := strings.ToLower(internalhelpers.RolActual(ctx))

	opciones := make([]OpcionMenu, 0, len(menuBase)+len(menuInventario)+len(menuAdministracion))
	opciones = append(opciones, menuBase...)
	switch rol {
	case "administrador", "admin":
		opciones = append(opciones, menuInventario...)
		opciones = append(opciones, menuAdministracion...)
	case "instructor":
		opciones = append(opciones, menuInventario...)
	}
	return opciones
}
