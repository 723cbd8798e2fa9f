package services

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	webctx "github.com/beego/beego/v2/server/web/context"

	roothelpers "github.com/sigebi/bienes_mid/helpers"
	"github.com/sigebi/bienes_mid/internal/clients"
	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	"github.com/sigebi/bienes_mid/internal/tabla"
	"github.com/sigebi/bienes_mid/models"
	rootservices "github.com/sigebi/bienes_mid/services"
)

func columnasSolicitudes() []tabla.Columna[models.Solicitud] {
	return []tabla.Columna[models.Solicitud]{
		{
			ID: "seguimiento", Etiqueta: "Seguimiento",
			Accesor: func(s models.Solicitud) interface{} { return s.NumeroSeguimiento },
		},
		{
			ID: "solicitante", Etiqueta: "Solicitante", Ordenable: true,
			Accesor: func(s models.Solicitud) interface{} { return s.NombreSolicitante },
		},
		{
			ID: "placa", Etiqueta: "Placa",
			Accesor: func(s models.Solicitud) interface{} { return s.Placa },
		},
		{
			ID: "tipo", Etiqueta: "Tipo", Ordenable: true,
			Accesor: func(s models.Solicitud) interface{} { return s.TipoMantenimiento },
		},
		{
			ID: "orden", Etiqueta: "Orden",
			Accesor: func(s models.Solicitud) interface{} { return s.OrdenCreada },
			Render: func(_ interface{}, s models.Solicitud) string {
				if s.OrdenCreada {
					return "Programada"
				}
				return "Pendiente"
			},
		},
	}
}

// ListarSolicitudes retorna la página de solicitudes.
func ListarSolicitudes(ctx *webctx.Context, pageStr, sizeStr string) (*internaldto.PageDTO[models.Solicitud], error) {
	page, size := internalhelpers.ParsePageSize(pageStr, sizeStr)
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(size))

	headers := internalhelpers.CopyRequestHeaders(ctx)
	solicitudes, meta, err := clients.BienesCRUD().ListSolicitudes(headers, query)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error consultando solicitudes")
	}

	total := int64(len(solicitudes))
	if meta != nil {
		total = int64(meta.Total)
	}
	return &internaldto.PageDTO[models.Solicitud]{
		Items: solicitudes,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

// TablaSolicitudes compone la vista de tabla de solicitudes, en modo externo
// cuando bienes_crud pagina y en modo interno cuando entrega la lista plana.
func TablaSolicitudes(ctx *webctx.Context, busqueda, pageStr, sizeStr string) (tabla.Resultado, error) {
	page, size := internalhelpers.ParsePageSize(pageStr, sizeStr)
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(size))

	headers := internalhelpers.CopyRequestHeaders(ctx)
	solicitudes, meta, err := clients.BienesCRUD().ListSolicitudes(headers, query)
	if err != nil {
		return tabla.Resultado{}, roothelpers.AsAppError(err, "error consultando solicitudes")
	}

	columnas := columnasSolicitudes()
	var resultado tabla.Resultado
	if meta != nil {
		resultado = tabla.ComponerExterna(solicitudes, columnas, tabla.Externa{
			Pagina:       page,
			TotalPaginas: meta.TotalPaginas,
			TotalItems:   meta.Total,
		})
	} else {
		resultado = tabla.Componer(solicitudes, columnas, tabla.Opciones{
			Busqueda: busqueda,
			Pagina:   page,
			Tamano:   size,
		})
	}
	resultado.Menu = tabla.ArmarMenu([]tabla.Accion{
		{ID: "programar", Etiqueta: "Programar orden"},
	}, false, true)
	resultado.SugerirCrear = resultado.Vacia
	return resultado, nil
}

// ObtenerSolicitud consulta una solicitud por id.
func ObtenerSolicitud(ctx *webctx.Context, id int64) (*models.Solicitud, error) {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	solicitud, err := clients.BienesCRUD().GetSolicitud(headers, id)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return nil, roothelpers.NewAppError(http.StatusNotFound, "solicitud no encontrada", err)
		}
		return nil, roothelpers.AsAppError(err, "error consultando la solicitud")
	}
	return solicitud, nil
}

// CrearSolicitud registra una solicitud de mantenimiento. El formulario es
// público: sin token se exige el nombre del solicitante, con token se
// completa desde los claims cuando viene vacío. La placa se resuelve contra
// el inventario para arrastrar el serial del bien.
func CrearSolicitud(ctx *webctx.Context, req internaldto.SolicitudCrear) (*models.Solicitud, error) {
	tipo, ok := models.TipoMantenimientoValido(req.TipoMantenimiento)
	if !ok {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "tipo de mantenimiento inválido", nil)
	}
	if strings.TrimSpace(req.Descripcion) == "" {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "descripción requerida", nil)
	}
	if strings.TrimSpace(req.Placa) == "" {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "placa requerida", nil)
	}

	nombre := strings.TrimSpace(req.NombreSolicitante)
	if nombre == "" {
		if desdeToken, err := internalhelpers.GetNombre(ctx); err == nil {
			nombre = desdeToken
		}
	}
	if nombre == "" {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "nombre del solicitante requerido", nil)
	}

	bien, err := ObtenerBienPorPlaca(ctx, strings.TrimSpace(req.Placa))
	if err != nil {
		return nil, err
	}

	solicitud := models.Solicitud{
		NombreSolicitante:   nombre,
		TelefonoSolicitante: strings.TrimSpace(req.TelefonoSolicitante),
		Placa:               bien.Placa,
		Serial:              bien.Serial,
		Descripcion:         strings.TrimSpace(req.Descripcion),
		TipoMantenimiento:   tipo,
		NumeroSeguimiento:   GenerarNumeroSeguimiento(time.Now()),
		OrdenCreada:         false,
	}

	headers := internalhelpers.CopyRequestHeaders(ctx)
	if headers["Authorization"] == "" {
		headers = rootservices.AddServiceAuth(headers)
	}
	created, err := clients.BienesCRUD().CreateSolicitud(headers, solicitud)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error registrando la solicitud")
	}
	return created, nil
}

// ConsultarSeguimiento resuelve una solicitud por su número de seguimiento.
// Es la consulta pública del formulario de seguimiento.
func ConsultarSeguimiento(ctx *webctx.Context, numero string) (*models.Solicitud, error) {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "número de seguimiento requerido", nil)
	}

	headers := internalhelpers.CopyRequestHeaders(ctx)
	if headers["Authorization"] == "" {
		headers = rootservices.AddServiceAuth(headers)
	}
	solicitud, err := clients.BienesCRUD().GetSolicitudPorSeguimiento(headers, numero)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error consultando el seguimiento")
	}
	if solicitud == nil {
		return nil, roothelpers.NewAppError(http.StatusNotFound, "no existe una solicitud con ese número de seguimiento", nil)
	}
	return solicitud, nil
}

// EliminarSolicitud borra una solicitud.
func EliminarSolicitud(ctx *webctx.Context, id int64) error {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	if err := clients.BienesCRUD().DeleteSolicitud(headers, id); err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return roothelpers.NewAppError(http.StatusNotFound, "solicitud no encontrada", err)
		}
		return roothelpers.AsAppError(err, "error eliminando la solicitud")
	}
	return nil
}
