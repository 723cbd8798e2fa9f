package services

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	webctx "github.com/beego/beego/v2/server/web/context"

	roothelpers "github.com/sigebi/bienes_mid/helpers"
	"github.com/sigebi/bienes_mid/internal/clients"
	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	"github.com/sigebi/bienes_mid/internal/tabla"
	"github.com/sigebi/bienes_mid/models"
)

// falloEntregaCorreo es el fragmento con el que bienes_crud reporta que la
// orden quedó creada pero el correo de notificación no pudo enviarse. En ese
// caso la operación NO se trata como fallo: se responde la orden con una
// advertencia.
const falloEntregaCorreo = "Invalid login"

const advertenciaCorreo = "la orden fue creada pero la notificación por correo no pudo enviarse"

func esFalloEntregaCorreo(err error) bool {
	return roothelpers.ContainsMessage(err, falloEntregaCorreo)
}

// derivarEstadoTiempo calcula la holgura de la orden frente a su fecha fin.
// Las órdenes cerradas no llevan estado de tiempo.
func derivarEstadoTiempo(orden *models.OrdenTrabajo, ahora time.Time) {
	if orden == nil || orden.Cerrada {
		return
	}
	fin := ParseFecha(orden.FechaFin)
	if fin.IsZero() {
		return
	}
	dias := int(fin.Sub(ahora).Hours() / 24)
	orden.EstadoTiempo = &models.EstadoTiempo{
		DiasRestantes: dias,
		Vencida:       ahora.After(fin),
	}
}

func columnasOrdenes() []tabla.Columna[models.OrdenTrabajo] {
	return []tabla.Columna[models.OrdenTrabajo]{
		{
			ID: "radicado", Etiqueta: "Radicado",
			Accesor: func(o models.OrdenTrabajo) interface{} { return o.Radicado },
		},
		{
			ID: "tecnico", Etiqueta: "Técnico", Ordenable: true,
			Accesor: func(o models.OrdenTrabajo) interface{} { return o.Tecnico },
		},
		{
			ID: "fechaFin", Etiqueta: "Fecha fin", Ordenable: true,
			Accesor: func(o models.OrdenTrabajo) interface{} { return o.FechaFin },
			Render: func(valor interface{}, _ models.OrdenTrabajo) string {
				if s, ok := valor.(string); ok {
					if t := ParseFecha(s); !t.IsZero() {
						return t.Format("02/01/2006")
					}
				}
				return ""
			},
		},
		{
			ID: "prioridad", Etiqueta: "Prioridad", Ordenable: true,
			Accesor: func(o models.OrdenTrabajo) interface{} { return o.Prioridad },
		},
		{
			ID: "estado", Etiqueta: "Estado",
			Accesor: func(o models.OrdenTrabajo) interface{} { return o.Cerrada },
			Render: func(_ interface{}, o models.OrdenTrabajo) string {
				if o.Cerrada {
					return "Cerrada"
				}
				if o.EstadoTiempo != nil && o.EstadoTiempo.Vencida {
					return "Vencida"
				}
				return "Abierta"
			},
		},
	}
}

// ListarOrdenes retorna las órdenes con su estado de tiempo derivado.
func ListarOrdenes(ctx *webctx.Context, pageStr, sizeStr string) (*internaldto.PageDTO[models.OrdenTrabajo], error) {
	page, size := internalhelpers.ParsePageSize(pageStr, sizeStr)
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(size))

	headers := internalhelpers.CopyRequestHeaders(ctx)
	ordenes, meta, err := clients.BienesCRUD().ListOrdenes(headers, query)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error consultando órdenes de trabajo")
	}

	ahora := time.Now()
	for i := range ordenes {
		derivarEstadoTiempo(&ordenes[i], ahora)
	}

	total := int64(len(ordenes))
	if meta != nil {
		total = int64(meta.Total)
	}
	return &internaldto.PageDTO[models.OrdenTrabajo]{
		Items: ordenes,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

// TablaOrdenes compone la tabla de órdenes de trabajo.
func TablaOrdenes(ctx *webctx.Context, busqueda, pageStr, sizeStr string) (tabla.Resultado, error) {
	page, size := internalhelpers.ParsePageSize(pageStr, sizeStr)
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(size))

	headers := internalhelpers.CopyRequestHeaders(ctx)
	ordenes, meta, err := clients.BienesCRUD().ListOrdenes(headers, query)
	if err != nil {
		return tabla.Resultado{}, roothelpers.AsAppError(err, "error consultando órdenes de trabajo")
	}

	ahora := time.Now()
	for i := range ordenes {
		derivarEstadoTiempo(&ordenes[i], ahora)
	}

	columnas := columnasOrdenes()
	var resultado tabla.Resultado
	if meta != nil {
		resultado = tabla.ComponerExterna(ordenes, columnas, tabla.Externa{
			Pagina:       page,
			TotalPaginas: meta.TotalPaginas,
			TotalItems:   meta.Total,
		})
	} else {
		resultado = tabla.Componer(ordenes, columnas, tabla.Opciones{
			Busqueda: busqueda,
			Pagina:   page,
			Tamano:   size,
		})
	}
	resultado.Menu = tabla.ArmarMenu([]tabla.Accion{
		{ID: "reportar", Etiqueta: "Registrar reporte"},
	}, false, true)
	resultado.SugerirCrear = resultado.Vacia
	return resultado, nil
}

// ObtenerOrden consulta una orden por id.
func ObtenerOrden(ctx *webctx.Context, id int64) (*models.OrdenTrabajo, error) {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	orden, err := clients.BienesCRUD().GetOrden(headers, id)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return nil, roothelpers.NewAppError(http.StatusNotFound, "orden de trabajo no encontrada", err)
		}
		return nil, roothelpers.AsAppError(err, "error consultando la orden de trabajo")
	}
	derivarEstadoTiempo(orden, time.Now())
	return orden, nil
}

// CrearOrden programa una orden de trabajo sobre una solicitud. El radicado se
// genera a partir de la fecha de inicio y el instructor sale del token del
// usuario que programa.
func CrearOrden(ctx *webctx.Context, solicitudID int64, req internaldto.OrdenCrear) (*models.OrdenTrabajo, error) {
	prioridad, ok := models.PrioridadValida(req.Prioridad)
	if !ok {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "prioridad inválida", nil)
	}
	if req.TecnicoId <= 0 {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "tecnicoId requerido", nil)
	}
	inicio := ParseFecha(req.FechaInicio)
	if inicio.IsZero() {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "fecha de inicio inválida", nil)
	}
	fin := ParseFecha(req.FechaFin)
	if fin.IsZero() {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "fecha de fin inválida", nil)
	}
	if fin.Before(inicio) {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "la fecha de fin no puede ser anterior a la de inicio", nil)
	}

	solicitud, err := ObtenerSolicitud(ctx, solicitudID)
	if err != nil {
		return nil, err
	}
	if solicitud.OrdenCreada {
		return nil, roothelpers.NewAppError(http.StatusConflict, "la solicitud ya tiene una orden programada", nil)
	}

	instructorID, err := internalhelpers.GetUsuarioID(ctx)
	if err != nil {
		return nil, roothelpers.NewAppError(http.StatusUnauthorized, "no fue posible identificar al instructor", err)
	}

	orden := models.OrdenTrabajo{
		Radicado:     GenerarRadicadoOrden(inicio),
		SolicitudId:  solicitud.Id,
		TecnicoId:    req.TecnicoId,
		InstructorId: int64(instructorID),
		FechaInicio:  req.FechaInicio,
		FechaFin:     req.FechaFin,
		Prioridad:    prioridad,
		Cerrada:      false,
	}

	headers := internalhelpers.CopyRequestHeaders(ctx)
	created, err := clients.BienesCRUD().CreateOrden(headers, orden)
	if err != nil {
		if esFalloEntregaCorreo(err) {
			// La orden quedó persistida en bienes_crud; el fallo fue solo la
			// entrega del correo.
			sintetica := orden
			sintetica.Advertencia = advertenciaCorreo
			sintetica.FechaCreacion = nowISO()
			return &sintetica, nil
		}
		return nil, roothelpers.AsAppError(err, "error programando la orden de trabajo")
	}
	return created, nil
}

// EliminarOrden borra una orden de trabajo.
func EliminarOrden(ctx *webctx.Context, id int64) error {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	if err := clients.BienesCRUD().DeleteOrden(headers, id); err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return roothelpers.NewAppError(http.StatusNotFound, "orden de trabajo no encontrada", err)
		}
		return roothelpers.AsAppError(err, "error eliminando la orden de trabajo")
	}
	return nil
}
