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
)

func columnasReportes() []tabla.Columna[models.ReporteTrabajo] {
	return []tabla.Columna[models.ReporteTrabajo]{
		{
			ID: "codigo", Etiqueta: "Código",
			Accesor: func(r models.ReporteTrabajo) interface{} { return r.Codigo },
		},
		{
			ID: "horas", Etiqueta: "Horas", Ordenable: true,
			Accesor: func(r models.ReporteTrabajo) interface{} { return r.Horas },
		},
		{
			ID: "costo", Etiqueta: "Costo", Ordenable: true,
			Accesor: func(r models.ReporteTrabajo) interface{} { return r.Costo },
			Render: func(_ interface{}, r models.ReporteTrabajo) string {
				return "$" + strconv.FormatFloat(r.Costo, 'f', 2, 64)
			},
		},
		{
			ID: "tipo", Etiqueta: "Tipo", Ordenable: true,
			Accesor: func(r models.ReporteTrabajo) interface{} { return r.TipoMantenimiento },
		},
		{
			ID: "estado", Etiqueta: "Estado",
			Accesor: func(r models.ReporteTrabajo) interface{} { return r.Ejecutado },
			Render: func(_ interface{}, r models.ReporteTrabajo) string {
				if r.Ejecutado {
					return "Ejecutado"
				}
				return "Pendiente"
			},
		},
	}
}

// ListarReportes retorna la página de reportes de trabajo.
func ListarReportes(ctx *webctx.Context, pageStr, sizeStr string) (*internaldto.PageDTO[models.ReporteTrabajo], error) {
	page, size := internalhelpers.ParsePageSize(pageStr, sizeStr)
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(size))

	headers := internalhelpers.CopyRequestHeaders(ctx)
	reportes, meta, err := clients.BienesCRUD().ListReportes(headers, query)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error consultando reportes de trabajo")
	}

	total := int64(len(reportes))
	if meta != nil {
		total = int64(meta.Total)
	}
	return &internaldto.PageDTO[models.ReporteTrabajo]{
		Items: reportes,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

// TablaReportes compone la tabla de reportes.
func TablaReportes(ctx *webctx.Context, busqueda, pageStr, sizeStr string) (tabla.Resultado, error) {
	page, size := internalhelpers.ParsePageSize(pageStr, sizeStr)
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(size))

	headers := internalhelpers.CopyRequestHeaders(ctx)
	reportes, meta, err := clients.BienesCRUD().ListReportes(headers, query)
	if err != nil {
		return tabla.Resultado{}, roothelpers.AsAppError(err, "error consultando reportes de trabajo")
	}

	columnas := columnasReportes()
	var resultado tabla.Resultado
	if meta != nil {
		resultado = tabla.ComponerExterna(reportes, columnas, tabla.Externa{
			Pagina:       page,
			TotalPaginas: meta.TotalPaginas,
			TotalItems:   meta.Total,
		})
	} else {
		resultado = tabla.Componer(reportes, columnas, tabla.Opciones{
			Busqueda: busqueda,
			Pagina:   page,
			Tamano:   size,
		})
	}
	resultado.Menu = tabla.ArmarMenu(nil, true, true)
	resultado.SugerirCrear = resultado.Vacia
	return resultado, nil
}

// ObtenerReporte consulta un reporte por id.
func ObtenerReporte(ctx *webctx.Context, id int64) (*models.ReporteTrabajo, error) {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	reporte, err := clients.BienesCRUD().GetReporte(headers, id)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return nil, roothelpers.NewAppError(http.StatusNotFound, "reporte de trabajo no encontrado", err)
		}
		return nil, roothelpers.AsAppError(err, "error consultando el reporte de trabajo")
	}
	return reporte, nil
}

func validarReporte(req internaldto.ReporteCrear) (string, error) {
	tipo, ok := models.TipoMantenimientoValido(req.TipoMantenimiento)
	if !ok {
		return "", roothelpers.NewAppError(http.StatusBadRequest, "tipo de mantenimiento inválido", nil)
	}
	if strings.TrimSpace(req.TrabajoRealizado) == "" {
		return "", roothelpers.NewAppError(http.StatusBadRequest, "trabajo realizado requerido", nil)
	}
	if req.Horas < 0 || req.Costo < 0 {
		return "", roothelpers.NewAppError(http.StatusBadRequest, "horas y costo no pueden ser negativos", nil)
	}
	if err := internalhelpers.ValidarImagenDataURL(req.Firma); err != nil {
		return "", err
	}
	return tipo, nil
}

// CrearReporte registra el reporte de ejecución de una orden de trabajo. El
// código se genera en el servidor y el técnico/instructor se copian de la
// orden.
func CrearReporte(ctx *webctx.Context, ordenID int64, req internaldto.ReporteCrear) (*models.ReporteTrabajo, error) {
	tipo, err := validarReporte(req)
	if err != nil {
		return nil, err
	}

	orden, err := ObtenerOrden(ctx, ordenID)
	if err != nil {
		return nil, err
	}

	reporte := models.ReporteTrabajo{
		Codigo:            GenerarCodigoReporte(time.Now()),
		OrdenId:           orden.Id,
		TecnicoId:         orden.TecnicoId,
		InstructorId:      orden.InstructorId,
		Horas:             req.Horas,
		Costo:             req.Costo,
		TrabajoRealizado:  strings.TrimSpace(req.TrabajoRealizado),
		Respuesta:         strings.TrimSpace(req.Respuesta),
		Observaciones:     strings.TrimSpace(req.Observaciones),
		TipoMantenimiento: tipo,
		RepuestosUsados:   req.RepuestosUsados,
		Ejecutado:         req.Ejecutado,
		Firma:             req.Firma,
		Cerrado:           false,
	}

	headers := internalhelpers.CopyRequestHeaders(ctx)
	created, err := clients.BienesCRUD().CreateReporte(headers, reporte)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error registrando el reporte de trabajo")
	}
	return created, nil
}

// EditarReporte aplica cambios parciales a un reporte existente.
func EditarReporte(ctx *webctx.Context, id int64, req internaldto.ReporteEditar) (*models.ReporteTrabajo, error) {
	if req.Horas != nil && *req.Horas < 0 {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "horas no puede ser negativo", nil)
	}
	if req.Costo != nil && *req.Costo < 0 {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "costo no puede ser negativo", nil)
	}
	if req.TrabajoRealizado != nil && strings.TrimSpace(*req.TrabajoRealizado) == "" {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "trabajo realizado no puede quedar vacío", nil)
	}

	headers := internalhelpers.CopyRequestHeaders(ctx)
	updated, err := clients.BienesCRUD().PatchReporte(headers, id, req)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return nil, roothelpers.NewAppError(http.StatusNotFound, "reporte de trabajo no encontrado", err)
		}
		return nil, roothelpers.AsAppError(err, "error actualizando el reporte de trabajo")
	}
	return updated, nil
}

// EliminarReporte borra un reporte de trabajo.
func EliminarReporte(ctx *webctx.Context, id int64) error {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	if err := clients.BienesCRUD().DeleteReporte(headers, id); err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return roothelpers.NewAppError(http.StatusNotFound, "reporte de trabajo no encontrado", err)
		}
		return roothelpers.AsAppError(err, "error eliminando el reporte de trabajo")
	}
	return nil
}
