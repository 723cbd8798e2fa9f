package services

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	webctx "github.com/beego/beego/v2/server/web/context"

	roothelpers "github.com/sigebi/bienes_mid/helpers"
	"github.com/sigebi/bienes_mid/internal/clients"
	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	"github.com/sigebi/bienes_mid/internal/tabla"
	"github.com/sigebi/bienes_mid/models"
	rootservices "github.com/sigebi/bienes_mid/services"
)

// columnasBienes define la tabla de bienes del panel. El render de estado y
// fecha tiene precedencia sobre el valor crudo.
func columnasBienes() []tabla.Columna[models.Bien] {
	return []tabla.Columna[models.Bien]{
		{
			ID: "nombre", Etiqueta: "Nombre", Ordenable: true,
			Accesor: func(b models.Bien) interface{} { return b.Nombre },
		},
		{
			ID: "ubicacion", Etiqueta: "Ubicación", Ordenable: true,
			Accesor: func(b models.Bien) interface{} { return b.Ubicacion },
		},
		{
			ID: "placa", Etiqueta: "Placa",
			Accesor: func(b models.Bien) interface{} { return b.Placa },
		},
		{
			ID: "fechaAdquisicion", Etiqueta: "Adquisición", Ordenable: true,
			Accesor: func(b models.Bien) interface{} { return b.FechaAdquisicion },
			Render: func(valor interface{}, _ models.Bien) string {
				if t := ParseFecha(valor.(string)); !t.IsZero() {
					return t.Format("02/01/2006")
				}
				return valor.(string)
			},
		},
		{
			ID: "estado", Etiqueta: "Estado",
			Accesor: func(b models.Bien) interface{} { return b.Activo },
			Render: func(valor interface{}, _ models.Bien) string {
				if activo, ok := valor.(bool); ok && activo {
					return "Activo"
				}
				return "Inactivo"
			},
		},
	}
}

// ListarBienes retorna una página de bienes. Si bienes_crud responde con
// metadata de paginación se respeta tal cual; si responde un arreglo plano la
// página se arma localmente.
func ListarBienes(ctx *webctx.Context, pageStr, sizeStr string) (internaldto.PageDTO[models.Bien], error) {
	page, size := internalhelpers.ParsePageSize(pageStr, sizeStr)
	headers := internalhelpers.CopyRequestHeaders(ctx)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(size))

	bienes, meta, err := clients.BienesCRUD().ListBienes(headers, query)
	if err != nil {
		return internaldto.PageDTO[models.Bien]{}, roothelpers.AsAppError(err, "error consultando bienes")
	}

	if meta != nil {
		return internaldto.PageDTO[models.Bien]{
			Items: bienes,
			Page:  meta.Page,
			Size:  meta.Limit,
			Total: int64(meta.Total),
		}, nil
	}
	return internaldto.PageDTO[models.Bien]{
		Items: bienes,
		Page:  page,
		Size:  size,
		Total: int64(len(bienes)),
	}, nil
}

// TablaBienes compone la vista de tabla. El modo lo decide la respuesta del
// CRUD: con metadata de paginación la tabla delega (modo externo); con un
// arreglo plano busca, ordena y recorta en memoria (modo interno).
func TablaBienes(ctx *webctx.Context, busqueda, ordenarPor, orden, pageStr, sizeStr string) (tabla.Resultado, error) {
	page, size := internalhelpers.ParsePageSize(pageStr, sizeStr)
	headers := internalhelpers.CopyRequestHeaders(ctx)
	columnas := columnasBienes()

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(size))
	if q := strings.TrimSpace(busqueda); q != "" {
		query.Set("q", q)
	}

	bienes, meta, err := clients.BienesCRUD().ListBienes(headers, query)
	if err != nil {
		return tabla.Resultado{}, roothelpers.AsAppError(err, "error consultando bienes")
	}

	var resultado tabla.Resultado
	if meta != nil {
		resultado = tabla.ComponerExterna(bienes, columnas, tabla.Externa{
			Pagina:       meta.Page,
			TotalPaginas: meta.TotalPaginas,
			TotalItems:   meta.Total,
		})
	} else {
		resultado = tabla.Componer(bienes, columnas, tabla.Opciones{
			Busqueda:    busqueda,
			OrdenarPor:  ordenarPor,
			Descendente: strings.EqualFold(orden, "desc"),
			Pagina:      page,
			Tamano:      size,
		})
	}

	resultado.Menu = tabla.ArmarMenu([]tabla.Accion{
		{ID: "ver", Etiqueta: "Ver detalle"},
		{ID: "estado", Etiqueta: "Cambiar estado"},
	}, true, true)
	resultado.SugerirCrear = resultado.Vacia
	return resultado, nil
}

// ObtenerBien consulta un bien por id.
func ObtenerBien(ctx *webctx.Context, id int64) (*models.Bien, error) {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	bien, err := clients.BienesCRUD().GetBien(headers, id)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return nil, roothelpers.NewAppError(http.StatusNotFound, "bien no encontrado", err)
		}
		return nil, roothelpers.AsAppError(err, "error consultando el bien")
	}
	return bien, nil
}

// ObtenerBienPorPlaca busca un bien por código de inventario. Es la consulta
// del formulario público de solicitudes, por eso autentica con el token de
// servicio y no con el del usuario.
func ObtenerBienPorPlaca(ctx *webctx.Context, placa string) (*models.Bien, error) {
	trimmed := strings.TrimSpace(placa)
	if trimmed == "" {
		return nil, roothelpers.NewAppError(http.StatusBadRequest, "placa requerida", nil)
	}

	headers := rootservices.AddServiceAuth(nil)
	bien, err := clients.BienesCRUD().GetBienPorPlaca(headers, trimmed)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error consultando el bien")
	}
	if bien == nil {
		return nil, roothelpers.NewAppError(http.StatusNotFound, "no existe un bien con esa placa", nil)
	}
	return bien, nil
}

// validarBien aplica las validaciones de formulario antes de tocar la red.
func validarBien(bien models.Bien) error {
	if strings.TrimSpace(bien.Nombre) == "" {
		return roothelpers.NewAppError(http.StatusBadRequest, "nombre requerido", nil)
	}
	if strings.TrimSpace(bien.Ubicacion) == "" {
		return roothelpers.NewAppError(http.StatusBadRequest, "ubicacion requerida", nil)
	}
	if strings.TrimSpace(bien.FechaAdquisicion) == "" {
		return roothelpers.NewAppError(http.StatusBadRequest, "fechaAdquisicion requerida", nil)
	}
	if ParseFecha(bien.FechaAdquisicion).IsZero() {
		return roothelpers.NewAppError(http.StatusBadRequest, "fechaAdquisicion inválida", nil)
	}
	return internalhelpers.ValidarImagenDataURL(bien.Imagen)
}

// CrearBien valida y registra un bien.
func CrearBien(ctx *webctx.Context, bien models.Bien) (*models.Bien, error) {
	if err := validarBien(bien); err != nil {
		return nil, err
	}
	headers := internalhelpers.CopyRequestHeaders(ctx)
	created, err := clients.BienesCRUD().CreateBien(headers, bien)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error creando el bien")
	}
	return created, nil
}

// ActualizarBien valida y reemplaza un bien existente.
func ActualizarBien(ctx *webctx.Context, id int64, bien models.Bien) (*models.Bien, error) {
	if err := validarBien(bien); err != nil {
		return nil, err
	}
	headers := internalhelpers.CopyRequestHeaders(ctx)
	updated, err := clients.BienesCRUD().UpdateBien(headers, id, bien)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return nil, roothelpers.NewAppError(http.StatusNotFound, "bien no encontrado", err)
		}
		return nil, roothelpers.AsAppError(err, "error actualizando el bien")
	}
	return updated, nil
}

// CambiarEstadoBien invierte el flag activo vía PATCH y recarga la lista
// completa, que es la política de refresco del panel tras toda mutación.
func CambiarEstadoBien(ctx *webctx.Context, id int64) ([]models.Bien, error) {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	crud := clients.BienesCRUD()

	bien, err := crud.GetBien(headers, id)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return nil, roothelpers.NewAppError(http.StatusNotFound, "bien no encontrado", err)
		}
		return nil, roothelpers.AsAppError(err, "error consultando el bien")
	}

	if _, err := crud.PatchBienEstado(headers, id, !bien.Activo); err != nil {
		return nil, roothelpers.AsAppError(err, "error cambiando el estado del bien")
	}

	query := url.Values{}
	query.Set("limit", "0")
	bienes, _, err := crud.ListBienes(headers, query)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error recargando bienes")
	}
	return bienes, nil
}

// EliminarBien borra un bien.
func EliminarBien(ctx *webctx.Context, id int64) error {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	if err := clients.BienesCRUD().DeleteBien(headers, id); err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return roothelpers.NewAppError(http.StatusNotFound, "bien no encontrado", err)
		}
		return roothelpers.AsAppError(err, "error eliminando el bien")
	}
	return nil
}

// ExportarBienesCSV descarga todos los bienes y los serializa como CSV.
func ExportarBienesCSV(ctx *webctx.Context) (string, error) {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	query := url.Values{}
	query.Set("limit", "0")

	bienes, _, err := clients.BienesCRUD().ListBienes(headers, query)
	if err != nil {
		return "", roothelpers.AsAppError(err, "error consultando bienes")
	}
	csv, err := internalhelpers.BienesACSV(bienes)
	if err != nil {
		return "", roothelpers.AsAppError(err, "error generando CSV")
	}
	return csv, nil
}

// ResultadoImportacion resume una importación masiva de bienes.
type ResultadoImportacion struct {
	Creados int                          `json:"creados"`
	Fallos  []internalhelpers.ErrorFilaCSV `json:"fallos"`
}

// ImportarBienesCSV crea un bien por cada fila válida del CSV. Los fallos por
// fila (parseo o rechazo del CRUD) se acumulan sin abortar el lote.
func ImportarBienesCSV(ctx *webctx.Context, r io.Reader) (ResultadoImportacion, error) {
	bienes, fallos, err := internalhelpers.CSVABienes(r)
	if err != nil {
		return ResultadoImportacion{}, roothelpers.NewAppError(http.StatusBadRequest, "CSV inválido", err)
	}

	headers := internalhelpers.CopyRequestHeaders(ctx)
	crud := clients.BienesCRUD()

	resultado := ResultadoImportacion{Fallos: fallos}
	if resultado.Fallos == nil {
		resultado.Fallos = []internalhelpers.ErrorFilaCSV{}
	}
	for _, fila := range bienes {
		if _, err := crud.CreateBien(headers, fila.Bien); err != nil {
			resultado.Fallos = append(resultado.Fallos, internalhelpers.ErrorFilaCSV{
				Fila:    fila.Fila,
				Mensaje: err.Error(),
			})
			continue
		}
		resultado.Creados++
	}
	return resultado, nil
}
