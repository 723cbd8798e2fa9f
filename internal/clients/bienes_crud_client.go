// Package clients agrupa los accesos tipados a bienes_crud: un método por
// recurso REST, cada uno con exactamente una llamada de red por invocación.
package clients

import (
	"encoding/json"
	"net/url"
	"strconv"
	"sync"
	"time"

	roothelpers "github.com/sigebi/bienes_mid/helpers"
	"github.com/sigebi/bienes_mid/models"
	rootservices "github.com/sigebi/bienes_mid/services"
)

// Rutas de recurso en bienes_crud. "word-orden" conserva el nombre histórico
// del backend, con todo y su error de ortografía.
const (
	recursoBienes      = "assets"
	recursoCategorias  = "categories"
	recursoUsuarios    = "users"
	recursoRoles       = "rol"
	recursoSolicitudes = "application-maintenance"
	recursoOrdenes     = "word-orden"
	recursoReportes    = "work-report"
	recursoConfig      = "configuration"
)

// BienesCRUDClient envuelve las operaciones contra bienes_crud que requiere el MID.
type BienesCRUDClient struct{}

var (
	crudClient     *BienesCRUDClient
	crudClientOnce sync.Once
)

// BienesCRUD retorna el cliente singleton listo para llamar al CRUD.
func BienesCRUD() *BienesCRUDClient {
	crudClientOnce.Do(func() {
		crudClient = &BienesCRUDClient{}
	})
	return crudClient
}

func (c *BienesCRUDClient) baseURL() string {
	return rootservices.GetConfig().BienesCRUDBaseURL
}

func (c *BienesCRUDClient) timeout() time.Duration {
	return rootservices.GetConfig().RequestTimeout
}

// ---------- helpers genéricos ----------

func listar[T any](c *BienesCRUDClient, headers map[string]string, recurso string, query url.Values) ([]T, *roothelpers.ListaMeta, error) {
	endpoint := rootservices.BuildURL(c.baseURL(), recurso)
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	raw, err := roothelpers.GetListaRaw(endpoint, headers, c.timeout())
	if err != nil {
		return nil, nil, err
	}
	items, meta, err := roothelpers.DecodeLista(raw)
	if err != nil {
		return nil, nil, err
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		var decoded T
		if err := json.Unmarshal(item, &decoded); err != nil {
			return nil, nil, err
		}
		out = append(out, decoded)
	}
	return out, meta, nil
}

func obtener[T any](c *BienesCRUDClient, headers map[string]string, elems ...string) (*T, error) {
	endpoint := rootservices.BuildURL(c.baseURL(), elems...)
	var out T
	if err := roothelpers.DoJSONWithHeaders("GET", endpoint, headers, nil, &out, c.timeout(), true); err != nil {
		return nil, err
	}
	return &out, nil
}

func enviar[T any](c *BienesCRUDClient, headers map[string]string, method string, payload interface{}, elems ...string) (*T, error) {
	endpoint := rootservices.BuildURL(c.baseURL(), elems...)
	var out T
	if err := roothelpers.DoJSONWithHeaders(method, endpoint, headers, payload, &out, c.timeout(), true); err != nil {
		return nil, err
	}
	return &out, nil
}

func eliminar(c *BienesCRUDClient, headers map[string]string, elems ...string) error {
	endpoint := rootservices.BuildURL(c.baseURL(), elems...)
	return roothelpers.DoJSONWithHeaders("DELETE", endpoint, headers, nil, nil, c.timeout(), true)
}

// ---------- bienes ----------

// ListBienes consulta el listado de bienes con los parámetros de paginación dados.
func (c *BienesCRUDClient) ListBienes(headers map[string]string, query url.Values) ([]models.Bien, *roothelpers.ListaMeta, error) {
	return listar[models.Bien](c, headers, recursoBienes, query)
}

// GetBien consulta un bien por id.
func (c *BienesCRUDClient) GetBien(headers map[string]string, id int64) (*models.Bien, error) {
	return obtener[models.Bien](c, headers, recursoBienes, strconv.FormatInt(id, 10))
}

// GetBienPorPlaca busca un bien por su código de inventario.
func (c *BienesCRUDClient) GetBienPorPlaca(headers map[string]string, placa string) (*models.Bien, error) {
	query := url.Values{}
	query.Set("placa", placa)
	query.Set("limit", "1")

	bienes, _, err := listar[models.Bien](c, headers, recursoBienes, query)
	if err != nil {
		return nil, err
	}
	if len(bienes) == 0 {
		return nil, nil
	}
	return &bienes[0], nil
}

// CreateBien registra un bien nuevo.
func (c *BienesCRUDClient) CreateBien(headers map[string]string, bien models.Bien) (*models.Bien, error) {
	return enviar[models.Bien](c, headers, "POST", bien, recursoBienes)
}

// UpdateBien reemplaza un bien existente.
func (c *BienesCRUDClient) UpdateBien(headers map[string]string, id int64, bien models.Bien) (*models.Bien, error) {
	return enviar[models.Bien](c, headers, "PUT", bien, recursoBienes, strconv.FormatInt(id, 10))
}

// PatchBienEstado cambia únicamente el flag activo del bien.
func (c *BienesCRUDClient) PatchBienEstado(headers map[string]string, id int64, activo bool) (*models.Bien, error) {
	payload := map[string]interface{}{"activo": activo}
	return enviar[models.Bien](c, headers, "PATCH", payload, recursoBienes, strconv.FormatInt(id, 10))
}

// DeleteBien elimina un bien.
func (c *BienesCRUDClient) DeleteBien(headers map[string]string, id int64) error {
	return eliminar(c, headers, recursoBienes, strconv.FormatInt(id, 10))
}

// ---------- categorías ----------

// ListCategorias consulta todas las categorías.
func (c *BienesCRUDClient) ListCategorias(headers map[string]string) ([]models.Categoria, error) {
	items, _, err := listar[models.Categoria](c, headers, recursoCategorias, url.Values{})
	return items, err
}

// GetCategoria consulta una categoría por id.
func (c *BienesCRUDClient) GetCategoria(headers map[string]string, id int64) (*models.Categoria, error) {
	return obtener[models.Categoria](c, headers, recursoCategorias, strconv.FormatInt(id, 10))
}

// CreateCategoria registra una categoría.
func (c *BienesCRUDClient) CreateCategoria(headers map[string]string, cat models.Categoria) (*models.Categoria, error) {
	return enviar[models.Categoria](c, headers, "POST", cat, recursoCategorias)
}

// UpdateCategoria reemplaza una categoría (las listas viajan completas).
func (c *BienesCRUDClient) UpdateCategoria(headers map[string]string, id int64, cat models.Categoria) (*models.Categoria, error) {
	return enviar[models.Categoria](c, headers, "PUT", cat, recursoCategorias, strconv.FormatInt(id, 10))
}

// DeleteCategoria elimina una categoría.
func (c *BienesCRUDClient) DeleteCategoria(headers map[string]string, id int64) error {
	return eliminar(c, headers, recursoCategorias, strconv.FormatInt(id, 10))
}

// ---------- usuarios y roles ----------

// ListUsuarios consulta usuarios, opcionalmente filtrados por estado.
func (c *BienesCRUDClient) ListUsuarios(headers map[string]string, estado string) ([]models.Usuario, error) {
	query := url.Values{}
	if estado != "" {
		query.Set("estado", estado)
	}
	items, _, err := listar[models.Usuario](c, headers, recursoUsuarios, query)
	return items, err
}

// GetUsuario consulta un usuario por id.
func (c *BienesCRUDClient) GetUsuario(headers map[string]string, id int64) (*models.Usuario, error) {
	return obtener[models.Usuario](c, headers, recursoUsuarios, strconv.FormatInt(id, 10))
}

// CreateUsuario registra un usuario.
func (c *BienesCRUDClient) CreateUsuario(headers map[string]string, payload interface{}) (*models.Usuario, error) {
	return enviar[models.Usuario](c, headers, "POST", payload, recursoUsuarios)
}

// UpdateUsuario reemplaza un usuario.
func (c *BienesCRUDClient) UpdateUsuario(headers map[string]string, id int64, payload interface{}) (*models.Usuario, error) {
	return enviar[models.Usuario](c, headers, "PUT", payload, recursoUsuarios, strconv.FormatInt(id, 10))
}

// PatchUsuario aplica un cambio parcial (activación desde control de acceso).
func (c *BienesCRUDClient) PatchUsuario(headers map[string]string, id int64, payload interface{}) (*models.Usuario, error) {
	return enviar[models.Usuario](c, headers, "PATCH", payload, recursoUsuarios, strconv.FormatInt(id, 10))
}

// DeleteUsuario elimina un usuario.
func (c *BienesCRUDClient) DeleteUsuario(headers map[string]string, id int64) error {
	return eliminar(c, headers, recursoUsuarios, strconv.FormatInt(id, 10))
}

// ListRoles consulta el catálogo de roles.
func (c *BienesCRUDClient) ListRoles(headers map[string]string) ([]models.Rol, error) {
	items, _, err := listar[models.Rol](c, headers, recursoRoles, url.Values{})
	return items, err
}

// ---------- solicitudes de mantenimiento ----------

// ListSolicitudes consulta solicitudes con los filtros dados.
func (c *BienesCRUDClient) ListSolicitudes(headers map[string]string, query url.Values) ([]models.Solicitud, *roothelpers.ListaMeta, error) {
	return listar[models.Solicitud](c, headers, recursoSolicitudes, query)
}

// GetSolicitud consulta una solicitud por id.
func (c *BienesCRUDClient) GetSolicitud(headers map[string]string, id int64) (*models.Solicitud, error) {
	return obtener[models.Solicitud](c, headers, recursoSolicitudes, strconv.FormatInt(id, 10))
}

// GetSolicitudPorSeguimiento busca una solicitud por su número de seguimiento.
func (c *BienesCRUDClient) GetSolicitudPorSeguimiento(headers map[string]string, numero string) (*models.Solicitud, error) {
	query := url.Values{}
	query.Set("numeroSeguimiento", numero)
	query.Set("limit", "1")

	solicitudes, _, err := listar[models.Solicitud](c, headers, recursoSolicitudes, query)
	if err != nil {
		return nil, err
	}
	if len(solicitudes) == 0 {
		return nil, nil
	}
	return &solicitudes[0], nil
}

// CreateSolicitud registra una solicitud de mantenimiento.
func (c *BienesCRUDClient) CreateSolicitud(headers map[string]string, solicitud models.Solicitud) (*models.Solicitud, error) {
	return enviar[models.Solicitud](c, headers, "POST", solicitud, recursoSolicitudes)
}

// DeleteSolicitud elimina una solicitud.
func (c *BienesCRUDClient) DeleteSolicitud(headers map[string]string, id int64) error {
	return eliminar(c, headers, recursoSolicitudes, strconv.FormatInt(id, 10))
}

// ---------- órdenes de trabajo ----------

// ListOrdenes consulta órdenes de trabajo.
func (c *BienesCRUDClient) ListOrdenes(headers map[string]string, query url.Values) ([]models.OrdenTrabajo, *roothelpers.ListaMeta, error) {
	return listar[models.OrdenTrabajo](c, headers, recursoOrdenes, query)
}

// GetOrden consulta una orden por id.
func (c *BienesCRUDClient) GetOrden(headers map[string]string, id int64) (*models.OrdenTrabajo, error) {
	return obtener[models.OrdenTrabajo](c, headers, recursoOrdenes, strconv.FormatInt(id, 10))
}

// CreateOrden registra una orden de trabajo sobre una solicitud.
func (c *BienesCRUDClient) CreateOrden(headers map[string]string, orden models.OrdenTrabajo) (*models.OrdenTrabajo, error) {
	return enviar[models.OrdenTrabajo](c, headers, "POST", orden, recursoOrdenes)
}

// DeleteOrden elimina una orden.
func (c *BienesCRUDClient) DeleteOrden(headers map[string]string, id int64) error {
	return eliminar(c, headers, recursoOrdenes, strconv.FormatInt(id, 10))
}

// ---------- reportes de trabajo ----------

// ListReportes consulta reportes de trabajo.
func (c *BienesCRUDClient) ListReportes(headers map[string]string, query url.Values) ([]models.ReporteTrabajo, *roothelpers.ListaMeta, error) {
	return listar[models.ReporteTrabajo](c, headers, recursoReportes, query)
}

// GetReporte consulta un reporte por id.
func (c *BienesCRUDClient) GetReporte(headers map[string]string, id int64) (*models.ReporteTrabajo, error) {
	return obtener[models.ReporteTrabajo](c, headers, recursoReportes, strconv.FormatInt(id, 10))
}

// CreateReporte registra el reporte de ejecución de una orden.
func (c *BienesCRUDClient) CreateReporte(headers map[string]string, reporte models.ReporteTrabajo) (*models.ReporteTrabajo, error) {
	return enviar[models.ReporteTrabajo](c, headers, "POST", reporte, recursoReportes)
}

// PatchReporte aplica una edición parcial sobre un reporte.
func (c *BienesCRUDClient) PatchReporte(headers map[string]string, id int64, payload interface{}) (*models.ReporteTrabajo, error) {
	return enviar[models.ReporteTrabajo](c, headers, "PATCH", payload, recursoReportes, strconv.FormatInt(id, 10))
}

// DeleteReporte elimina un reporte.
func (c *BienesCRUDClient) DeleteReporte(headers map[string]string, id int64) error {
	return eliminar(c, headers, recursoReportes, strconv.FormatInt(id, 10))
}

// ---------- configuración ----------

// GetConfiguracion consulta el registro único de configuración.
func (c *BienesCRUDClient) GetConfiguracion(headers map[string]string) (*models.ConfiguracionSistema, error) {
	return obtener[models.ConfiguracionSistema](c, headers, recursoConfig)
}

// UpsertConfiguracion guarda la configuración de comunicaciones.
func (c *BienesCRUDClient) UpsertConfiguracion(headers map[string]string, config models.ConfiguracionSistema) (*models.ConfiguracionSistema, error) {
	return enviar[models.ConfiguracionSistema](c, headers, "PUT", config, recursoConfig)
}
