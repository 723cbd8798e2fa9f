package services

import (
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	webctx "github.com/beego/beego/v2/server/web/context"

	roothelpers "github.com/sigebi/bienes_mid/helpers"
	"github.com/sigebi/bienes_mid/internal/clients"
	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
	"github.com/sigebi/bienes_mid/models"
)

// ===========================
// Cache simple en memoria
// ===========================

var (
	catalogoTTL = 10 * time.Minute

	cacheCategorias struct {
		mu        sync.RWMutex
		expiresAt time.Time
		data      []internaldto.OpcionDTO
	}
)

// ListarCategorias retorna todas las categorías del CRUD, sin caché: la
// pantalla de categorías edita sobre esta lista y siempre se recarga completa.
func ListarCategorias(ctx *webctx.Context) ([]models.Categoria, error) {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	categorias, err := clients.BienesCRUD().ListCategorias(headers)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error consultando categorías")
	}
	return categorias, nil
}

// CatalogoCategorias retorna el par id/nombre de las categorías activas para
// los selects del panel, con caché de corta vida.
func CatalogoCategorias(ctx *webctx.Context) ([]internaldto.OpcionDTO, error) {
	cacheCategorias.mu.RLock()
	if time.Now().Before(cacheCategorias.expiresAt) && cacheCategorias.data != nil {
		data := cacheCategorias.data
		cacheCategorias.mu.RUnlock()
		return data, nil
	}
	cacheCategorias.mu.RUnlock()

	categorias, err := ListarCategorias(ctx)
	if err != nil {
		return nil, err
	}

	opciones := make([]internaldto.OpcionDTO, 0, len(categorias))
	for _, cat := range categorias {
		if !cat.Estado {
			continue
		}
		opciones = append(opciones, internaldto.OpcionDTO{Id: cat.Id, Nombre: cat.Nombre})
	}
	sort.Slice(opciones, func(i, j int) bool {
		return strings.ToLower(opciones[i].Nombre) < strings.ToLower(opciones[j].Nombre)
	})

	cacheCategorias.mu.Lock()
	cacheCategorias.data = opciones
	cacheCategorias.expiresAt = time.Now().Add(catalogoTTL)
	cacheCategorias.mu.Unlock()

	return opciones, nil
}

// invalidarCatalogoCategorias fuerza recarga tras una mutación.
func invalidarCatalogoCategorias() {
	cacheCategorias.mu.Lock()
	cacheCategorias.expiresAt = time.Time{}
	cacheCategorias.data = nil
	cacheCategorias.mu.Unlock()
}

func validarCategoria(cat models.Categoria) error {
	if strings.TrimSpace(cat.Nombre) == "" {
		return roothelpers.NewAppError(http.StatusBadRequest, "nombre requerido", nil)
	}
	return nil
}

// CrearCategoria valida y registra una categoría. Las listas de variables,
// accesorios y especificaciones llegan ya armadas por el formulario.
func CrearCategoria(ctx *webctx.Context, cat models.Categoria) (*models.Categoria, error) {
	if err := validarCategoria(cat); err != nil {
		return nil, err
	}
	normalizarListasCategoria(&cat)

	headers := internalhelpers.CopyRequestHeaders(ctx)
	created, err := clients.BienesCRUD().CreateCategoria(headers, cat)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error creando la categoría")
	}
	invalidarCatalogoCategorias()
	return created, nil
}

// ActualizarCategoria reemplaza la categoría completa, listas incluidas.
func ActualizarCategoria(ctx *webctx.Context, id int64, cat models.Categoria) (*models.Categoria, error) {
	if err := validarCategoria(cat); err != nil {
		return nil, err
	}
	normalizarListasCategoria(&cat)

	headers := internalhelpers.CopyRequestHeaders(ctx)
	updated, err := clients.BienesCRUD().UpdateCategoria(headers, id, cat)
	if err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return nil, roothelpers.NewAppError(http.StatusNotFound, "categoría no encontrada", err)
		}
		return nil, roothelpers.AsAppError(err, "error actualizando la categoría")
	}
	invalidarCatalogoCategorias()
	return updated, nil
}

// EliminarCategoria borra una categoría.
func EliminarCategoria(ctx *webctx.Context, id int64) error {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	if err := clients.BienesCRUD().DeleteCategoria(headers, id); err != nil {
		if roothelpers.IsHTTPError(err, http.StatusNotFound) {
			return roothelpers.NewAppError(http.StatusNotFound, "categoría no encontrada", err)
		}
		return roothelpers.AsAppError(err, "error eliminando la categoría")
	}
	invalidarCatalogoCategorias()
	return nil
}

// normalizarListasCategoria limpia entradas vacías y garantiza listas no nulas.
func normalizarListasCategoria(cat *models.Categoria) {
	cat.VariablesOperacion = limpiarLista(cat.VariablesOperacion)
	cat.Accesorios = limpiarLista(cat.Accesorios)
	cat.Especificaciones = limpiarLista(cat.Especificaciones)
}

func limpiarLista(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
