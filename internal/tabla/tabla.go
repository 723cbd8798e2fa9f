// Package tabla implementa la composición genérica de tablas del panel:
// definición de columnas con render propio, búsqueda/orden/paginación en
// memoria o delegación a paginación externa, y menús de acciones por fila.
// El paquete no hace I/O: recibe filas ya cargadas y produce un DTO listo
// para pintar.
package tabla

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Columna define una columna de la tabla. Render, cuando existe, tiene
// precedencia sobre la representación cruda del valor del accesor.
type Columna[T any] struct {
	ID        string
	Etiqueta  string
	Accesor   func(T) interface{}
	Ordenable bool
	Render    func(valor interface{}, fila T) string
}

// ColumnaDTO es la vista serializable de una columna.
type ColumnaDTO struct {
	ID        string `json:"id"`
	Etiqueta  string `json:"etiqueta"`
	Ordenable bool   `json:"ordenable"`
}

// Fila es una fila ya renderizada, indexada por id de columna.
type Fila map[string]string

// Paginacion describe la posición de la página mostrada. TienePrev/TieneSig
// controlan la habilitación de los botones de navegación.
type Paginacion struct {
	Pagina       int  `json:"pagina"`
	TotalPaginas int  `json:"totalPaginas"`
	TotalItems   int  `json:"totalItems"`
	TienePrev    bool `json:"tienePrev"`
	TieneSig     bool `json:"tieneSig"`
}

// Externa es la metadata de paginación provista por el llamador cuando la
// paginación la resuelve el backend. Su presencia excluye el modo interno:
// la tabla no recorta ni reordena, sólo calcula los flags de borde.
type Externa struct {
	Pagina       int
	TotalPaginas int
	TotalItems   int
}

// Opciones parametriza el modo interno.
type Opciones struct {
	// Busqueda filtra por el accesor de la primera columna únicamente.
	Busqueda string
	// OrdenarPor es el ID de una columna ordenable; vacío conserva el orden de entrada.
	OrdenarPor  string
	Descendente bool
	Pagina      int
	// Tamano es fijo por construcción de la tabla.
	Tamano int
}

// Accion describe una entrada del menú por fila.
type Accion struct {
	ID          string `json:"id"`
	Etiqueta    string `json:"etiqueta"`
	Destructiva bool   `json:"destructiva"`
}

// Menu agrupa las acciones de fila. Las destructivas van separadas para que el
// panel las pinte después del separador y con estilo propio.
type Menu struct {
	Normales     []Accion `json:"normales"`
	Destructivas []Accion `json:"destructivas"`
}

// Resultado es la tabla compuesta.
type Resultado struct {
	Columnas   []ColumnaDTO `json:"columnas"`
	Filas      []Fila       `json:"filas"`
	Paginacion Paginacion   `json:"paginacion"`
	// Vacia indica que no hay datos; SugerirCrear acompaña el estado vacío
	// cuando la entidad admite creación desde la tabla.
	Vacia        bool `json:"vacia"`
	SugerirCrear bool `json:"sugerirCrear,omitempty"`
	Menu         Menu `json:"menu"`
}

// Componer arma la tabla en modo interno: busca, ordena y recorta en memoria.
func Componer[T any](filas []T, columnas []Columna[T], opciones Opciones) Resultado {
	items := filas

	if q := strings.TrimSpace(opciones.Busqueda); q != "" && len(columnas) > 0 {
		items = filtrarPrimeraColumna(items, columnas[0], q)
	}

	if col, ok := columnaOrdenable(columnas, opciones.OrdenarPor); ok {
		items = ordenar(items, col, opciones.Descendente)
	}

	tamano := opciones.Tamano
	if tamano <= 0 {
		tamano = 10
	}
	total := len(items)
	totalPaginas := (total + tamano - 1) / tamano
	if totalPaginas == 0 {
		totalPaginas = 1
	}
	pagina := opciones.Pagina
	if pagina < 1 {
		pagina = 1
	}
	if pagina > totalPaginas {
		pagina = totalPaginas
	}

	desde := (pagina - 1) * tamano
	hasta := desde + tamano
	if desde > total {
		desde = total
	}
	if hasta > total {
		hasta = total
	}
	visibles := items[desde:hasta]

	return Resultado{
		Columnas: columnasDTO(columnas),
		Filas:    renderFilas(visibles, columnas),
		Paginacion: Paginacion{
			Pagina:       pagina,
			TotalPaginas: totalPaginas,
			TotalItems:   total,
			TienePrev:    pagina > 1,
			TieneSig:     pagina < totalPaginas,
		},
		Vacia: total == 0,
	}
}

// ComponerExterna arma la tabla delegando la paginación: las filas llegan ya
// recortadas por el backend y aquí sólo se renderizan y se calculan los
// flags de navegación en los bordes (pagina<=1, pagina>=totalPaginas).
func ComponerExterna[T any](filas []T, columnas []Columna[T], ext Externa) Resultado {
	pagina := ext.Pagina
	if pagina < 1 {
		pagina = 1
	}
	totalPaginas := ext.TotalPaginas
	if totalPaginas < 1 {
		totalPaginas = 1
	}

	return Resultado{
		Columnas: columnasDTO(columnas),
		Filas:    renderFilas(filas, columnas),
		Paginacion: Paginacion{
			Pagina:       pagina,
			TotalPaginas: totalPaginas,
			TotalItems:   ext.TotalItems,
			TienePrev:    pagina > 1,
			TieneSig:     pagina < totalPaginas,
		},
		Vacia: len(filas) == 0 && ext.TotalItems == 0,
	}
}

// ArmarMenu combina acciones propias del llamador con las incorporadas de
// editar/eliminar cuando la entidad las soporta. Las destructivas quedan en
// su propio grupo, después de las normales.
func ArmarMenu(propias []Accion, conEditar, conEliminar bool) Menu {
	menu := Menu{Normales: []Accion{}, Destructivas: []Accion{}}
	if conEditar {
		menu.Normales = append(menu.Normales, Accion{ID: "editar", Etiqueta: "Editar"})
	}
	for _, a := range propias {
		if a.Destructiva {
			menu.Destructivas = append(menu.Destructivas, a)
			continue
		}
		menu.Normales = append(menu.Normales, a)
	}
	if conEliminar {
		menu.Destructivas = append(menu.Destructivas, Accion{ID: "eliminar", Etiqueta: "Eliminar", Destructiva: true})
	}
	return menu
}

func filtrarPrimeraColumna[T any](items []T, col Columna[T], q string) []T {
	needle := strings.ToLower(q)
	out := make([]T, 0, len(items))
	for _, item := range items {
		valor := strings.ToLower(stringify(col.Accesor(item)))
		if strings.Contains(valor, needle) {
			out = append(out, item)
		}
	}
	return out
}

func columnaOrdenable[T any](columnas []Columna[T], id string) (Columna[T], bool) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		var zero Columna[T]
		return zero, false
	}
	for _, col := range columnas {
		if col.ID == trimmed && col.Ordenable {
			return col, true
		}
	}
	var zero Columna[T]
	return zero, false
}

func ordenar[T any](items []T, col Columna[T], descendente bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		menor := comparar(col.Accesor(out[i]), col.Accesor(out[j]))
		if descendente {
			return !menor
		}
		return menor
	})
	return out
}

// comparar ordena numéricamente cuando ambos valores son números y
// lexicográficamente (sin mayúsculas) en el resto de los casos.
func comparar(a, b interface{}) bool {
	na, okA := aFloat(a)
	nb, okB := aFloat(b)
	if okA && okB {
		return na < nb
	}
	return strings.ToLower(stringify(a)) < strings.ToLower(stringify(b))
}

func aFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func renderFilas[T any](items []T, columnas []Columna[T]) []Fila {
	filas := make([]Fila, 0, len(items))
	for _, item := range items {
		fila := make(Fila, len(columnas))
		for _, col := range columnas {
			valor := col.Accesor(item)
			if col.Render != nil {
				fila[col.ID] = col.Render(valor, item)
				continue
			}
			fila[col.ID] = stringify(valor)
		}
		filas = append(filas, fila)
	}
	return filas
}

func columnasDTO[T any](columnas []Columna[T]) []ColumnaDTO {
	out := make([]ColumnaDTO, 0, len(columnas))
	for _, col := range columnas {
		out = append(out, ColumnaDTO{ID: col.ID, Etiqueta: col.Etiqueta, Ordenable: col.Ordenable})
	}
	return out
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
