package models

// Categoria clasifica bienes y define sus variables, accesorios y especificaciones.
// Las listas se reemplazan completas en cada edición (el formulario las arma
// agregando/quitando por índice antes de enviar).
type Categoria struct {
	Id                 int64    `json:"id"`
	Nombre             string   `json:"nombre"`
	VariablesOperacion []string `json:"variablesOperacion"`
	Accesorios         []string `json:"accesorios"`
	Especificaciones   []string `json:"especificaciones"`
	Estado             bool     `json:"estado"`
}
