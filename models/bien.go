package models

// Contacto agrupa los datos de contacto de fabricante o proveedor de un bien.
type Contacto struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono,omitempty"`
	Correo    string `json:"correo,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// Bien es el registro de un bien físico tal como lo entrega bienes_crud.
// El MID no es dueño de este estado: toda mutación viaja al CRUD y las listas
// se recargan completas después de cada cambio.
type Bien struct {
	Id               int64    `json:"id"`
	Nombre           string   `json:"nombre"`
	Ubicacion        string   `json:"ubicacion"`
	FechaAdquisicion string   `json:"fechaAdquisicion"`
	Marca            string   `json:"marca,omitempty"`
	Modelo           string   `json:"modelo,omitempty"`
	Serial           string   `json:"serial,omitempty"`
	Placa            string   `json:"placa,omitempty"`
	Responsable      string   `json:"responsable,omitempty"`
	CategoriaId      int64    `json:"categoriaId,omitempty"`
	Categoria        string   `json:"categoria,omitempty"`
	AmbienteId       int64    `json:"ambienteId,omitempty"`
	Ambiente         string   `json:"ambiente,omitempty"`
	Fabricante       Contacto `json:"fabricante,omitempty"`
	Proveedor        Contacto `json:"proveedor,omitempty"`
	Activo           bool     `json:"activo"`
	// Imagen embebida como data URL base64; opcional y acotada a 5MB.
	Imagen            string `json:"imagen,omitempty"`
	FechaCreacion     string `json:"createdAt,omitempty"`
	FechaModificacion string `json:"updatedAt,omitempty"`
}
