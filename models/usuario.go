package models

// Rol describe un rol del sistema.
type Rol struct {
	Id          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// Usuario es la cuenta administrada desde el panel. El estado es cerrado:
// activo, pendiente o inactivo (ver estados.go). Los usuarios pendientes se
// activan desde control de acceso asignando rol y cargo.
type Usuario struct {
	Id              int64  `json:"id"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido,omitempty"`
	Correo          string `json:"correo"`
	Telefono        string `json:"telefono,omitempty"`
	TipoDocumento   string `json:"tipoDocumento"`
	NumeroDocumento string `json:"numeroDocumento"`
	RolId           int64  `json:"rolId,omitempty"`
	Rol             string `json:"rol,omitempty"`
	Cargo           string `json:"cargo,omitempty"`
	Estado          string `json:"estado"`
	FechaCreacion   string `json:"createdAt,omitempty"`
}
