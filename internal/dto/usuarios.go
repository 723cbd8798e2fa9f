package dto

// UsuarioCrear es el payload de alta de usuario desde el panel de administración.
// La clave nunca viaja de vuelta en las respuestas.
type UsuarioCrear struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido,omitempty"`
	Correo          string `json:"correo"`
	Telefono        string `json:"telefono,omitempty"`
	TipoDocumento   string `json:"tipoDocumento"`
	NumeroDocumento string `json:"numeroDocumento"`
	Clave           string `json:"clave"`
	RolId           int64  `json:"rolId,omitempty"`
	Cargo           string `json:"cargo,omitempty"`
}

// ActivarUsuario transiciona un usuario pendiente a activo asignando rol y cargo.
type ActivarUsuario struct {
	RolId int64  `json:"rolId"`
	Cargo string `json:"cargo"`
}

// ProbarConfiguracion es el payload del botón de prueba de comunicación.
type ProbarConfiguracion struct {
	Destino string `json:"destino"`
}
