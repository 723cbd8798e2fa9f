package dto

// SolicitudCrear es el payload de una solicitud de mantenimiento. Cuando llega
// con token, nombre y teléfono se prefijan desde los claims si vienen vacíos.
type SolicitudCrear struct {
	NombreSolicitante   string `json:"nombreSolicitante"`
	TelefonoSolicitante string `json:"telefonoSolicitante"`
	Placa               string `json:"placa"`
	Descripcion         string `json:"descripcion"`
	TipoMantenimiento   string `json:"tipoMantenimiento"`
}

// OrdenCrear programa una orden de trabajo sobre una solicitud existente.
// El instructor es el usuario autenticado; el radicado lo genera el servidor.
type OrdenCrear struct {
	TecnicoId   int64  `json:"tecnicoId"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
	Prioridad   string `json:"prioridad"`
}

// ReporteCrear registra la ejecución de una orden de trabajo.
type ReporteCrear struct {
	Horas             float64 `json:"horas"`
	Costo             float64 `json:"costo"`
	TrabajoRealizado  string  `json:"trabajoRealizado"`
	Respuesta         string  `json:"respuesta,omitempty"`
	Observaciones     string  `json:"observaciones,omitempty"`
	TipoMantenimiento string  `json:"tipoMantenimiento"`
	RepuestosUsados   bool    `json:"repuestosUsados"`
	Ejecutado         bool    `json:"ejecutado"`
	Firma             string  `json:"firma,omitempty"`
}

// ReporteEditar son los campos mutables de un reporte (PATCH).
type ReporteEditar struct {
	Horas            *float64 `json:"horas,omitempty"`
	Costo            *float64 `json:"costo,omitempty"`
	TrabajoRealizado *string  `json:"trabajoRealizado,omitempty"`
	Respuesta        *string  `json:"respuesta,omitempty"`
	Observaciones    *string  `json:"observaciones,omitempty"`
	Cerrado          *bool    `json:"cerrado,omitempty"`
}
