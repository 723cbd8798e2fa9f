package models

// Solicitud es una solicitud de mantenimiento sobre un bien, creada desde el
// formulario público o autenticado. OrdenCreada la deriva bienes_crud cuando
// se programa una orden sobre la solicitud.
type Solicitud struct {
	Id                int64  `json:"id"`
	NombreSolicitante string `json:"nombreSolicitante"`
	TelefonoSolicitante string `json:"telefonoSolicitante,omitempty"`
	Placa             string `json:"placa"`
	Serial            string `json:"serial,omitempty"`
	Descripcion       string `json:"descripcion"`
	TipoMantenimiento string `json:"tipoMantenimiento"`
	NumeroSeguimiento string `json:"numeroSeguimiento"`
	OrdenCreada       bool   `json:"ordenCreada"`
	FechaCreacion     string `json:"createdAt,omitempty"`
}

// EstadoTiempo resume la holgura de una orden frente a su fecha fin.
// Se deriva en el MID al momento de la lectura, nunca se persiste.
type EstadoTiempo struct {
	DiasRestantes int  `json:"diasRestantes"`
	Vencida       bool `json:"vencida"`
}

// OrdenTrabajo programa la atención de una solicitud: técnico, instructor,
// ventana de fechas y prioridad. El radicado se genera en el servidor a partir
// de la fecha de inicio (OT-DD-MM-YYYY).
type OrdenTrabajo struct {
	Id           int64         `json:"id"`
	Radicado     string        `json:"radicado"`
	SolicitudId  int64         `json:"solicitudId"`
	TecnicoId    int64         `json:"tecnicoId"`
	Tecnico      string        `json:"tecnico,omitempty"`
	InstructorId int64         `json:"instructorId"`
	Instructor   string        `json:"instructor,omitempty"`
	FechaInicio  string        `json:"fechaInicio"`
	FechaFin     string        `json:"fechaFin"`
	Prioridad    string        `json:"prioridad"`
	Cerrada      bool          `json:"cerrada"`
	EstadoTiempo *EstadoTiempo `json:"estadoTiempo,omitempty"`
	// Advertencia se llena cuando la orden quedó creada pero la notificación
	// por correo falló en bienes_crud.
	Advertencia   string `json:"advertencia,omitempty"`
	FechaCreacion string `json:"createdAt,omitempty"`
}

// ReporteTrabajo registra la ejecución de una orden: horas, costo, trabajo
// realizado y la firma de quien ejecutó.
type ReporteTrabajo struct {
	Id                int64   `json:"id"`
	Codigo            string  `json:"codigo"`
	OrdenId           int64   `json:"ordenId"`
	TecnicoId         int64   `json:"tecnicoId,omitempty"`
	InstructorId      int64   `json:"instructorId,omitempty"`
	Horas             float64 `json:"horas"`
	Costo             float64 `json:"costo"`
	TrabajoRealizado  string  `json:"trabajoRealizado"`
	Respuesta         string  `json:"respuesta,omitempty"`
	Observaciones     string  `json:"observaciones,omitempty"`
	TipoMantenimiento string  `json:"tipoMantenimiento"`
	RepuestosUsados   bool    `json:"repuestosUsados"`
	Ejecutado         bool    `json:"ejecutado"`
	Firma             string  `json:"firma,omitempty"`
	Cerrado           bool    `json:"cerrado"`
	FechaCreacion     string  `json:"createdAt,omitempty"`
}
