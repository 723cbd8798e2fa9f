package models

// ConfiguracionCorreo agrupa los parámetros del proveedor de correo saliente.
type ConfiguracionCorreo struct {
	Host      string `json:"host"`
	Puerto    int    `json:"puerto"`
	Usuario   string `json:"usuario"`
	Clave     string `json:"clave,omitempty"`
	Remitente string `json:"remitente"`
}

// ConfiguracionSMS agrupa los parámetros del proveedor de SMS.
type ConfiguracionSMS struct {
	Endpoint  string `json:"endpoint"`
	ApiKey    string `json:"apiKey,omitempty"`
	Remitente string `json:"remitente"`
}

// ConfiguracionWhatsApp agrupa los parámetros del canal de WhatsApp.
type ConfiguracionWhatsApp struct {
	Endpoint string `json:"endpoint"`
	ApiKey   string `json:"apiKey,omitempty"`
	Numero   string `json:"numero"`
}

// ConfiguracionSistema es el registro único de configuración de comunicaciones.
type ConfiguracionSistema struct {
	Id       int64                 `json:"id,omitempty"`
	Correo   ConfiguracionCorreo   `json:"correo"`
	SMS      ConfiguracionSMS      `json:"sms"`
	WhatsApp ConfiguracionWhatsApp `json:"whatsapp"`
}
