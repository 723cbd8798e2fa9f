package services

import (
	"strings"
	"time"
)

// Formatos de fecha aceptados en los payloads del panel.
var fechaLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// ParseFecha interpreta una fecha en cualquiera de los formatos que maneja el
// panel. Retorna el cero de time.Time cuando no se puede interpretar.
func ParseFecha(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}
	}
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	return time.Time{}
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
