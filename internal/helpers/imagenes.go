package helpers

import (
	"encoding/base64"
	"net/http"
	"strings"

	roothelpers "github.com/sigebi/bienes_mid/helpers"
)

// MaxImagenBytes es el tope de 5MB para imágenes y firmas embebidas.
const MaxImagenBytes = 5 * 1024 * 1024

// ValidarImagenDataURL valida una imagen embebida como data URL base64.
// Acepta únicamente tipos image/* y un tamaño decodificado de hasta 5MB.
// Una cadena vacía es válida: la imagen siempre es opcional.
func ValidarImagenDataURL(dataURL string) error {
	trimmed := strings.TrimSpace(dataURL)
	if trimmed == "" {
		return nil
	}

	if !strings.HasPrefix(trimmed, "data:image/") {
		return roothelpers.NewAppError(http.StatusBadRequest, "la imagen debe ser de tipo image/*", nil)
	}

	idx := strings.Index(trimmed, ";base64,")
	if idx < 0 {
		return roothelpers.NewAppError(http.StatusBadRequest, "imagen sin codificación base64", nil)
	}
	payload := trimmed[idx+len(";base64,"):]
	if payload == "" {
		return roothelpers.NewAppError(http.StatusBadRequest, "imagen vacía", nil)
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return roothelpers.NewAppError(http.StatusBadRequest, "imagen base64 inválida", err)
	}
	if len(decoded) > MaxImagenBytes {
		return roothelpers.NewAppError(http.StatusBadRequest, "la imagen supera el máximo de 5MB", nil)
	}
	return nil
}
