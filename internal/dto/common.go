package dto

import (
	"github.com/sigebi/bienes_mid/models/requestresponse"
)

// APIResponseDTO reutiliza el DTO estándar expuesto por requestresponse.
type APIResponseDTO = requestresponse.APIResponseDTO

// PageDTO representa una colección paginada.
type PageDTO[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

// OpcionDTO es un par id/nombre para selects del panel.
type OpcionDTO struct {
	Id     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
