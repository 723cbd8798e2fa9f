package services

import (
	"net/url"
	"time"

	webctx "github.com/beego/beego/v2/server/web/context"

	roothelpers "github.com/sigebi/bienes_mid/helpers"
	"github.com/sigebi/bienes_mid/internal/clients"
	internalhelpers "github.com/sigebi/bienes_mid/internal/helpers"
)

// ResumenDashboard agrega los contadores de la pantalla inicial del panel.
type ResumenDashboard struct {
	BienesActivos        int `json:"bienesActivos"`
	BienesInactivos      int `json:"bienesInactivos"`
	SolicitudesPendientes int `json:"solicitudesPendientes"`
	OrdenesAbiertas      int `json:"ordenesAbiertas"`
	OrdenesVencidas      int `json:"ordenesVencidas"`
}

// ObtenerDashboard calcula los contadores del panel a partir de las listas
// completas. Los volúmenes del inventario son de panel administrativo, no
// ameritan endpoints de agregación en bienes_crud.
func ObtenerDashboard(ctx *webctx.Context) (*ResumenDashboard, error) {
	headers := internalhelpers.CopyRequestHeaders(ctx)
	crud := clients.BienesCRUD()

	sinPaginar := url.Values{}
	sinPaginar.Set("limit", "0")

	bienes, _, err := crud.ListBienes(headers, sinPaginar)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error consultando bienes")
	}
	solicitudes, _, err := crud.ListSolicitudes(headers, sinPaginar)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error consultando solicitudes")
	}
	ordenes, _, err := crud.ListOrdenes(headers, sinPaginar)
	if err != nil {
		return nil, roothelpers.AsAppError(err, "error consultando órdenes de trabajo")
	}

	resumen := &ResumenDashboard{}
	for _, b := range bienes {
		if b.Activo {
			resumen.BienesActivos++
		} else {
			resumen.BienesInactivos++
		}
	}
	for _, s := range solicitudes {
		if !s.OrdenCreada {
			resumen.SolicitudesPendientes++
		}
	}
	ahora := time.Now()
	for i := range ordenes {
		if ordenes[i].Cerrada {
			continue
		}
		resumen.OrdenesAbiertas++
		derivarEstadoTiempo(&ordenes[i], ahora)
		if ordenes[i].EstadoTiempo != nil && ordenes[i].EstadoTiempo.Vencida {
			resumen.OrdenesVencidas++
		}
	}
	return resumen, nil
}
