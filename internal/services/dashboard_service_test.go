package services

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigebi/bienes_mid/models"
)

func TestObtenerDashboardAgregaContadores(t *testing.T) {
	ayer := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	proximaSemana := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "0", r.URL.Query().Get("limit"))
		switch r.URL.Path {
		case "/assets":
			json.NewEncoder(w).Encode([]models.Bien{
				{Id: 1, Activo: true}, {Id: 2, Activo: true}, {Id: 3, Activo: false},
			})
		case "/application-maintenance":
			json.NewEncoder(w).Encode([]models.Solicitud{
				{Id: 1, OrdenCreada: false}, {Id: 2, OrdenCreada: true}, {Id: 3, OrdenCreada: false},
			})
		case "/word-orden":
			json.NewEncoder(w).Encode([]models.OrdenTrabajo{
				{Id: 1, FechaFin: proximaSemana},
				{Id: 2, FechaFin: ayer},
				{Id: 3, FechaFin: ayer, Cerrada: true},
			})
		default:
			t.Errorf("llamada inesperada %s", r.URL.Path)
		}
	}))

	ctx := newTestCtx(t, nil)
	resumen, err := ObtenerDashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, resumen.BienesActivos)
	assert.Equal(t, 1, resumen.BienesInactivos)
	assert.Equal(t, 2, resumen.SolicitudesPendientes)
	assert.Equal(t, 2, resumen.OrdenesAbiertas)
	assert.Equal(t, 1, resumen.OrdenesVencidas)
}
