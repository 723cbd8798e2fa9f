package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idsDeMenu(opciones []OpcionMenu) []string {
	ids := make([]string, 0, len(opciones))
	for _, o := range opciones {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestMenuPorRol(t *testing.T) {
	casos := []struct {
		rol  string
		ids  []string
	}{
		{"administrador", []string{"dashboard", "solicitudes", "ordenes", "reportes", "bienes", "categorias", "usuarios", "acceso", "configuracion"}},
		{"Admin", []string{"dashboard", "solicitudes", "ordenes", "reportes", "bienes", "categorias", "usuarios", "acceso", "configuracion"}},
		{"instructor", []string{"dashboard", "solicitudes", "ordenes", "reportes", "bienes", "categorias"}},
		{"tecnico", []string{"dashboard", "solicitudes", "ordenes", "reportes"}},
	}

	for _, caso := range casos {
		token := mintToken(t, jwt.MapClaims{"sub": float64(1), "rol": caso.rol})
		ctx := newTestCtx(t, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, caso.ids, idsDeMenu(MenuPorRol(ctx)), "rol %s", caso.rol)
	}
}

func TestMenuSinTokenEntregaBase(t *testing.T) {
	ctx := newTestCtx(t, nil)
	opciones := MenuPorRol(ctx)
	require.Len(t, opciones, 4)
	assert.Equal(t, []string{"dashboard", "solicitudes", "ordenes", "reportes"}, idsDeMenu(opciones))
}
