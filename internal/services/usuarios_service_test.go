package services

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldto "github.com/sigebi/bienes_mid/internal/dto"
	"github.com/sigebi/bienes_mid/models"
)

func TestValidarClave(t *testing.T) {
	casos := []struct {
		clave  string
		valida bool
	}{
		{"Segura#2024", true},
		{"oTr4*clave", true},
		{"corta#1A", true},
		{"S#2a", false},             // menos de 8
		{"seguras#2024", false},     // sin mayúscula
		{"SEGURAS#2024", false},     // sin minúscula
		{"Seguras#clave", false},    // sin dígito
		{"Seguras2024", false},      // sin carácter especial
		{"", false},
	}
	for _, caso := range casos {
		err := ValidarClave(caso.clave)
		if caso.valida {
			assert.NoError(t, err, "clave %q debía aceptarse", caso.clave)
		} else {
			assert.Error(t, err, "clave %q debía rechazarse", caso.clave)
		}
	}
}

func TestCrearUsuarioValidaSinTocarLaRed(t *testing.T) {
	var llamadas atomic.Int32
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
		http.NotFound(w, r)
	}))
	ctx := newTestCtx(t, nil)

	base := internaldto.UsuarioCrear{
		Nombre:          "Laura",
		Correo:          "laura@example.com",
		TipoDocumento:   "CC",
		NumeroDocumento: "1023456789",
		Clave:           "Segura#2024",
	}

	sinNombre := base
	sinNombre.Nombre = ""
	docInvalido := base
	docInvalido.TipoDocumento = "XX"
	claveDebil := base
	claveDebil.Clave = "debil"

	for _, caso := range []internaldto.UsuarioCrear{sinNombre, docInvalido, claveDebil} {
		_, err := CrearUsuario(ctx, caso)
		require.Error(t, err)
	}
	assert.Zero(t, llamadas.Load())
}

func TestCrearUsuarioQuedaPendiente(t *testing.T) {
	var payload map[string]interface{}
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": models.Usuario{Id: 9, Nombre: "Laura", Estado: models.UsuarioPendiente},
		})
	}))

	ctx := newTestCtx(t, nil)
	usuario, err := CrearUsuario(ctx, internaldto.UsuarioCrear{
		Nombre:          "Laura",
		Correo:          "laura@example.com",
		TipoDocumento:   "cc", // se normaliza a su forma canónica
		NumeroDocumento: "1023456789",
		Clave:           "Segura#2024",
	})

	require.NoError(t, err)
	assert.Equal(t, models.UsuarioPendiente, usuario.Estado)
	assert.Equal(t, "CC", payload["tipoDocumento"])
	assert.Equal(t, models.UsuarioPendiente, payload["estado"])
}

func TestActivarUsuarioExigePendiente(t *testing.T) {
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": models.Usuario{Id: 9, Estado: models.UsuarioActivo},
		})
	}))

	ctx := newTestCtx(t, nil)
	_, err := ActivarUsuario(ctx, 9, internaldto.ActivarUsuario{RolId: 2, Cargo: "Técnico de planta"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pendiente")
}

func TestActivarUsuarioAsignaRolYCargo(t *testing.T) {
	var patch map[string]interface{}
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"result": models.Usuario{Id: 9, Estado: models.UsuarioPendiente},
			})
		case http.MethodPatch:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"result": models.Usuario{Id: 9, Estado: models.UsuarioActivo, RolId: 2, Cargo: "Técnico de planta"},
			})
		default:
			http.NotFound(w, r)
		}
	}))

	ctx := newTestCtx(t, nil)
	usuario, err := ActivarUsuario(ctx, 9, internaldto.ActivarUsuario{RolId: 2, Cargo: "Técnico de planta"})

	require.NoError(t, err)
	assert.Equal(t, models.UsuarioActivo, usuario.Estado)
	assert.Equal(t, float64(2), patch["rolId"])
	assert.Equal(t, models.UsuarioActivo, patch["estado"])
}

func TestListarRolesUsaCache(t *testing.T) {
	cacheRoles.mu.Lock()
	cacheRoles.data = nil
	cacheRoles.expiresAt = time.Time{}
	cacheRoles.mu.Unlock()

	var llamadas atomic.Int32
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
		json.NewEncoder(w).Encode([]models.Rol{
			{Id: 2, Nombre: "Instructor"},
			{Id: 1, Nombre: "Administrador"},
		})
	}))

	ctx := newTestCtx(t, nil)
	roles, err := ListarRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	// Orden alfabético, sin importar el orden del CRUD.
	assert.Equal(t, "Administrador", roles[0].Nombre)

	_, err = ListarRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), llamadas.Load(), "la segunda lectura debe salir de caché")
}
