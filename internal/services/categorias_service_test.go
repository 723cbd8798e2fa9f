package services

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigebi/bienes_mid/models"
)

func TestCatalogoCategoriasFiltraInactivasYOrdena(t *testing.T) {
	invalidarCatalogoCategorias()
	var llamadas atomic.Int32
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
		json.NewEncoder(w).Encode([]models.Categoria{
			{Id: 3, Nombre: "Soldadura", Estado: true},
			{Id: 1, Nombre: "maquinaria pesada", Estado: true},
			{Id: 2, Nombre: "Obsoletos", Estado: false},
		})
	}))
	ctx := newTestCtx(t, nil)

	opciones, err := CatalogoCategorias(ctx)
	require.NoError(t, err)
	require.Len(t, opciones, 2)
	assert.Equal(t, "maquinaria pesada", opciones[0].Nombre)
	assert.Equal(t, "Soldadura", opciones[1].Nombre)

	// segunda lectura dentro del TTL no toca la red
	_, err = CatalogoCategorias(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), llamadas.Load())
}

func TestCrearCategoriaInvalidaElCatalogo(t *testing.T) {
	invalidarCatalogoCategorias()
	var listados atomic.Int32
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listados.Add(1)
			json.NewEncoder(w).Encode([]models.Categoria{{Id: 1, Nombre: "Soldadura", Estado: true}})
		case http.MethodPost:
			var cat models.Categoria
			require.NoError(t, json.NewDecoder(r.Body).Decode(&cat))
			cat.Id = 9
			json.NewEncoder(w).Encode(map[string]interface{}{"result": cat})
		}
	}))
	ctx := newTestCtx(t, nil)

	_, err := CatalogoCategorias(ctx)
	require.NoError(t, err)

	created, err := CrearCategoria(ctx, models.Categoria{
		Nombre:     "Neumática",
		Accesorios: []string{" manguera ", "", "acople"},
		Estado:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"manguera", "acople"}, created.Accesorios)

	// la mutación invalidó el caché: la siguiente lectura vuelve a la red
	_, err = CatalogoCategorias(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), listados.Load())
}

func TestCrearCategoriaSinNombre(t *testing.T) {
	var llamadas atomic.Int32
	conCRUDDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
	}))
	ctx := newTestCtx(t, nil)

	_, err := CrearCategoria(ctx, models.Categoria{Nombre: "   "})
	require.Error(t, err)
	assert.Zero(t, llamadas.Load())
}
