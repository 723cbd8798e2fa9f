package helpers

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidarImagenDataURL(t *testing.T) {
	pequena := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("pixel"))

	casos := []struct {
		nombre  string
		dataURL string
		valida  bool
	}{
		{"vacía es opcional", "", true},
		{"png pequeña", pequena, true},
		{"con espacios alrededor", "  " + pequena + "  ", true},
		{"tipo no imagen", "data:text/plain;base64,aG9sYQ==", false},
		{"sin base64", "data:image/png,pixel", false},
		{"payload vacío", "data:image/png;base64,", false},
		{"base64 corrupto", "data:image/png;base64,###", false},
	}

	for _, caso := range casos {
		err := ValidarImagenDataURL(caso.dataURL)
		if caso.valida {
			assert.NoError(t, err, caso.nombre)
		} else {
			assert.Error(t, err, caso.nombre)
		}
	}
}

func TestValidarImagenDataURLRechazaMasDe5MB(t *testing.T) {
	grande := base64.StdEncoding.EncodeToString(make([]byte, MaxImagenBytes+1))
	err := ValidarImagenDataURL("data:image/jpeg;base64," + grande)
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "5mb")

	limite := base64.StdEncoding.EncodeToString(make([]byte, MaxImagenBytes))
	assert.NoError(t, ValidarImagenDataURL("data:image/jpeg;base64,"+limite))
}
