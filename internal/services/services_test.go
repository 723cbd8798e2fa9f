package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	webctx "github.com/beego/beego/v2/server/web/context"

	rootservices "github.com/sigebi/bienes_mid/services"
)

// newTestCtx arma un contexto beego mínimo para ejercitar los servicios.
func newTestCtx(t *testing.T, headers map[string]string) *webctx.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	ctx := webctx.NewContext()
	ctx.Reset(httptest.NewRecorder(), req)
	return ctx
}

// mintToken firma un JWT de prueba. El MID no verifica la firma, sólo
// decodifica los claims, así que el secreto es irrelevante.
func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-prueba"))
	if err != nil {
		t.Fatalf("firmando token de prueba: %v", err)
	}
	return token
}

// conCRUDDePrueba apunta el cliente al servidor dado durante el test.
func conCRUDDePrueba(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	rootservices.SetBaseURLForTests(srv.URL)
	return srv
}
