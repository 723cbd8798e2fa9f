package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	webctx "github.com/beego/beego/v2/server/web/context"
)

var httpClient = &http.Client{
	Timeout: 20 * time.Second,
}

// SendJSON envía un cuerpo JSON con el método indicado y decodifica la
// respuesta en out cuando se provee. A diferencia del cliente de bienes_crud,
// acá no hay reintentos: es para envíos únicos como la prueba de notificación.
func SendJSON(ctx *webctx.Context, method, url string, in, out interface{}, extra map[string]string) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := newRequest(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	applyHeaders(ctx, req, extra)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s -> %d: %s", method, url, resp.StatusCode, string(body))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func newRequest(ctx *webctx.Context, method, url string, body io.Reader) (*http.Request, error) {
	// Usar el contexto del request para cancelación/timeout upstream.
	var stdctx context.Context
	if ctx != nil && ctx.Request != nil {
		stdctx = ctx.Request.Context()
	} else {
		stdctx = context.Background()
	}
	req, err := http.NewRequestWithContext(stdctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	return req, nil
}

func applyHeaders(ctx *webctx.Context, req *http.Request, extra map[string]string) {
	// Propagar correlación y auth si vienen del request entrante
	if ctx != nil {
		if corr := ctx.Input.Header("X-Request-Id"); corr != "" {
			req.Header.Set("X-Request-Id", corr)
		}
		if auth := ctx.Input.Header("Authorization"); auth != "" {
			req.Header.Set("Authorization", auth)
		}
	}
	for k, v := range extra {
		if v != "" {
			req.Header.Set(k, v)
		}
	}
}
