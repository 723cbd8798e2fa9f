// helpers/http_client.go
package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ---------- Cliente JSON contra bienes_crud + RETRIES ----------

// resultEnvelope es la envoltura opcional {"result": ...} que bienes_crud
// aplica a las mutaciones.
type resultEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// errorBody es el cuerpo de error estándar de bienes_crud.
type errorBody struct {
	Message string `json:"message"`
}

// HTTPError envuelve códigos de estado no exitosos para permitir un manejo granular.
type HTTPError struct {
	Status  int
	Message string
	Body    string
}

// Error prioriza el campo message del cuerpo; si no existe cae al estado y cuerpo.
func (e *HTTPError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// IsHTTPError permite consultar si el error corresponde a un status específico.
func IsHTTPError(err error, status int) bool {
	if err == nil {
		return false
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status == status
	}
	return false
}

// newHTTPError extrae el mensaje funcional del cuerpo de error cuando viene en JSON.
func newHTTPError(status int, body []byte) *HTTPError {
	he := &HTTPError{Status: status, Body: strings.TrimSpace(string(body))}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		he.Message = strings.TrimSpace(eb.Message)
	}
	return he
}

// Config global de reintentos (retro-compatible)
var (
	defaultRetryCount  = 0
	defaultBackoffBase = 300 * time.Millisecond
	maxBackoff         = 3 * time.Second
)

func SetDefaultRetryCount(n int) {
	if n < 0 {
		n = 0
	}
	defaultRetryCount = n
}

func SetRetryBackoff(baseMs int) {
	if baseMs <= 0 {
		baseMs = 300
	}
	defaultBackoffBase = time.Duration(baseMs) * time.Millisecond
}

// DoJSON asume envoltura {result} y sin headers adicionales.
func DoJSON(method, url string, in any, out any, timeout time.Duration) error {
	return DoJSONWithHeaders(method, url, nil, in, out, timeout, true)
}

// DoJSONWithHeaders ejecuta una petición JSON con control de envoltura y reintentos.
// wrapped indica que la respuesta puede venir como {"result": ...}; cuando el
// cuerpo no trae esa clave se decodifica tal cual.
func DoJSONWithHeaders(method, url string, headers map[string]string, in any, out any, timeout time.Duration, wrapped bool) error {
	// Serializa body una vez
	var body []byte
	var err error
	if in != nil {
		body, err = json.Marshal(in)
		if err != nil {
			return err
		}
	}

	doOnce := func() error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewBuffer(body)
		}
		req, err := http.NewRequest(method, url, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		client := &http.Client{Timeout: timeout}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			b, _ := io.ReadAll(resp.Body)
			return newHTTPError(resp.StatusCode, b)
		}

		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}

		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if len(bodyBytes) == 0 {
			return nil
		}

		if wrapped {
			var env resultEnvelope
			if err := json.Unmarshal(bodyBytes, &env); err == nil && len(env.Result) > 0 {
				return json.Unmarshal(env.Result, out)
			}
		}

		return json.Unmarshal(bodyBytes, out)
	}

	var attempt int
	for {
		err = doOnce()
		if err == nil {
			return nil
		}
		if attempt >= defaultRetryCount || !isRetryableErr(err) {
			return err
		}
		time.Sleep(backoffFor(attempt))
		attempt++
	}
}

// ListaMeta replica la metadata de paginación que entrega bienes_crud.
type ListaMeta struct {
	Total        int `json:"total"`
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	TotalPaginas int `json:"totalPages"`
}

// DecodeLista acepta las dos formas de listado de bienes_crud: un arreglo plano
// o un objeto {data: [...], meta: {...}}. Retorna los items crudos y la metadata
// cuando está presente.
func DecodeLista(raw []byte) ([]json.RawMessage, *ListaMeta, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []json.RawMessage{}, nil, nil
	}

	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, nil, err
		}
		return items, nil, nil
	}

	var wrapper struct {
		Data []json.RawMessage `json:"data"`
		Meta *ListaMeta        `json:"meta"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, nil, err
	}
	if wrapper.Data == nil {
		wrapper.Data = []json.RawMessage{}
	}
	return wrapper.Data, wrapper.Meta, nil
}

// GetListaRaw hace GET y entrega el cuerpo sin decodificar, para listados.
func GetListaRaw(url string, headers map[string]string, timeout time.Duration) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newHTTPError(resp.StatusCode, b)
	}
	return b, nil
}

func isRetryableErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var he *HTTPError
	if errors.As(err, &he) {
		switch he.Status {
		case http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	l := strings.ToLower(err.Error())
	return strings.Contains(l, "timeout") ||
		strings.Contains(l, "connection reset") ||
		strings.Contains(l, "temporary") ||
		strings.Contains(l, "server closed idle connection")
}

func backoffFor(attempt int) time.Duration {
	d := defaultBackoffBase << attempt
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}
