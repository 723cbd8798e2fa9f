package services

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sigebi/bienes_mid/helpers"

	beego "github.com/beego/beego/v2/server/web"
)

// Config centraliza la configuración necesaria para los servicios externos.
type Config struct {
	AppName               string
	HTTPPort              int
	RunMode               string
	BienesCRUDBaseURL     string
	NotificacionesBaseURL string
	ServiceBearerToken    string
	RequestTimeout        time.Duration
	RetryCount            int
}

var (
	cfg Config
	mu  sync.RWMutex

	once sync.Once
)

// GetConfig devuelve la configuración cargada desde variables de entorno o app.conf.
func GetConfig() Config {
	once.Do(func() {
		loaded := Config{
			AppName:               getString("APP_NAME", "appname", "bienes_mid"),
			HTTPPort:              getInt("HTTP_PORT", "httpport", 8080),
			RunMode:               getString("RUN_MODE", "runmode", "dev"),
			BienesCRUDBaseURL:     normalizeBase(getString("BIENES_CRUD_BASE_URL", "bienes_crud_base_url", "")),
			NotificacionesBaseURL: normalizeBase(getString("NOTIFICACIONES_BASE_URL", "notificaciones_base_url", "")),
			ServiceBearerToken:    getString("SERVICE_BEARER_TOKEN", "service_bearer_token", ""),
			RequestTimeout:        time.Duration(getInt("REQUEST_TIMEOUT_MS", "request_timeout_ms", 10000)) * time.Millisecond,
			RetryCount:            getInt("RETRY_COUNT", "retry_count", 0),
		}

		if loaded.BienesCRUDBaseURL == "" {
			panic("BIENES_CRUD_BASE_URL no configurado")
		}

		helpers.SetDefaultRetryCount(loaded.RetryCount)

		mu.Lock()
		cfg = loaded
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// SetBaseURLForTests apunta el CRUD a un servidor de pruebas. La configuración
// real se carga una sola vez con sync.Once, así que los tests necesitan este
// gancho para inyectar su httptest.Server.
func SetBaseURLForTests(base string) {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 5 * time.Second
	}
	if cfg.AppName == "" {
		cfg.AppName = "bienes_mid"
	}
	cfg.BienesCRUDBaseURL = normalizeBase(base)
}

// SetNotificacionesURLForTests apunta el servicio de notificaciones a un
// servidor de pruebas.
func SetNotificacionesURLForTests(base string) {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 5 * time.Second
	}
	cfg.NotificacionesBaseURL = normalizeBase(base)
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimSpace(value)
}

// BuildURL compone una URL asegurando que no haya dobles slashes.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		trimmed += "/" + strings.Trim(e, "/")
	}
	return trimmed
}
