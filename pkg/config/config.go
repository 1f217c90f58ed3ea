package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env / config.env).
type Config struct {
	App   AppConfig
	API   APIConfig
	Tabla TablaConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del acceso a la API REST del laboratorio.
type APIConfig struct {
	BaseURL        string // ej. https://rest-desarrollo.canagrosa.com
	TimeoutSeconds int    // timeout por petición
	CacheTTLMin    int    // vigencia de la caché de colecciones, en minutos
	TokenFile      string // ruta donde se persiste el token de sesión; vacío = no persistir
}

// Timeout devuelve el timeout de petición como duración.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL devuelve la vigencia de la caché como duración.
func (c APIConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMin) * time.Minute
}

// TablaConfig configuración de las tablas con carga incremental.
type TablaConfig struct {
	PageSize int // filas añadidas en cada carga del scroll infinito
}

// HTTPConfig configuración del servidor de la API simulada (mockapi).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// JWTConfig configuración de JWT para la API simulada.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// API_BASE_URL, API_TIMEOUT_SECONDS, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "geslab"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "https://rest-desarrollo.canagrosa.com"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 30),
			CacheTTLMin:    getInt(v, "API_CACHE_TTL_MINUTES", 5),
			TokenFile:      getString(v, "API_TOKEN_FILE", ""),
		},
		Tabla: TablaConfig{
			PageSize: getInt(v, "TABLE_PAGE_SIZE", 50),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 1440),
			Issuer:     getString(v, "JWT_ISSUER", "geslab"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
