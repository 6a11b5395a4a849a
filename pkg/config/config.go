package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Input  InputConfig
	Output OutputConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// InputConfig rutas de las colecciones de entrada.
type InputConfig struct {
	CompaniesPath string
	UsersPath     string
}

// OutputConfig rutas de los artefactos de salida.
// ReferencePath vacío = no verificar; PDFPath vacío = no generar PDF.
type OutputConfig struct {
	ReportPath    string
	ReferencePath string
	PDFPath       string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env o config.env). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, COMPANIES_PATH, USERS_PATH, REPORT_PATH, etc.
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
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "topup-report"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Input: InputConfig{
			CompaniesPath: getString(v, "COMPANIES_PATH", "companies.json"),
			UsersPath:     getString(v, "USERS_PATH", "users.json"),
		},
		Output: OutputConfig{
			ReportPath:    getString(v, "REPORT_PATH", "output.txt"),
			ReferencePath: getString(v, "REFERENCE_PATH", ""),
			PDFPath:       getString(v, "REPORT_PDF_PATH", ""),
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
