package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App AppConfig
	Sim SimConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// SimConfig configuración de la simulación de la flota.
type SimConfig struct {
	MachineIDs  []string // identidad fija de la flota, asignada al arranque
	EventCount  int      // eventos a publicar por corrida
	MaxQuantity int      // cantidad máxima por venta/reposición
	Seed        int64    // semilla del generador; misma semilla, misma corrida
	IntervalMs  int      // espera entre eventos, en milisegundos
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// SIM_MACHINE_IDS, SIM_EVENT_COUNT, etc.
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
			Name:     getString(v, "APP_NAME", "vending-fleet"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Sim: SimConfig{
			MachineIDs:  getStringSlice(v, "SIM_MACHINE_IDS", []string{"001", "002", "003"}),
			EventCount:  getInt(v, "SIM_EVENT_COUNT", 50),
			MaxQuantity: getInt(v, "SIM_MAX_QUANTITY", 4),
			Seed:        int64(getInt(v, "SIM_SEED", 1)),
			IntervalMs:  getInt(v, "SIM_INTERVAL_MS", 200),
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

func getStringSlice(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return def
	}
	// Las env vars llegan como string separado por comas
	raw := v.GetString(key)
	if raw == "" {
		return def
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
