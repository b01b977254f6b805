package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

// TimeZone es la zona horaria de trabajo de toda la aplicación,
// cargada desde APP_TIMEZONE en NewConfig
var TimeZone = time.UTC

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Europe/Madrid"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Supabase struct {
		URL    string `env:"SUPABASE_URL"`
		ApiKey string `env:"SUPABASE_API_KEY"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"schedule_engine:schedule_engine"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMQ struct {
		Enabled         bool   `env:"RABBITMQ_ENABLED"`
		URL             string `env:"RABBITMQ_URL"`
		AssignmentQueue string `env:"RABBITMQ_ASSIGNMENT_QUEUE" envDefault:"schedule-engine.assignment"`
		HolidayQueue    string `env:"RABBITMQ_HOLIDAY_QUEUE" envDefault:"schedule-engine.holiday"`
		AllQueue        string `env:"RABBITMQ_ALL_QUEUE" envDefault:"schedule-engine._all_"`
		Exchange        string `env:"RABBITMQ_EXCHANGE" envDefault:"amq.topic"`
	}

	Cache struct {
		Enabled     bool `env:"CACHE_ENABLED"`
		EntriesSize int  `env:"CACHE_ENTRIES_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Entorno en minúsculas para unificar
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Zona horaria de la aplicación; si no existe se queda UTC
	if loc, err := time.LoadLocation(cfg.App.Timezone); err == nil {
		TimeZone = loc
	}

	// Separación de los clientes de basic auth
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Sin RabbitMQ no hay invalidación, así que tampoco caché
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
