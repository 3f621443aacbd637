package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config reúne a configuração da aplicação lida do ambiente.
type Config struct {
	Porta         string
	LogLevel      string
	Ambiente      string
	JWTSecret     string
	CronAgendador string
	CORSOrigens   []string
}

// Load lê as variáveis de ambiente (com fallback para um arquivo .env).
// godotenv.Load não sobrescreve variáveis já definidas.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Porta = os.Getenv("PORT")
	if cfg.Porta == "" {
		cfg.Porta = "8080"
	}

	cfg.JWTSecret = os.Getenv("AUTH_JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET não definido")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Ambiente = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Ambiente == "" {
		cfg.Ambiente = "development"
	}

	// Mesmo horário do job original: 05:05 todos os dias.
	cfg.CronAgendador = os.Getenv("AGENDADOR_CRON")
	if cfg.CronAgendador == "" {
		cfg.CronAgendador = "5 5 * * *"
	}

	origens := os.Getenv("CORS_ORIGINS")
	if origens == "" {
		cfg.CORSOrigens = []string{"*"}
	} else {
		cfg.CORSOrigens = strings.Split(origens, ",")
	}

	return cfg, nil
}
