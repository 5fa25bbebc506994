package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort  string `json:"api_port"`
	Debug    bool   `json:"debug"`
	LogLevel string `json:"log_level"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	AllowedOrigins []string `json:"allowed_origins"`

	Security struct {
		JwtSecret       string `json:"jwt_secret"`
		TokenValidHours int    `json:"token_valid_hours"`
	} `json:"security"`
}

// Get carrega a configuração do arquivo JSON. Se o arquivo não existir,
// segue apenas com os defaults + variáveis de ambiente.
func Get(path string) Configuration {
	var c Configuration

	b, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatal(err)
	}

	// defaults (pra evitar nil/zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.Security.TokenValidHours <= 0 {
		c.Security.TokenValidHours = 24
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}

	// env tem precedência sobre o arquivo
	if v := os.Getenv("PORT"); v != "" {
		c.ApiPort = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Security.JwtSecret = v
	}
	if v := os.Getenv("APP_DEBUG"); v == "1" || v == "true" {
		c.Debug = true
	}

	return c
}
