package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort     string `env:"HTTP_PORT" envDefault:"8080"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"ZoxNova API"`
	DatabaseURL  string `env:"DATABASE_URL" envDefault:"mongodb://localhost:27017"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"zoxnova"`
	LLMAPIKey    string `env:"EMERGENT_API_KEY"`
	LLMBaseURL   string `env:"EMERGENT_BASE_URL" envDefault:"https://api.emergent-llm.com/v1"`
	LLMModel     string `env:"EMERGENT_MODEL" envDefault:"gpt-5.1"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DemoMode indica si el servicio debe operar sin credencial del proveedor.
func (c *Config) DemoMode() bool {
	return c.LLMAPIKey == ""
}
