package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// App configuration
	AppPort  string `yaml:"APP_PORT" env:"APP_PORT"`
	Timezone string `yaml:"TIMEZONE" env:"TIMEZONE"`
	LogLevel string `yaml:"LOG_LEVEL" env:"LOG_LEVEL"`
	LogDir   string `yaml:"LOG_DIR" env:"LOG_DIR"`

	// Database configuration
	DBUser     string `yaml:"DB_USER" env:"DB_USER"`
	DBName     string `yaml:"DB_NAME" env:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD" env:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" env:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST" env:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET" env:"JWT_SECRET"`
	JWTIssuer string `yaml:"JWT_ISSUER" env:"JWT_ISSUER"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET" env:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION" env:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY" env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY" env:"AWS_SECRET_KEY"`

	// Nutrition analysis service
	AIAnalysisURL    string `yaml:"AI_ANALYSIS_URL" env:"AI_ANALYSIS_URL"`
	AITimeoutSeconds int    `yaml:"AI_TIMEOUT_SECONDS" env:"AI_TIMEOUT_SECONDS"`

	location *time.Location
}

func defaultConfig() Config {
	return Config{
		AppPort:          "8080",
		Timezone:         "Asia/Seoul",
		LogLevel:         "info",
		LogDir:           "./logs",
		DBPort:           "5432",
		DBHost:           "localhost",
		JWTIssuer:        "CALOREAT",
		AWSS3Region:      "ap-northeast-2",
		AITimeoutSeconds: 30,
	}
}

// LoadConfig reads the YAML file at path, then lets environment variables
// with the same keys override it. A missing file is not an error; the
// defaults plus the environment are used instead. An unknown TIMEZONE is.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("config file %s not found, using environment\n", path)
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(file, &config); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(&config); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", config.Timezone, err)
	}
	config.location = loc

	return &config, nil
}

// Location is the timezone day boundaries are computed in. Configs built
// without LoadConfig fall back to UTC.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Config) AITimeout() time.Duration {
	if c.AITimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.AITimeoutSeconds) * time.Second
}
