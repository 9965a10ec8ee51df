package config

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	Schema   string
}

// URL builds a lib/pq connection string from the individual settings.
// connect_timeout bounds connection acquisition to 2 seconds.
func (c DatabaseConfig) URL() string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:   "/" + c.Name,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}

	q := u.Query()
	q.Set("sslmode", "disable")
	q.Set("connect_timeout", "2")
	u.RawQuery = q.Encode()

	return u.String()
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

type AppConfig struct {
	// Core configuration (always required)
	Database           DatabaseConfig
	JWTSecret          string
	Port               string // Optional with default "3000"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string

	// Identity provider configuration
	GoogleConfig GoogleConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// Core required configuration
	databaseName, err := getEnvRequired("DATABASE_NAME")
	if err != nil {
		return nil, err
	}

	databaseUser, err := getEnvRequired("DATABASE_USER")
	if err != nil {
		return nil, err
	}

	jwtSecret, err := getEnvRequired("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	googleClientID, err := getEnvRequired("GOOGLE_CLIENT_ID")
	if err != nil {
		return nil, err
	}

	googleClientSecret, err := getEnvRequired("GOOGLE_CLIENT_SECRET")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		Database: DatabaseConfig{
			Host:     getEnvWithDefault("DATABASE_HOST", "localhost"),
			Port:     getEnvWithDefault("DATABASE_PORT", "5432"),
			Name:     databaseName,
			User:     databaseUser,
			Password: os.Getenv("DATABASE_PASSWORD"),
			Schema:   getEnvWithDefault("DATABASE_SCHEMA", "public"),
		},
		JWTSecret:          jwtSecret,
		Port:               getEnvWithDefault("PORT", "3000"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "development"),

		GoogleConfig: GoogleConfig{
			ClientID:     googleClientID,
			ClientSecret: googleClientSecret,
		},
	}

	log.Printf("✅ Configuration loaded for environment: %s", config.Environment)
	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
