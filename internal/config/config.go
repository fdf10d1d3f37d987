package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// fallbackDatabaseName is used when neither the URI nor the config names a database.
const fallbackDatabaseName = "test"

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

type ServerConfig struct {
	Address     string   `mapstructure:"address" validate:"required"`
	Mode        string   `mapstructure:"mode" validate:"oneof=debug release test"`
	CORSOrigins []string `mapstructure:"cors_origins" validate:"dive,cors_origin"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri" validate:"required"`
	Name string `mapstructure:"name"`
}

// LoadConfig reads configuration from a .env file, a config.yaml in path and
// environment variables, in increasing order of precedence.
func LoadConfig(path string) (config Config, err error) {
	// .env only fills variables that are not already set in the environment
	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARN: Could not read .env file: %v", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	v.AutomaticEnv()
	// server.address -> SERVER_ADDRESS
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	// The connection string is conventionally exported as MONGODB_URI
	if err = v.BindEnv("database.uri", "MONGODB_URI", "DATABASE_URI"); err != nil {
		return
	}

	// --- Set default values ---
	v.SetDefault("server.address", ":3001")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "")

	// --- Read Config File ---
	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	// A comma separated SERVER_CORS_ORIGINS arrives as a single element
	config.Server.CORSOrigins = splitCSV(config.Server.CORSOrigins)

	if config.Database.Name == "" {
		config.Database.Name, err = DatabaseNameFromURI(config.Database.URI)
		if err != nil {
			return
		}
	}

	validate := validator.New()
	if err = validate.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		return
	}
	if err = validate.Struct(config); err != nil {
		return config, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// DatabaseNameFromURI returns the database named in the path of a MongoDB
// connection string, or "test" when the path is empty.
func DatabaseNameFromURI(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("invalid database uri: %w", err)
	}
	if cs.Database == "" {
		return fallbackDatabaseName, nil
	}
	return cs.Database, nil
}

// validateCORSOrigin accepts "*", an origin URL, or an origin URL with one
// wildcard such as https://*.example.com.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	origin := fl.Field().String()
	if origin == "*" {
		return true
	}
	if strings.Count(origin, "*") > 1 {
		return false
	}
	return validator.New().Var(strings.Replace(origin, "*", "wildcard", 1), "url") == nil
}

func splitCSV(values []string) []string {
	out := []string{}
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if t := strings.TrimSpace(part); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}
