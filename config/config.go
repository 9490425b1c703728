// Package config loads server settings.
//
// Values are layered: built-in defaults, then an optional YAML file (named by
// --config or BOST_CONFIG), then environment variables. A .env file in the
// working directory is loaded into the environment first.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultAdminPassword is the editor password the site shipped with.
const DefaultAdminPassword = "bost2024"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type App struct {
	Port string `yaml:"port" envconfig:"PORT"`
	Env  string `yaml:"env" envconfig:"ENV"`

	// Empty means an in-memory store.
	DatabaseURL string `yaml:"database_url" envconfig:"DB_URL"`

	AdminPassword  string   `yaml:"admin_password" envconfig:"ADMIN_PASSWORD"`
	JWTSecret      string   `yaml:"jwt_secret" envconfig:"JWT_SECRET"`
	JWTExpiryHours int      `yaml:"jwt_expiry_hours" envconfig:"JWT_EXPIRY_HOURS"`
	AllowedOrigins []string `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`

	TwilioAccountSID  string `yaml:"twilio_account_sid" envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `yaml:"twilio_auth_token" envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string `yaml:"twilio_phone_number" envconfig:"TWILIO_PHONE_NUMBER"`
	OwnerPhone        string `yaml:"owner_phone" envconfig:"OWNER_PHONE"`

	AMQPURL      string `yaml:"amqp_url" envconfig:"AMQP_URL"`
	AMQPExchange string `yaml:"amqp_exchange" envconfig:"AMQP_EXCHANGE"`

	OTLPEndpoint   string `yaml:"otlp_endpoint" envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	DigestSchedule string `yaml:"digest_schedule" envconfig:"DIGEST_SCHEDULE"`
}

func Default() App {
	return App{
		Port:           "8080",
		Env:            EnvDevelopment,
		AdminPassword:  DefaultAdminPassword,
		JWTExpiryHours: 12,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AMQPExchange:   "bost.events",
		DigestSchedule: "0 7 * * *",
	}
}

// Load builds the configuration. path may be empty, in which case
// BOST_CONFIG is consulted and, failing that, no file is read.
func Load(path string) (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load .env: %w", err)
	}

	c := Default()
	if path == "" {
		path = os.Getenv("BOST_CONFIG")
	}
	if path != "" {
		if err := c.loadFile(path); err != nil {
			return App{}, err
		}
	}

	// Struct-level prefix is empty so keys match the documented names.
	if err := envconfig.Process("", &c); err != nil {
		return App{}, fmt.Errorf("read environment: %w", err)
	}
	return c, c.Validate()
}

func (c *App) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c App) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("port is required"))
	}
	if c.AdminPassword == "" {
		errs = append(errs, errors.New("admin password is required"))
	}
	if c.JWTExpiryHours <= 0 {
		errs = append(errs, errors.New("jwt expiry must be positive"))
	}
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		errs = append(errs, fmt.Errorf("env must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env))
	}
	return errors.Join(errs...)
}

func (c App) Development() bool { return c.Env == EnvDevelopment }

func (c App) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}

// UsingDefaultPassword reports whether the shipped password is still active.
func (c App) UsingDefaultPassword() bool {
	return c.AdminPassword == DefaultAdminPassword
}
