// Package config provides configuration loading and validation for the portfolio server.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort                = 8080
	DefaultEmailJSEndpoint     = "https://api.emailjs.com/api/v1.0/email/send"
	DefaultFormTokenTTLMinutes = 60
)

// Config holds the server configuration.
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	ContentPath string // Optional portfolio content override (JSON)

	EmailJS   EmailJSConfig
	FormToken FormTokenConfig

	// SecureCookies marks the theme cookie Secure; enable behind TLS.
	SecureCookies bool
}

// EmailJSConfig identifies the external delivery service.
type EmailJSConfig struct {
	Endpoint   string `validate:"required,url"`
	ServiceID  string `validate:"required"`
	TemplateID string `validate:"required"`
	PublicKey  string `validate:"required"`
}

// FormTokenConfig holds configuration for signing contact form tokens.
type FormTokenConfig struct {
	Secret     string `validate:"required,min=16"`
	TTLMinutes int    `validate:"min=1"`
}

// TTL returns the token lifetime.
func (c FormTokenConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// envBindings maps config keys to environment variable names.
var envBindings = map[string]string{
	"port":                   "PORT",
	"content_path":           "CONTENT_PATH",
	"emailjs_endpoint":       "EMAILJS_ENDPOINT",
	"emailjs_service_id":     "EMAILJS_SERVICE_ID",
	"emailjs_template_id":    "EMAILJS_TEMPLATE_ID",
	"emailjs_public_key":     "EMAILJS_PUBLIC_KEY",
	"form_token_secret":      "FORM_TOKEN_SECRET",
	"form_token_ttl_minutes": "FORM_TOKEN_TTL_MINUTES",
	"secure_cookies":         "SECURE_COOKIES",
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	v := viper.New()

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	v.SetDefault("port", DefaultPort)
	v.SetDefault("emailjs_endpoint", DefaultEmailJSEndpoint)
	v.SetDefault("form_token_ttl_minutes", DefaultFormTokenTTLMinutes)
	v.SetDefault("secure_cookies", false)

	// Unparseable numbers read as zero and fail the min checks in Validate.
	cfg := &Config{
		Port:        v.GetInt("port"),
		ContentPath: v.GetString("content_path"),
		EmailJS: EmailJSConfig{
			Endpoint:   v.GetString("emailjs_endpoint"),
			ServiceID:  v.GetString("emailjs_service_id"),
			TemplateID: v.GetString("emailjs_template_id"),
			PublicKey:  v.GetString("emailjs_public_key"),
		},
		FormToken: FormTokenConfig{
			Secret:     v.GetString("form_token_secret"),
			TTLMinutes: v.GetInt("form_token_ttl_minutes"),
		},
		SecureCookies: v.GetBool("secure_cookies"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %s", describeValidationError(err))
	}
	return nil
}

// describeValidationError reports the first failed field using its environment name.
func describeValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}

	ve := validationErrors[0]
	name := ve.Namespace()
	if env, ok := fieldEnv[ve.StructNamespace()]; ok {
		name = env
	}
	return fmt.Sprintf("%s - %s", name, ve.Tag())
}

// fieldEnv maps struct namespaces to the environment variable that sets them.
var fieldEnv = map[string]string{
	"Config.Port":                 "PORT",
	"Config.EmailJS.Endpoint":     "EMAILJS_ENDPOINT",
	"Config.EmailJS.ServiceID":    "EMAILJS_SERVICE_ID",
	"Config.EmailJS.TemplateID":   "EMAILJS_TEMPLATE_ID",
	"Config.EmailJS.PublicKey":    "EMAILJS_PUBLIC_KEY",
	"Config.FormToken.Secret":     "FORM_TOKEN_SECRET",
	"Config.FormToken.TTLMinutes": "FORM_TOKEN_TTL_MINUTES",
}
