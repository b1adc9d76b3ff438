package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the loaded configuration for the current
// environment. Production refuses to start on an implicit database
// password or a sqlite file store.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		errs = append(errs, ValidationError{
			Field:   "DB_DRIVER",
			Message: fmt.Sprintf("must be %q or %q", DriverPostgres, DriverSQLite),
		}.Error())
	}

	if cfg.DBDriver == DriverSQLite && cfg.DBPath == "" {
		errs = append(errs, ValidationError{
			Field:   "DB_PATH",
			Message: "required for the sqlite driver",
		}.Error())
	}

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{
			Field:   "SERVER_PORT",
			Message: "must not be empty",
		}.Error())
	}

	if IsProduction() {
		if cfg.DBDriver != DriverPostgres {
			errs = append(errs, ValidationError{
				Field:   "DB_DRIVER",
				Message: "production requires postgres",
			}.Error())
		}
		if cfg.DBPassword == "" {
			errs = append(errs, ValidationError{
				Field:   "DB_PASSWORD",
				Message: "required in production",
			}.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
