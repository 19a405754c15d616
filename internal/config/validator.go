package config

import (
	"errors"
	"fmt"
	"os"
)

// EnvSchemaVersion must match ENV_SCHEMA_VERSION in the deployed .env
const EnvSchemaVersion = "1"

// ErrEnv wraps every problem ValidateEnv reports
var ErrEnv = errors.New("environment check failed")

var (
	requiredEnv = []string{"ENV_SCHEMA_VERSION", "API_KEY", "STORE_BACKEND"}
	backendEnv  = map[string][]string{
		StoreBackendPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
		StoreBackendRedis:    {"REDIS_ADDR"},
	}
	// values copied verbatim from .env.example
	placeholderEnv = map[string]string{
		"API_KEY":     "replace-me",
		"DB_PASSWORD": "garden",
	}
)

// ValidateEnv checks the process environment; see CheckEnv
func ValidateEnv() (warnings []string, err error) {
	return CheckEnv(os.LookupEnv)
}

// CheckEnv reports a stale schema version or missing variables as a joined
// error, and placeholder secrets as warnings
func CheckEnv(lookup func(string) (string, bool)) ([]string, error) {
	get := func(k string) string {
		v, _ := lookup(k)
		return v
	}

	var errs []error
	if v := get("ENV_SCHEMA_VERSION"); v != "" && v != EnvSchemaVersion {
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION is %q, want %q; compare your .env with .env.example", v, EnvSchemaVersion))
	}

	required := append(append([]string(nil), requiredEnv...), backendEnv[get("STORE_BACKEND")]...)
	for _, k := range required {
		if get(k) == "" {
			errs = append(errs, fmt.Errorf("%s is not set", k))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrEnv, errors.Join(errs...))
	}

	var warnings []string
	for _, k := range []string{"API_KEY", "DB_PASSWORD"} {
		if get(k) == placeholderEnv[k] {
			warnings = append(warnings, k+" still has the .env.example value")
		}
	}
	return warnings, nil
}
