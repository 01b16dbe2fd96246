package env

import (
	"os"
	"strings"

	"github.com/ekisa-team/sdkpath/internal/envvar"
)

// Environment is the runtime environment of the process.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// FromEnv reads the environment from SDKPATH_ENV, defaulting to production.
func FromEnv() Environment {
	return Parse(os.Getenv(envvar.SdkpathEnv))
}

// Parse maps a name to an Environment. Unknown names mean production.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return Development
	default:
		return Production
	}
}

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool {
	return e == Development
}
