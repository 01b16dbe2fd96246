package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekisa-team/sdkpath/internal/envvar"
)

func TestDefaultConfigFile_EnvOverride(t *testing.T) {
	t.Setenv(envvar.SdkpathConfig, "/etc/sdkpath/config.yaml")
	assert.Equal(t, "/etc/sdkpath/config.yaml", DefaultConfigFile())
}

func TestDefaultConfigFile_Default(t *testing.T) {
	t.Setenv(envvar.SdkpathConfig, "")
	assert.Equal(t, filepath.Join(DefaultConfigPath(), "config.yaml"), DefaultConfigFile())
}
