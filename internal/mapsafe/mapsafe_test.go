package mapsafe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settings = `{
	"CanonicalName": "macosx14.2",
	"Version": "14.2",
	"MaximumDeploymentTarget": 14.2,
	"IsBaseSDK": true,
	"SupportedTargets": {"macosx": {"Archs": ["x86_64", "arm64"]}},
	"Mixed": ["a", 1]
}`

func decode(t *testing.T) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(settings), &m))
	return m
}

func TestGet(t *testing.T) {
	m := decode(t)

	assert.Equal(t, "macosx14.2", Get(m, "CanonicalName", ""))
	assert.Equal(t, "fallback", Get(m, "Missing", "fallback"))
	assert.Equal(t, "", Get(m, "IsBaseSDK", ""))
	assert.True(t, Get(m, "IsBaseSDK", false))
	assert.InDelta(t, 14.2, Get(m, "MaximumDeploymentTarget", 0.0), 1e-9)
	assert.Equal(t, 14, Get(m, "MaximumDeploymentTarget", 0))
}

func TestGet_StringSlice(t *testing.T) {
	m := decode(t)
	macos := Object(Object(m, "SupportedTargets"), "macosx")
	require.NotNil(t, macos)

	assert.Equal(t, []string{"x86_64", "arm64"}, Get[[]string](macos, "Archs", nil))
	assert.Nil(t, Get[[]string](m, "Mixed", nil))
	assert.Nil(t, Get[[]string](m, "Version", nil))
}

func TestObject_Missing(t *testing.T) {
	m := decode(t)

	assert.Nil(t, Object(m, "Version"))
	assert.Nil(t, Object(nil, "SupportedTargets"))
}
