package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigReadsEnvironment(t *testing.T) {
	t.Setenv("NOMAD_TEST_NAME", "  nomad  ")
	assert.Equal(t, "nomad", Config("NOMAD_TEST_NAME"))
	assert.Equal(t, "fallback", String("NOMAD_TEST_MISSING", "fallback"))
}

func TestIntAndBoolFallBackOnGarbage(t *testing.T) {
	t.Setenv("NOMAD_TEST_PORT", "8002")
	t.Setenv("NOMAD_TEST_BAD_PORT", "eighty")
	t.Setenv("NOMAD_TEST_FLAG", "true")
	t.Setenv("NOMAD_TEST_BAD_FLAG", "maybe")

	assert.Equal(t, 8002, Int("NOMAD_TEST_PORT", 1))
	assert.Equal(t, 1, Int("NOMAD_TEST_BAD_PORT", 1))
	assert.True(t, Bool("NOMAD_TEST_FLAG", false))
	assert.False(t, Bool("NOMAD_TEST_BAD_FLAG", false))
	assert.True(t, Bool("NOMAD_TEST_UNSET_FLAG", true))
}
