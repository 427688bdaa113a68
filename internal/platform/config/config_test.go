package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8002", cfg.Addr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Contains(t, cfg.FinanceAPIKeys, "fin_12345abcde")
	assert.Contains(t, cfg.HRAPIKeys, "payroll_24680mnop")
	assert.Contains(t, cfg.ITAPIKeys, "it_support_24680mnop")
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("JSONSVC_ADDR", ":9000")
	t.Setenv("JSONSVC_DATA_DIR", "/tmp/fixtures")
	t.Setenv("JSONSVC_FINANCE_API_KEYS", "alpha, beta ,")

	cfg := FromEnv()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/tmp/fixtures", cfg.DataDir)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.FinanceAPIKeys)
}
