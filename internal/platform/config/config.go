package config

import (
	"os"
	"strings"
)

// Server captures process-level configuration for the mock data server.
type Server struct {
	Addr    string
	DataDir string

	// Shared-secret API keys per protected area. These default to the fixed
	// development keys the mock server has always shipped with; override them
	// via comma-separated env vars when that matters.
	FinanceAPIKeys []string
	HRAPIKeys      []string
	ITAPIKeys      []string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("JSONSVC_ADDR")
	if addr == "" {
		addr = ":8002"
	}
	dataDir := os.Getenv("JSONSVC_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	return Server{
		Addr:    addr,
		DataDir: dataDir,
		FinanceAPIKeys: keysFromEnv("JSONSVC_FINANCE_API_KEYS",
			"fin_12345abcde", "fin_admin_67890xyz"),
		HRAPIKeys: keysFromEnv("JSONSVC_HR_API_KEYS",
			"hr_12345abcde", "hr_admin_67890xyz", "payroll_24680mnop"),
		ITAPIKeys: keysFromEnv("JSONSVC_IT_API_KEYS",
			"it_12345abcde", "it_admin_67890xyz", "it_support_24680mnop"),
	}
}

func keysFromEnv(name string, defaults ...string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return defaults
	}
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return defaults
	}
	return keys
}
