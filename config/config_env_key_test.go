package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"auth": map[string]any{
			"bcryptCost":  12,
			"tokenHeader": "x-access-token",
		},
		"secretKey": map[string]any{"access": ""},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"AUTH_BCRYPTCOST":          "auth.bcryptCost",
		"AUTH_TOKENHEADER":         "auth.tokenHeader",
		"SECRETKEY_ACCESS":         "secretKey.access",
		"NEW_FEATURE_FLAG":         "new.feature.flag",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
