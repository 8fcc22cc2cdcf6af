package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		start       Config
		expected    *Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-m", "prod", "-a", "127.0.0.1:9090", "-g", ":50051", "-d", "db", "-s", "secret", "-t", "5",
			},
			expected: &Config{
				Env:                   "prod",
				EndpointAddrHTTP:      "127.0.0.1:9090",
				EndpointAddrGRPC:      ":50051",
				DatabaseDSN:           "db",
				SecretKey:             "secret",
				TokenValidityDuration: 5 * time.Minute,
			},
		},
		{
			name:  "unset -t keeps sub-minute duration",
			args:  []string{"cmd", "-a", ":1"},
			start: Config{TokenValidityDuration: 90 * time.Second},
			expected: &Config{
				EndpointAddrHTTP:      ":1",
				TokenValidityDuration: 90 * time.Second,
			},
		},
		{
			name:        "bad int panics",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := tt.start

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(&config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(&config) })
			assert.Empty(t, cmp.Diff(tt.expected, &config))
		})
	}
}
