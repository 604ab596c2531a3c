package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "negative normalizer depth",
			mutate:  func(c *Config) { c.Normalizer.MaxDepth = -1 },
			wantErr: ErrNormalizerMaxDepthInvalid,
		},
		{
			name:    "non-positive tree depth",
			mutate:  func(c *Config) { c.Renderer.MaxTreeDepth = 0 },
			wantErr: ErrRenderDepthInvalid,
		},
		{
			name:    "commands without rendering",
			mutate:  func(c *Config) { c.Features.Rendering = false },
			wantErr: ErrCommandsRequireRendering,
		},
		{
			name:    "logging enabled without provider",
			mutate:  func(c *Config) { c.Logging.Provider = "" },
			wantErr: ErrLoggingProviderRequired,
		},
		{
			name:    "unknown logging provider",
			mutate:  func(c *Config) { c.Logging.Provider = "syslog" },
			wantErr: ErrLoggingProviderUnknown,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: ErrLoggingLevelInvalid,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateDisabledLoggingSkipsChecks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging = LoggingConfig{Enabled: false}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled logging should skip provider checks, got %v", err)
	}
}
