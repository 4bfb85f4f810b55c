package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    *Config
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			want: &Config{
				Logging: LoggingConfig{
					Level:        "info",
					Format:       "text",
					EnableCaller: false,
					File:         "",
				},
				Profile: ProfileConfig{
					Path:         "./profiles",
					OutputFormat: "text",
				},
			},
		},
		{
			name: "custom environment variables",
			envVars: map[string]string{
				"LOG_LEVEL":             "debug",
				"RDMTOOL_PROFILE_PATH":  "/etc/rdmtool/profiles",
				"RDMTOOL_OUTPUT_FORMAT": "json",
			},
			want: &Config{
				Logging: LoggingConfig{
					Level:        "debug",
					Format:       "text",
					EnableCaller: false,
					File:         "",
				},
				Profile: ProfileConfig{
					Path:         "/etc/rdmtool/profiles",
					OutputFormat: "json",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k := range tt.envVars {
				os.Unsetenv(k)
			}
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want.Logging.Level, cfg.Logging.Level)
			assert.Equal(t, tt.want.Profile.Path, cfg.Profile.Path)
			assert.Equal(t, tt.want.Profile.OutputFormat, cfg.Profile.OutputFormat)

			for k := range tt.envVars {
				os.Unsetenv(k)
			}
		})
	}
}

func TestLoadWithOverrides(t *testing.T) {
	opts := LoadOptions{
		LogLevel:    "warn",
		ProfilePath: "/srv/profiles",
		OutputFmt:   "json",
	}

	cfg, err := LoadWithOverrides(opts)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/srv/profiles", cfg.Profile.Path)
	assert.Equal(t, "json", cfg.Profile.OutputFormat)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid configuration",
			cfg: &Config{
				Logging: LoggingConfig{Level: "info", Format: "text"},
				Profile: ProfileConfig{Path: "./profiles", OutputFormat: "text"},
			},
			wantErr: false,
		},
		{
			name: "invalid log level",
			cfg: &Config{
				Logging: LoggingConfig{Level: "invalid", Format: "text"},
				Profile: ProfileConfig{Path: "./profiles", OutputFormat: "text"},
			},
			wantErr: true,
			errMsg:  "invalid log level",
		},
		{
			name: "invalid log format",
			cfg: &Config{
				Logging: LoggingConfig{Level: "info", Format: "xml"},
				Profile: ProfileConfig{Path: "./profiles", OutputFormat: "text"},
			},
			wantErr: true,
			errMsg:  "invalid log format",
		},
		{
			name: "empty profile path",
			cfg: &Config{
				Logging: LoggingConfig{Level: "info", Format: "text"},
				Profile: ProfileConfig{Path: "", OutputFormat: "text"},
			},
			wantErr: true,
			errMsg:  "profile path cannot be empty",
		},
		{
			name: "invalid output format",
			cfg: &Config{
				Logging: LoggingConfig{Level: "info", Format: "text"},
				Profile: ProfileConfig{Path: "./profiles", OutputFormat: "yaml"},
			},
			wantErr: true,
			errMsg:  "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	key := "TEST_CONFIG_VAR"
	defaultValue := "default"
	testValue := "test_value"

	os.Unsetenv(key)
	assert.Equal(t, defaultValue, getEnvWithDefault(key, defaultValue))

	os.Setenv(key, testValue)
	assert.Equal(t, testValue, getEnvWithDefault(key, defaultValue))

	os.Unsetenv(key)
}

func TestGetBoolWithDefault(t *testing.T) {
	key := "TEST_BOOL_VAR"
	defaultValue := false

	os.Unsetenv(key)
	assert.Equal(t, defaultValue, getBoolWithDefault(key, defaultValue))

	os.Setenv(key, "true")
	assert.Equal(t, true, getBoolWithDefault(key, defaultValue))

	os.Setenv(key, "false")
	assert.Equal(t, false, getBoolWithDefault(key, defaultValue))

	os.Setenv(key, "invalid")
	assert.Equal(t, defaultValue, getBoolWithDefault(key, defaultValue))

	os.Unsetenv(key)
}

func TestGetOverrideOrEnv(t *testing.T) {
	key := "TEST_OVERRIDE_VAR"
	override := "override_value"
	envValue := "env_value"
	defaultValue := "default_value"

	os.Setenv(key, envValue)
	assert.Equal(t, override, getOverrideOrEnv(override, key, defaultValue))
	assert.Equal(t, envValue, getOverrideOrEnv("", key, defaultValue))

	os.Unsetenv(key)
	assert.Equal(t, defaultValue, getOverrideOrEnv("", key, defaultValue))
}

func TestGetGlobalConfig(t *testing.T) {
	cfg := GetGlobalConfig()
	_ = cfg
}
