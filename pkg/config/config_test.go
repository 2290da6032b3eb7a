package config

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	once = sync.Once{}
	viper.Reset()

	cfg, err := NewConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	// Test singleton behavior
	cfg2, err := NewConfig()
	assert.NoError(t, err)
	assert.Equal(t, cfg, cfg2, "Expected NewConfig to return the same instance")
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()

	cfg := &Config{}
	err := cfg.LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, 2048, cfg.RSABits)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "sig", cfg.KeyUse)
	assert.NotNil(t, cfg.Cache)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 16, cfg.Cache.MaxLocalSize)
}

func TestLoadConfig_FromFile(t *testing.T) {
	viper.Reset()

	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	assert.NoError(t, err)
	defer func() {
		if err := os.Remove(tmpFile.Name()); err != nil {
			t.Logf("Failed to remove temp file: %v", err)
		}
	}()

	configContent := `rsa_bits: 4096
output_dir: "/tmp/keys"
key_use: "enc"
cache:
  ttl: "30m"
  max_local_size: 8
`
	_, err = tmpFile.WriteString(configContent)
	assert.NoError(t, err)
	assert.NoError(t, tmpFile.Close())

	v := viper.New() // Use a fresh viper instance
	v.SetConfigFile(tmpFile.Name())
	assert.NoError(t, v.ReadInConfig())

	cfg := &Config{}
	assert.NoError(t, v.Unmarshal(cfg))
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, 4096, cfg.RSABits)
	assert.Equal(t, "/tmp/keys", cfg.OutputDir)
	assert.Equal(t, "enc", cfg.KeyUse)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 8, cfg.Cache.MaxLocalSize)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	viper.Reset()

	t.Setenv("JWKFORGE_RSA_BITS", "4096")
	t.Setenv("JWKFORGE_KEY_USE", "enc")

	cfg := &Config{}
	err := cfg.LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, 4096, cfg.RSABits)
	assert.Equal(t, "enc", cfg.KeyUse)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  &Config{RSABits: 2048, OutputDir: ".", Cache: &Cache{TTL: time.Hour, MaxLocalSize: 16}},
		},
		{
			name:    "bad rsa bits",
			cfg:     &Config{RSABits: 1024, OutputDir: "."},
			wantErr: "rsa_bits",
		},
		{
			name:    "missing output dir",
			cfg:     &Config{RSABits: 2048},
			wantErr: "output_dir",
		},
		{
			name:    "non-positive cache ttl",
			cfg:     &Config{RSABits: 2048, OutputDir: ".", Cache: &Cache{TTL: 0, MaxLocalSize: 16}},
			wantErr: "ttl",
		},
		{
			name:    "non-positive cache size",
			cfg:     &Config{RSABits: 2048, OutputDir: ".", Cache: &Cache{TTL: time.Hour, MaxLocalSize: 0}},
			wantErr: "max_local_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
