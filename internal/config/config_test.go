package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Totarae/SecondBrain/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load([]string{"-j", "secret"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.ServerAddress)
	assert.Equal(t, "localhost:3200", cfg.GRPCAddress)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, config.ModeMemory, cfg.Mode)
	assert.False(t, cfg.EnableHTTPS)
}

func TestLoad_RequiresSecret(t *testing.T) {
	_, err := config.Load(nil)
	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_address": "file:1",
		"grpc_address": "file:2",
		"file_storage_path": "/tmp/brain.json",
		"jwt_secret": "from-file",
		"token_ttl": "1h",
		"allowed_origins": "https://a.example, https://b.example"
	}`), 0o600))

	t.Setenv("SERVER_ADDRESS", "env:1")
	t.Setenv("GRPC_ADDRESS", "env:2")

	cfg, err := config.Load([]string{"-c", path, "-a", "flag:1"})
	require.NoError(t, err)

	assert.Equal(t, "flag:1", cfg.ServerAddress)
	assert.Equal(t, "env:2", cfg.GRPCAddress)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, config.ModeFile, cfg.Mode)
}

func TestLoad_DatabaseMode(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/brain")

	cfg, err := config.Load([]string{"-f", "/tmp/ignored.json", "-g", "-"})
	require.NoError(t, err)

	assert.Equal(t, config.ModeDatabase, cfg.Mode)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Empty(t, cfg.GRPCAddress)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load([]string{"-j", "s", "-ttl", "soon"})
	assert.Error(t, err)

	_, err = config.Load([]string{"-j", "s", "-ttl", "-1h"})
	assert.Error(t, err)

	_, err = config.Load([]string{"-j", "s", "-c", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)

	_, err = config.Load([]string{"-unknown"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{ServerAddress: "a", JWTSecret: "s", TokenTTL: time.Hour, TLSCertPath: "c.pem", TLSKeyPath: "k.pem"}
	assert.NoError(t, cfg.Validate())

	cfg.EnableHTTPS = true
	assert.NoError(t, cfg.Validate())

	cfg.TLSCertPath = ""
	assert.Error(t, cfg.Validate())
}

func TestLoad_FileTypedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brain.conf")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"jwt_secret": "s",
		"enable_https": true,
		"tls_cert_path": "/etc/brain/cert.pem",
		"log_level": "warn",
		"unknown_key": 1
	}`), 0o600))

	cfg, err := config.Load([]string{"-c", path})
	require.NoError(t, err)

	assert.True(t, cfg.EnableHTTPS)
	assert.Equal(t, "/etc/brain/cert.pem", cfg.TLSCertPath)
	assert.Equal(t, "key.pem", cfg.TLSKeyPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FileBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"jwt_secret":`), 0o600))

	_, err := config.Load([]string{"-c", path})
	assert.Error(t, err)
}
