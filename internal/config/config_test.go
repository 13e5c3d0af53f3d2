package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
user = "parkease"
password = "parkease"
dbname = "parkease"
sslmode = "disable"

[auth]
jwt_secret = "test-secret"
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "parkease", cfg.Database.DBName)

	// TTL токена по умолчанию сутки
	assert.Equal(t, 24, cfg.Auth.TokenTTL)
}

func TestLoad_MissingPort(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
host = "localhost"
dbname = "parkease"

[auth]
jwt_secret = "test-secret"
`))
	assert.Error(t, err)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	_, err := Load(writeConfig(t, `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "parkease"
`))
	assert.Error(t, err)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", DBName: "parkease", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=parkease sslmode=disable", d.DSN())
}
