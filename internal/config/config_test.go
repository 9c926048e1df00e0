package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInit_LoadsFileAndDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
database:
  mysql:
    dsn: "root:root@tcp(127.0.0.1:3306)/bicara?charset=utf8mb4&parseTime=True&loc=Local"
storage:
  bucket_name: "bicara-media"
`)

	Init(path)

	assert.Equal(t, "9090", Conf.Server.Port)
	assert.Equal(t, "bicara-media", Conf.Storage.BucketName)

	// 未在文件中出现的键取默认值
	assert.Equal(t, "release", Conf.Server.Mode)
	assert.Equal(t, 10, Conf.Database.MySQL.MaxOpenConns)
	assert.Equal(t, 5, Conf.Database.MySQL.MaxIdleConns)
	assert.Equal(t, "gcs", Conf.Storage.Backend)
	assert.Equal(t, "id-ID", Conf.TTS.LanguageCode)
	assert.Equal(t, "id-ID-Standard-A", Conf.TTS.VoiceName)
	assert.InDelta(t, 1.0, Conf.TTS.SpeakingRate, 0.001)
	assert.Equal(t, "info", Conf.Log.Level)
}

func TestInit_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
`)
	t.Setenv("SERVER_PORT", "7070")

	Init(path)

	assert.Equal(t, "7070", Conf.Server.Port)
}

func TestInit_MissingFilePanics(t *testing.T) {
	assert.Panics(t, func() {
		Init(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	})
}
