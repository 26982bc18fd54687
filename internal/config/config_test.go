package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without a config file", func(t *testing.T) {
		// When: no config file exists
		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		// Then: the defaults apply
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, StorageFile, conf.Storage.Type)
		assert.Equal(t, "loserecords.txt", conf.Storage.Path)
		assert.Equal(t, OpponentHuman, conf.Opponent)
		assert.Equal(t, 1, conf.Games)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file selecting redis and a random opponent
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nstorage:\n  type: redis\nredis:\n  host: cache\n  port: \"6380\"\n  key: losses\nopponent: random\ngames: 50\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf, err := Load(path)

		// Then: the file values win over defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, StorageRedis, conf.Storage.Type)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "losses", conf.Redis.Key)
		assert.Equal(t, OpponentRandom, conf.Opponent)
		assert.Equal(t, 50, conf.Games)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("LOSE_RECORDS_PATH", "/tmp/losses.txt")

		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		require.NoError(t, err)
		assert.Equal(t, "/tmp/losses.txt", conf.Storage.Path)
	})

	t.Run("Unknown storage is rejected", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "tape")

		_, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		require.ErrorIs(t, err, ErrUnknownStorage)
	})

	t.Run("MustLoad panics on a bad config", func(t *testing.T) {
		t.Setenv("OPPONENT", "robot")

		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "config.yml"))
		})
	})
}
