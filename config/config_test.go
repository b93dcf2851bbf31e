package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peteraglen/gift-sender-go-client/credential"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, StoreFile, cfg.CredentialStore)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GIFTSENDER_BASE_URL", "https://gifts.example.com")
	t.Setenv("GIFTSENDER_API_KEY", "env-key")
	t.Setenv("GIFTSENDER_TIMEOUT", "5s")
	t.Setenv("GIFTSENDER_DEBUG", "true")
	t.Setenv("GIFTSENDER_CREDENTIAL_STORE", "redis")
	t.Setenv("GIFTSENDER_REDIS_ADDR", "redis:6380")
	t.Setenv("GIFTSENDER_REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://gifts.example.com", cfg.BaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, StoreRedis, cfg.CredentialStore)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"malformed timeout", "GIFTSENDER_TIMEOUT", "soon", "failed to process environment variables"},
		{"negative timeout", "GIFTSENDER_TIMEOUT", "-1s", "GIFTSENDER_TIMEOUT must be positive"},
		{"unknown store", "GIFTSENDER_CREDENTIAL_STORE", "etcd", `unsupported GIFTSENDER_CREDENTIAL_STORE: "etcd"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_EmptyBaseURL(t *testing.T) {
	cfg := &Config{Timeout: time.Second, CredentialStore: StoreMemory}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, "GIFTSENDER_BASE_URL must be set", err.Error())
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("api key overrides store", func(t *testing.T) {
		cfg := &Config{APIKey: "from-env", CredentialStore: StoreRedis}

		store, closer, err := cfg.OpenStore()
		require.NoError(t, err)
		defer func() { _ = closer.Close() }()

		_, isMemory := store.(*credential.MemoryStore)
		assert.True(t, isMemory)

		key, ok, err := store.Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "from-env", key)
	})

	t.Run("memory", func(t *testing.T) {
		cfg := &Config{CredentialStore: StoreMemory}

		store, closer, err := cfg.OpenStore()
		require.NoError(t, err)
		defer func() { _ = closer.Close() }()

		_, ok, err := store.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("file", func(t *testing.T) {
		cfg := &Config{CredentialStore: StoreFile, StorePath: filepath.Join(t.TempDir(), "creds.db")}

		store, closer, err := cfg.OpenStore()
		require.NoError(t, err)
		defer func() { _ = closer.Close() }()

		_, isFile := store.(*credential.FileStore)
		assert.True(t, isFile)
		require.NoError(t, store.Set(ctx, "k"))
	})

	t.Run("redis", func(t *testing.T) {
		cfg := &Config{CredentialStore: StoreRedis, RedisAddr: "127.0.0.1:1"}

		store, closer, err := cfg.OpenStore()
		require.NoError(t, err)
		defer func() { _ = closer.Close() }()

		_, isRedis := store.(*credential.RedisStore)
		assert.True(t, isRedis)
	})
}

func TestOpenConfiguredStore_IgnoresAPIKey(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "creds.db")
	cfg := &Config{APIKey: "from-env", CredentialStore: StoreFile, StorePath: path}

	store, closer, err := cfg.OpenConfiguredStore()
	require.NoError(t, err)

	_, isFile := store.(*credential.FileStore)
	assert.True(t, isFile)

	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "environment key must not leak into the configured store")

	require.NoError(t, store.Set(ctx, "persisted"))
	require.NoError(t, closer.Close())

	reopened, err := credential.OpenFileStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	key, ok, err := reopened.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", key)
}
