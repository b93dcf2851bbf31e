// Package config loads giftctl settings from GIFTSENDER_* environment
// variables.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/kelseyhightower/envconfig"

	client "github.com/peteraglen/gift-sender-go-client"
	"github.com/peteraglen/gift-sender-go-client/credential"
)

const Prefix = "GIFTSENDER"

type StoreKind string

const (
	StoreFile   StoreKind = "file"
	StoreMemory StoreKind = "memory"
	StoreRedis  StoreKind = "redis"
)

type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"http://localhost:8000"`
	APIKey  string        `envconfig:"API_KEY"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug   bool          `envconfig:"DEBUG" default:"false"`

	CredentialStore StoreKind `envconfig:"CREDENTIAL_STORE" default:"file"`
	// StorePath is the buntdb file for the file store; empty means
	// ~/.giftsender/credentials.db.
	StorePath string `envconfig:"STORE_PATH"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%s_BASE_URL must be set", Prefix)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%s_TIMEOUT must be positive, got %v", Prefix, c.Timeout)
	}

	switch c.CredentialStore {
	case StoreFile, StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("unsupported %s_CREDENTIAL_STORE: %q", Prefix, c.CredentialStore)
	}

	return nil
}

// OpenStore returns the store requests read the API key from. The returned
// closer must be closed when the store is no longer needed. A non-empty
// APIKey takes precedence: it is served from memory and nothing is
// persisted.
func (c *Config) OpenStore() (client.CredentialStore, io.Closer, error) {
	if c.APIKey != "" {
		return credential.NewMemoryStoreWithKey(c.APIKey), nopCloser{}, nil
	}

	return c.OpenConfiguredStore()
}

// OpenConfiguredStore opens the store selected by CredentialStore,
// ignoring APIKey.
func (c *Config) OpenConfiguredStore() (client.CredentialStore, io.Closer, error) {
	var (
		store  client.CredentialStore
		closer io.Closer = nopCloser{}
	)

	switch c.CredentialStore {
	case StoreMemory:
		store = credential.NewMemoryStore()
	case StoreRedis:
		rs, err := credential.NewRedisStore(credential.RedisConfig{
			Address:  c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		store, closer = rs, rs
	default:
		fs, err := credential.OpenFileStore(c.StorePath)
		if err != nil {
			return nil, nil, err
		}
		store, closer = fs, fs
	}

	return store, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
