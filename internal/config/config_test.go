package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid URL and key", func(t *testing.T) {
		t.Setenv("ES_URL", "http://localhost:9200")
		t.Setenv("ES_API_KEY", "secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9200", cfg.URL)
		assert.Equal(t, "secret", cfg.APIKey)
	})

	t.Run("API key is optional", func(t *testing.T) {
		t.Setenv("ES_URL", "https://es.example.com")
		t.Setenv("ES_API_KEY", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.APIKey)
	})

	t.Run("empty URL rejected", func(t *testing.T) {
		t.Setenv("ES_URL", "")
		t.Setenv("ES_API_KEY", "")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("URL without scheme rejected", func(t *testing.T) {
		t.Setenv("ES_URL", "localhost:9200")
		t.Setenv("ES_API_KEY", "")

		_, err := Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrURLInvalid)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{"http URL", "http://localhost:9200", nil},
		{"https URL", "https://es.internal:9243", nil},
		{"empty", "", ErrURLRequired},
		{"no host", "http://", ErrURLInvalid},
		{"garbage", "://nope", ErrURLInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{URL: tt.url}
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
