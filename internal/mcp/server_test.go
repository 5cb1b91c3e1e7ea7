package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/elastic-mcp/internal/config"
)

func TestNewServer(t *testing.T) {
	t.Run("server has all required components", func(t *testing.T) {
		cfg := &config.Config{URL: "http://localhost:9200", APIKey: "secret"}
		require.NoError(t, cfg.Validate())

		srv := NewServer(cfg)
		assert.NotNil(t, srv.mcp, "MCP server should be initialized")
		assert.NotNil(t, srv.client, "Elasticsearch client should be initialized")
	})

	t.Run("works without an API key", func(t *testing.T) {
		srv := NewServer(&config.Config{URL: "http://localhost:9200"})
		assert.NotNil(t, srv.client)
	})
}
