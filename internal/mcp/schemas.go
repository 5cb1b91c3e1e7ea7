package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// listIndicesTool returns the tool definition for list_indices
func listIndicesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_indices",
		Description: "List all indices in the Elasticsearch cluster with health, status and document count",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// listAliasesTool returns the tool definition for list_aliases
func listAliasesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_aliases",
		Description: "List all aliases in the Elasticsearch cluster and the indices they point to",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getMappingsOfIndexTool returns the tool definition for get_mappings_of_index
func getMappingsOfIndexTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_mappings_of_index",
		Description: "Get the field mappings for a specific Elasticsearch index",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"index": map[string]interface{}{
					"type":        "string",
					"description": "Name of the index to fetch mappings for",
				},
			},
			Required: []string{"index"},
		},
	}
}

// getMappingsOfAliasTool returns the tool definition for get_mappings_of_alias
func getMappingsOfAliasTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_mappings_of_alias",
		Description: "Get the field mappings for an Elasticsearch alias; the engine resolves the alias to its underlying indices",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"alias": map[string]interface{}{
					"type":        "string",
					"description": "Name of the alias to fetch mappings for",
				},
			},
			Required: []string{"alias"},
		},
	}
}

// searchTool returns the tool definition for search
func searchTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search",
		Description: "Run an Elasticsearch query (native query DSL) against an index or alias",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"index_or_alias": map[string]interface{}{
					"type":        "string",
					"description": "Index or alias to search",
				},
				"queryBody": map[string]interface{}{
					"type":        "object",
					"description": "Complete Elasticsearch query DSL object (query, size, from, highlight, ...), forwarded verbatim",
				},
			},
			Required: []string{"index_or_alias", "queryBody"},
		},
	}
}
