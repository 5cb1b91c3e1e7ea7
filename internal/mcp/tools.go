package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/elastic-mcp/internal/esclient"
)

// Validation errors
var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrIndexRequired    = errors.New("index parameter is required")
	ErrAliasRequired    = errors.New("alias parameter is required")
	ErrTargetRequired   = errors.New("index_or_alias parameter is required")
	ErrQueryBodyInvalid = errors.New("queryBody must be a JSON object")
)

// Every handler is total: failures of any class (validation, upstream
// HTTP, network, decode) are logged and converted into a single
// "Error: " text fragment. Nothing propagates to the transport layer.

// handleListIndices handles the list_indices tool invocation
func (s *Server) handleListIndices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	indices, err := s.client.ListIndices(ctx)
	if err != nil {
		return errResult("list_indices", err), nil
	}

	return textResult(
		fmt.Sprintf("Found %d indices", len(indices)),
		formatJSON(indices),
	), nil
}

// handleListAliases handles the list_aliases tool invocation
func (s *Server) handleListAliases(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	aliases, err := s.client.ListAliases(ctx)
	if err != nil {
		return errResult("list_aliases", err), nil
	}

	return textResult(
		fmt.Sprintf("Found %d aliases", len(aliases)),
		formatJSON(aliases),
	), nil
}

// handleGetMappingsOfIndex handles the get_mappings_of_index tool invocation
func (s *Server) handleGetMappingsOfIndex(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return errResult("get_mappings_of_index", ErrInvalidArguments), nil
	}

	index, ok := args["index"].(string)
	if !ok || index == "" {
		return errResult("get_mappings_of_index", ErrIndexRequired), nil
	}

	mappings, err := s.client.Mapping(ctx, index)
	if err != nil {
		return errResult("get_mappings_of_index", err), nil
	}

	// The engine keys the response by index name; an index with no
	// mappings still gets an empty object, not a failure.
	var entry struct {
		Mappings json.RawMessage `json:"mappings"`
	}
	_ = json.Unmarshal(mappings[index], &entry)
	if len(entry.Mappings) == 0 {
		entry.Mappings = json.RawMessage("{}")
	}

	return textResult(
		fmt.Sprintf("Mappings for index %s:", index),
		indentJSON(entry.Mappings),
	), nil
}

// handleGetMappingsOfAlias handles the get_mappings_of_alias tool invocation
func (s *Server) handleGetMappingsOfAlias(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return errResult("get_mappings_of_alias", ErrInvalidArguments), nil
	}

	alias, ok := args["alias"].(string)
	if !ok || alias == "" {
		return errResult("get_mappings_of_alias", ErrAliasRequired), nil
	}

	mappings, err := s.client.Mapping(ctx, alias)
	if err != nil {
		return errResult("get_mappings_of_alias", err), nil
	}

	// Object keys are the concrete indices the alias resolved to.
	names := make([]string, 0, len(mappings))
	for name := range mappings {
		names = append(names, name)
	}
	sort.Strings(names)

	return textResult(
		fmt.Sprintf("Mappings for alias %s:", alias),
		"Resolved indices: "+strings.Join(names, ", "),
		formatJSON(mappings),
	), nil
}

// handleSearch handles the search tool invocation
func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return errResult("search", ErrInvalidArguments), nil
	}

	target, ok := args["index_or_alias"].(string)
	if !ok || target == "" {
		return errResult("search", ErrTargetRequired), nil
	}

	queryBody, ok := args["queryBody"].(map[string]interface{})
	if !ok {
		return errResult("search", ErrQueryBodyInvalid), nil
	}

	resp, err := s.client.Search(ctx, target, queryBody)
	if err != nil {
		return errResult("search", err), nil
	}

	hits := resp.Hits.Hits
	from := getIntDefault(queryBody, "from", 0)

	fragments := make([]string, 0, len(hits)+1)
	fragments = append(fragments, fmt.Sprintf(
		"Total results: %d, showing %d from position %d",
		resp.TotalHits(), len(hits), from,
	))
	for _, hit := range hits {
		fragments = append(fragments, renderHit(hit))
	}

	return textResult(fragments...), nil
}

// renderHit formats one matched document. Highlighted fields come
// first; a source field already shown via highlighting is not repeated
// as a plain value. Fields are sorted so output is deterministic.
func renderHit(hit esclient.Hit) string {
	var lines []string

	highlighted := make([]string, 0, len(hit.Highlight))
	for field := range hit.Highlight {
		highlighted = append(highlighted, field)
	}
	sort.Strings(highlighted)
	for _, field := range highlighted {
		lines = append(lines, fmt.Sprintf("%s (highlighted): %s",
			field, strings.Join(hit.Highlight[field], " ... ")))
	}

	fields := make([]string, 0, len(hit.Source))
	for field := range hit.Source {
		if _, ok := hit.Highlight[field]; ok {
			continue
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("%s: %s", field, string(hit.Source[field])))
	}

	return strings.Join(lines, "\n")
}

// Helper functions

// textResult builds the uniform result envelope: an ordered sequence
// of text fragments.
func textResult(fragments ...string) *mcp.CallToolResult {
	content := make([]mcp.Content, len(fragments))
	for i, fragment := range fragments {
		content[i] = mcp.TextContent{Type: "text", Text: fragment}
	}
	return &mcp.CallToolResult{Content: content}
}

// errResult logs the failure to the process error stream and converts
// it into a single error text fragment.
func errResult(tool string, err error) *mcp.CallToolResult {
	log.Printf("%s failed: %v", tool, err)
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: fmt.Sprintf("Error: %v", err)},
		},
		IsError: true,
	}
}

// formatJSON formats a value as indented JSON
func formatJSON(data any) string {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(out)
}

// indentJSON re-indents a raw JSON document
func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}
