// Package mcp implements the Model Context Protocol (MCP) server that
// bridges AI assistants to an Elasticsearch cluster.
//
// The server exposes five read/query tools:
//   - list_indices: List all indices with health, status and doc count
//   - list_aliases: List all aliases and their target indices
//   - get_mappings_of_index: Fetch field mappings for one index
//   - get_mappings_of_alias: Fetch field mappings through an alias
//   - search: Run a native query DSL search against an index or alias
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Stdout carries protocol frames; all logging goes to stderr.
//
// # Result envelope
//
// Every tool returns the same shape: an ordered sequence of text
// fragments. Handlers never surface an error to the transport layer;
// any failure (bad input, unreachable cluster, non-2xx status, decode
// error) is logged and rendered as one fragment beginning "Error: ".
// Callers therefore see a single failure surface across all five
// tools.
//
// # Tool: search
//
// The queryBody argument is the engine's native query DSL and is
// forwarded verbatim:
//
//	Request:
//	{
//	  "name": "search",
//	  "arguments": {
//	    "index_or_alias": "books",
//	    "queryBody": {"query": {"match": {"title": "go"}}, "size": 5}
//	  }
//	}
//
// The first result fragment reports the total match count, the number
// of hits returned, and the offset taken from queryBody.from. Each
// following fragment is one matched document: highlighted fields are
// rendered as "field (highlighted): ..." and the remaining _source
// fields as "field: <JSON value>".
package mcp
