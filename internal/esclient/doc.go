// Package esclient talks to an Elasticsearch cluster's REST API.
//
// It covers exactly the read surface the MCP tools need: the index and
// alias catalogs (_cat), field mappings (_mapping), and search
// (_search). Query bodies are forwarded verbatim; the package performs
// no validation of the engine's query DSL and implements no retries,
// pooling beyond net/http defaults, or caching.
package esclient
