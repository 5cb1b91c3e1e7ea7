package esclient

import "encoding/json"

// catIndexRow mirrors one row of the _cat/indices JSON output. The
// engine reports docs.count as a string; older clusters may omit it.
type catIndexRow struct {
	Index     string `json:"index"`
	Health    string `json:"health"`
	Status    string `json:"status"`
	DocsCount any    `json:"docs.count"`
}

// IndexSummary is the projected index catalog row returned to callers.
type IndexSummary struct {
	Index     string `json:"index"`
	Health    string `json:"health"`
	Status    string `json:"status"`
	DocsCount any    `json:"docsCount"`
}

// AliasSummary is one row of the _cat/aliases catalog.
type AliasSummary struct {
	Alias string `json:"alias"`
	Index string `json:"index"`
}

// SearchResponse holds the subset of the engine's search response the
// bridge renders. Unrecognized fields are dropped on decode.
type SearchResponse struct {
	Hits struct {
		// Total is either a bare number (older clusters) or an
		// object with a value field.
		Total json.RawMessage `json:"total"`
		Hits  []Hit           `json:"hits"`
	} `json:"hits"`
}

// Hit is a single matched document.
type Hit struct {
	Index     string                     `json:"_index"`
	ID        string                     `json:"_id"`
	Source    map[string]json.RawMessage `json:"_source"`
	Highlight map[string][]string        `json:"highlight"`
}

// TotalHits returns the total match count, handling both the numeric
// and the {value} object shape.
func (r *SearchResponse) TotalHits() int64 {
	raw := r.Hits.Total
	if len(raw) == 0 {
		return 0
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	var obj struct {
		Value int64 `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value
	}
	return 0
}
