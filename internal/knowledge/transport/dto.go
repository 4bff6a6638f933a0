package transport

// Snippet is a retrieved document fragment.
type Snippet struct {
	Text   string  `json:"text"`
	Source string  `json:"source,omitempty"`
	Score  float64 `json:"score"`
}

// SearchRequest is the query-string form of the knowledge search endpoint.
type SearchRequest struct {
	Query string `form:"q" validate:"required,min=2,max=500"`
	K     int    `form:"k" validate:"omitempty,min=1,max=20"`
}

// SearchResponse is the response of the knowledge search endpoint.
type SearchResponse struct {
	Query    string    `json:"query"`
	Snippets []Snippet `json:"snippets"`
	Answer   string    `json:"answer"`
}

// IndexRequest is the body of the document indexing endpoint.
type IndexRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,max=20,dive,url"`
}

// IndexResponse acknowledges accepted indexing jobs.
type IndexResponse struct {
	Accepted int `json:"accepted"`
}
