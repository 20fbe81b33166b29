package domain

type SearchDoc struct {
	Key    string            `json:"key"`
	Fields map[string]string `json:"fields"`
}

type SearchResult struct {
	Total int64       `json:"total"`
	Docs  []SearchDoc `json:"docs"`
}
