package models

type OptimizeRequest struct {
	// Text is the article to rewrite. Must be non-empty after trimming.
	Text string `json:"text"`
}

type GenerateRequest struct {
	// Tags seed the generated article. At most 4, none blank.
	Tags []string `json:"tags"`
}
