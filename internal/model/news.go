package model

// NewsArticle is one headline. Description and Image are null when the
// provider has nothing for them.
type NewsArticle struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"publishedAt"`
	Source      string  `json:"source"`
	Image       *string `json:"image"`
}

// NewsDigest is the /api/news payload, newest first.
type NewsDigest struct {
	Articles []NewsArticle `json:"articles"`
}
