package handler

type ArticleResponse struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

type NewsResponse struct {
	News []ArticleResponse `json:"news"`
}
