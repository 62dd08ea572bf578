// Package news defines the article list domain.
package news

// DefaultTag is applied to articles delivered without a tag.
const DefaultTag = "Tech"

// DefaultSource is applied to articles delivered without a source.
const DefaultSource = "Unknown"

// Article is one entry of the latest-news page.
type Article struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Summary     string `json:"summary"`
	Tag         string `json:"tag"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
}

// WithDefaults fills the tag and source fields when they are empty.
func (a Article) WithDefaults() Article {
	if a.Tag == "" {
		a.Tag = DefaultTag
	}
	if a.Source == "" {
		a.Source = DefaultSource
	}
	return a
}

// Page is one fetched page of articles, in server order.
type Page struct {
	Articles []Article `json:"data"`
}
