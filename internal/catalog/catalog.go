package catalog

// SearchItem is one normalized search hit. ID is always present: docs where
// no identifier can be derived are dropped before they reach callers.
type SearchItem struct {
	ID               string   `json:"id"`
	Title            *string  `json:"title"`
	Authors          []string `json:"authors"`
	FirstPublishYear *int     `json:"first_publish_year"`
}

type SearchResponse struct {
	Query      string       `json:"query"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalFound int          `json:"total_found"`
	Items      []SearchItem `json:"items"`
}

type BookDetail struct {
	ID          string   `json:"id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Authors     []string `json:"authors"`
	Subjects    []string `json:"subjects"`
	PublishDate *string  `json:"publish_date"`
}
