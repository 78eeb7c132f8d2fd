package catalog

import (
	"context"
	"strings"

	"bookexplorer/internal/platform/openlibrary"
)

const authorKeyPrefix = "/authors/"

// UpstreamClient is the slice of the Open Library client the gateway needs.
type UpstreamClient interface {
	Search(ctx context.Context, q string, page int) (*openlibrary.SearchResult, error)
	GetBook(ctx context.Context, olid string) (*openlibrary.BookData, error)
}

type Service struct {
	ol UpstreamClient
}

func NewService(ol UpstreamClient) *Service {
	return &Service{ol: ol}
}

func (s *Service) Search(ctx context.Context, q string, limit, page int) (SearchResponse, error) {
	res, err := s.ol.Search(ctx, q, page)
	if err != nil {
		return SearchResponse{}, err
	}

	docs := res.Docs
	if len(docs) > limit {
		docs = docs[:limit]
	}

	items := make([]SearchItem, 0, len(docs))
	for _, d := range docs {
		olid := deriveOLID(d)
		if olid == "" {
			continue
		}
		authors := d.AuthorNames
		if authors == nil {
			authors = []string{}
		}
		items = append(items, SearchItem{
			ID:               olid,
			Title:            d.Title,
			Authors:          authors,
			FirstPublishYear: d.FirstPublishYear,
		})
	}

	return SearchResponse{
		Query:      q,
		Page:       page,
		Limit:      limit,
		TotalFound: res.NumFound, // upstream count, not len(items)
		Items:      items,
	}, nil
}

// deriveOLID picks a stable identifier from a heterogeneous search doc.
// Preference order: single edition key, first of the edition key list,
// trailing segment of the work key. Empty means no identifier at all.
func deriveOLID(d openlibrary.SearchDoc) string {
	if d.CoverEditionKey != "" {
		return d.CoverEditionKey
	}
	if len(d.EditionKeys) > 0 && d.EditionKeys[0] != "" {
		return d.EditionKeys[0]
	}
	if d.Key != "" {
		parts := strings.Split(d.Key, "/")
		return parts[len(parts)-1]
	}
	return ""
}

func (s *Service) GetDetails(ctx context.Context, olid string) (BookDetail, error) {
	book, err := s.ol.GetBook(ctx, olid)
	if err != nil {
		return BookDetail{}, err
	}

	authors := make([]string, 0, len(book.Authors))
	for _, a := range book.Authors {
		if a.Key == "" {
			continue
		}
		authors = append(authors, strings.TrimPrefix(a.Key, authorKeyPrefix))
	}

	subjects := book.Subjects
	if subjects == nil {
		subjects = []string{}
	}

	return BookDetail{
		ID:          olid,
		Title:       book.Title,
		Description: normalizeDescription(book.Description),
		Authors:     authors,
		Subjects:    subjects,
		PublishDate: book.PublishDate,
	}, nil
}

// normalizeDescription flattens the two shapes Open Library uses for
// descriptions: a bare string, or a text object {"type": ..., "value": ...}.
func normalizeDescription(raw interface{}) *string {
	switch v := raw.(type) {
	case string:
		return &v
	case map[string]interface{}:
		if s, ok := v["value"].(string); ok {
			return &s
		}
	}
	return nil
}
