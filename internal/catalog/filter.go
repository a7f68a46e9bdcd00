package catalog

import (
	"strings"

	"bookr/internal/entity"
)

// Filter narrows books to those matching the free-text query. The empty query
// (exactly "", no trimming) returns the input as-is. Matching is
// case-insensitive substring containment over title, author, recommender name
// and every tag name; there is no ranking, so the result keeps the stable
// relative order of the input.
func Filter(books []entity.DbBook, query string) []entity.DbBook {
	if query == "" {
		return books
	}

	needle := strings.ToLower(query)
	result := make([]entity.DbBook, 0, len(books))
	for _, book := range books {
		if bookMatches(book, needle) {
			result = append(result, book)
		}
	}
	return result
}

func bookMatches(book entity.DbBook, needle string) bool {
	if strings.Contains(strings.ToLower(book.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(book.Author), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(book.RecommenderName), needle) {
		return true
	}
	for _, tag := range book.Tags {
		if strings.Contains(strings.ToLower(tag.Name), needle) {
			return true
		}
	}
	return false
}
