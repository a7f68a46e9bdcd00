// Package catalog holds the pure catalog logic: tag reconciliation, the
// multi-field book filter, and the statistics aggregation. All functions are
// side-effect free transformations over values supplied by the caller.
package catalog

import (
	"strings"

	"bookr/internal/entity"

	"github.com/google/uuid"
)

// SameTagIdentity reports whether two tags are the same catalog entry.
// Identity is the opaque id; used while composing a draft, where the user
// toggles specific entries.
func SameTagIdentity(a, b entity.Tag) bool {
	return a.ID == b.ID
}

// SameTagName reports whether two tags collapse into one at display time.
// Tags are merged by case-insensitive name regardless of id or type.
func SameTagName(a, b entity.Tag) bool {
	return tagKey(a.Name) == tagKey(b.Name)
}

func tagKey(name string) string {
	return strings.ToLower(name)
}

// Reconcile merges the curated system tags with the tags embedded in saved
// books into one de-duplicated, display-ready sequence. Entries are keyed by
// lowercase name; the position of a key is fixed at its first occurrence,
// while the stored value is the most recently inserted one — a book-derived
// tag that collides with a system tag by name takes over the entry in place.
func Reconcile(systemTags, bookTags []entity.Tag) []entity.Tag {
	index := make(map[string]int, len(systemTags)+len(bookTags))
	merged := make([]entity.Tag, 0, len(systemTags)+len(bookTags))

	insert := func(tag entity.Tag) {
		key := tagKey(tag.Name)
		if pos, ok := index[key]; ok {
			merged[pos] = tag
			return
		}
		index[key] = len(merged)
		merged = append(merged, tag)
	}

	for _, tag := range systemTags {
		insert(tag)
	}
	for _, tag := range bookTags {
		insert(tag)
	}
	return merged
}

// BookTags flattens the tag snapshots of all books, in book order.
func BookTags(books []entity.DbBook) []entity.Tag {
	var tags []entity.Tag
	for _, book := range books {
		tags = append(tags, book.Tags...)
	}
	return tags
}

// UserGenerated returns the tags to show in the "user-generated" bucket: type
// user and name not currently claimed by any system tag. The check runs
// against the system tag set as it is now, not a reconciled snapshot, so
// removing a system tag reclassifies previously absorbed user tags.
func UserGenerated(tags, systemTags []entity.Tag) []entity.Tag {
	systemNames := make(map[string]struct{}, len(systemTags))
	for _, tag := range systemTags {
		systemNames[tagKey(tag.Name)] = struct{}{}
	}

	result := make([]entity.Tag, 0)
	for _, tag := range tags {
		if tag.Type != entity.TagTypeUser {
			continue
		}
		if _, taken := systemNames[tagKey(tag.Name)]; taken {
			continue
		}
		result = append(result, tag)
	}
	return result
}

// ToggleTag removes the tag from the draft when an entry with the same id is
// present, and appends it otherwise. Toggling is identity-based on purpose:
// while editing, the user picks specific entries; name-based collapsing only
// happens once the saved tags are displayed across the system/user boundary.
func ToggleTag(draft []entity.Tag, tag entity.Tag) []entity.Tag {
	for i, existing := range draft {
		if SameTagIdentity(existing, tag) {
			result := make([]entity.Tag, 0, len(draft)-1)
			result = append(result, draft[:i]...)
			return append(result, draft[i+1:]...)
		}
	}
	result := make([]entity.Tag, 0, len(draft)+1)
	result = append(result, draft...)
	return append(result, tag)
}

// AddUserTag appends a fresh user tag named rawName to the draft. The name is
// trimmed first; an empty name or a case-insensitive duplicate leaves the
// draft unchanged.
func AddUserTag(draft []entity.Tag, rawName string) []entity.Tag {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return draft
	}
	for _, existing := range draft {
		if tagKey(existing.Name) == tagKey(name) {
			return draft
		}
	}
	result := make([]entity.Tag, 0, len(draft)+1)
	result = append(result, draft...)
	return append(result, entity.Tag{
		ID:   uuid.NewString(),
		Name: name,
		Type: entity.TagTypeUser,
	})
}

// DedupeTags enforces the book invariant that no two snapshot entries share a
// case-insensitive name. The first occurrence wins; order is preserved.
func DedupeTags(tags []entity.Tag) []entity.Tag {
	seen := make(map[string]struct{}, len(tags))
	result := make([]entity.Tag, 0, len(tags))
	for _, tag := range tags {
		key := tagKey(tag.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, tag)
	}
	return result
}
