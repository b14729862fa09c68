package crm

import "github.com/crm/backend/internal/domain/shared"

// putString adds key only when value is non-empty; omitted optional fields
// stay absent from the stored document.
func putString(doc shared.Document, key, value string) {
	if value != "" {
		doc[key] = value
	}
}

// putPtr adds key only when the field was provided.
func putPtr[T any](doc shared.Document, key string, value *T) {
	if value != nil {
		doc[key] = *value
	}
}

// tagList normalizes a nil tag slice to an empty one so the stored document
// always carries a tags array.
func tagList(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// boolOrDefault resolves an optional boolean against its schema default.
func boolOrDefault(value *bool, def bool) bool {
	if value == nil {
		return def
	}
	return *value
}
