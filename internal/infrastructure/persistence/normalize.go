package persistence

import (
	"github.com/crm/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeDocument converts driver-specific BSON values into plain Go values
// suitable for JSON serialization: ObjectIDs become hex strings and BSON
// datetimes become time.Time in UTC. Nested documents and arrays are
// normalized recursively.
func NormalizeDocument(doc shared.Document) shared.Document {
	if doc == nil {
		return nil
	}
	out := make(shared.Document, len(doc))
	for k, v := range doc {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case shared.Document:
		return NormalizeDocument(t)
	case primitive.M:
		return NormalizeDocument(shared.Document(t))
	case map[string]any:
		return NormalizeDocument(shared.Document(t))
	case primitive.D:
		nested := make(shared.Document, len(t))
		for _, e := range t {
			nested[e.Key] = e.Value
		}
		return NormalizeDocument(nested)
	case primitive.A:
		return normalizeSlice(t)
	case []any:
		return normalizeSlice(t)
	default:
		return v
	}
}

func normalizeSlice(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = normalizeValue(v)
	}
	return out
}
