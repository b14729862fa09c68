package handler

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// defaultListLimit is applied when a list request carries no limit parameter.
const defaultListLimit = 50

// errBadLimit reports a limit parameter that is not a non-negative integer.
var errBadLimit = errors.New("limit must be a non-negative integer")

// parseLimit reads the limit query parameter. Absent means the default;
// zero means no limit, matching the store's cursor semantics.
func parseLimit(c *gin.Context) (int64, error) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		return 0, errBadLimit
	}
	return limit, nil
}

// containsCI builds a case-insensitive substring match for free-text search.
// The term is quoted so regex metacharacters in user input match literally.
func containsCI(term string) shared.Document {
	return shared.Document{"$regex": regexp.QuoteMeta(term), "$options": "i"}
}

// decodeStrict decodes a partial-update payload. Unknown fields are rejected
// so mistyped keys never reach storage, then the provided fields are run
// through the binding validator.
func decodeStrict(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(dst)
}

// emptyIfNil keeps list responses as JSON arrays even with no matches.
func emptyIfNil(docs []shared.Document) []shared.Document {
	if docs == nil {
		return []shared.Document{}
	}
	return docs
}
