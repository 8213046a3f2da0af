package v1

import (
	"github.com/centsible/backend/internal/httputil"
	ledger_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID ledger_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// bindURI parses the id URL parameter. Values that are not valid UUIDs are
// reported as httputil.ErrInvalidUUID instead of the raw binding error.
func bindURI(c *gin.Context, uri *URIID) error {
	if err := c.ShouldBindUri(uri); err != nil {
		return httputil.ErrInvalidUUID
	}

	return nil
}

// Pagination contains information about the pagination for list endpoint responses.
type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}
