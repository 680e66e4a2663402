package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kacchi-backend/internal/selection"
)

const sessionHeader = "X-Session-Id"

// sessionID returns the caller's session id, minting one when absent. The id
// is echoed back so the storefront can persist it for the browsing session.
func sessionID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(sessionHeader))
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(sessionHeader, id)
	return id
}

type selectionRequest struct {
	PackageID string  `json:"packageId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price"`
}

// PUT /selection — record the visitor's package choice (last write wins).
func PutSelection(store *selection.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req selectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		id := sessionID(c)
		store.Set(id, selection.Selection{
			PackageID: req.PackageID,
			Quantity:  req.Quantity,
			Price:     req.Price,
		})

		c.JSON(http.StatusOK, gin.H{"sessionId": id})
	}
}

// GET /selection — the current choice, or 404 when nothing was picked yet.
func GetSelection(store *selection.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionID(c)
		sel := store.Get(id)
		if sel == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no package selected"})
			return
		}
		c.JSON(http.StatusOK, sel)
	}
}
