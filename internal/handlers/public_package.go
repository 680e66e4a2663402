package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kacchi-backend/internal/catalog"
	"kacchi-backend/internal/models"
)

/*
GET /packages
- Canonical order: 4-person, 20-person, 50-person.
- Feature list and price-per-person derived on every load.
- A storage failure surfaces an EMPTY catalog (logged, no retry); the
  storefront renders nothing rather than an error page.
*/
func GetPackages(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /packages"
		defer handlePanic(c, route)

		packages := cat.Load(c.Request.Context())
		if packages == nil {
			packages = []models.Package{}
		}

		log.Printf("[%s] returning %d packages", route, len(packages))
		c.JSON(http.StatusOK, packages)
	}
}

/*
GET /packages/stream
- Server-sent events: one "catalog" event with the current list, then an
  "update" event per changed row pushed from the change stream.
- The subscription is released when the client disconnects.
*/
func StreamPackages(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		ch := cat.Subscribe()
		defer cat.Unsubscribe(ch)

		c.SSEvent("catalog", cat.Snapshot())
		c.Writer.Flush()

		clientGone := c.Request.Context().Done()
		c.Stream(func(w io.Writer) bool {
			select {
			case pkg, ok := <-ch:
				if !ok {
					return false
				}
				c.SSEvent("update", pkg)
				return true
			case <-clientGone:
				return false
			}
		})
	}
}
