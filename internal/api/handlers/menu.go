package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/orderapi/internal/catalog"
)

// MenuItemResponse represents one menu entry
type MenuItemResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Restaurant string `json:"restaurant"`
	Price      string `json:"price"`
}

// HandleGetMenu handles GET /v1/menu
func HandleGetMenu(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := cat.List()
		out := make([]MenuItemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, MenuItemResponse{
				ID:         it.ID,
				Name:       it.Name,
				Restaurant: it.Restaurant,
				Price:      it.Price.StringFixed(2),
			})
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}
