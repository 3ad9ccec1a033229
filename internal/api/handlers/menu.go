package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spiceterra/webapi/internal/catalog"
	"github.com/spiceterra/webapi/internal/content"
	"github.com/spiceterra/webapi/internal/domain"
)

// HandleMenu handles GET /v1/menu
func HandleMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"entries":    catalog.Menu(),
			"categories": catalog.MenuCategories(),
		})
	}
}

// HandleMenuSearch handles GET /v1/menu/search
func HandleMenuSearch() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.SearchFilter{
			Term:     c.Query("q"),
			Category: c.Query("category"),
			Dietary:  c.Query("dietary"),
		}
		entries := catalog.SearchMenu(filter)
		if entries == nil {
			entries = []domain.MenuEntry{}
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
	}
}

// HandleCatalog handles GET /v1/catalog
func HandleCatalog() gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		if category == "" {
			category = "All"
		}
		items := catalog.ByCategory(category)
		if items == nil {
			items = []domain.MenuItem{}
		}
		c.JSON(http.StatusOK, gin.H{
			"items":      items,
			"categories": catalog.Categories,
		})
	}
}

// HandleTestimonials handles GET /v1/content/testimonials
func HandleTestimonials() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"testimonials": content.Testimonials()})
	}
}

// HandleOffers handles GET /v1/content/offers
func HandleOffers() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"offers":            content.Offers(),
			"festival_specials": content.FestivalSpecials(),
		})
	}
}
