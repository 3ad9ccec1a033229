package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/cart"
	"github.com/spiceterra/webapi/internal/catalog"
	"github.com/spiceterra/webapi/internal/domain"
	pkgerrors "github.com/spiceterra/webapi/pkg/errors"
)

// CartResponse represents the cart with its derived totals
type CartResponse struct {
	Items []domain.CartLine `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

func cartResponse(store *cart.Store) CartResponse {
	items := store.Lines()
	if items == nil {
		items = []domain.CartLine{}
	}
	return CartResponse{
		Items: items,
		Total: store.Total(),
		Count: store.Count(),
	}
}

// AddItemRequest represents the add-to-cart payload
type AddItemRequest struct {
	ID       int `json:"id" binding:"required"`
	Quantity int `json:"quantity"`
}

// UpdateQuantityRequest represents the absolute quantity set payload
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// HandleAddItem handles POST /v1/cart/items
func HandleAddItem(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		item, ok := catalog.ItemByID(req.ID)
		if !ok {
			respondError(c, logger, &pkgerrors.ErrNotFound{Resource: "menu item", ID: strconv.Itoa(req.ID)})
			return
		}

		quantity := req.Quantity
		if quantity < 1 {
			quantity = 1
		}
		store.AddItem(domain.CartLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: quantity,
			Image:    item.Image,
		})

		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// HandleUpdateQuantity handles PUT /v1/cart/items/:id/quantity
func HandleUpdateQuantity(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
			return
		}

		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		store.UpdateQuantity(id, req.Quantity)
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// HandleRemoveItem handles DELETE /v1/cart/items/:id
func HandleRemoveItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
			return
		}

		store.RemoveItem(id)
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Clear()
		c.JSON(http.StatusOK, cartResponse(store))
	}
}
