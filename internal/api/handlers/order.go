package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/cart"
	"github.com/spiceterra/webapi/internal/catalog"
	"github.com/spiceterra/webapi/internal/domain"
	"github.com/spiceterra/webapi/internal/wizard"
)

// OrderStateResponse represents the full ordering wizard state. The cart
// block is read from the cart store, never from a wizard-local copy.
type OrderStateResponse struct {
	Step       domain.OrderStep     `json:"step"`
	Category   string               `json:"category"`
	Categories []string             `json:"categories"`
	Items      []domain.MenuItem    `json:"items"`
	Cart       CartResponse         `json:"cart"`
	Delivery   map[string]string    `json:"delivery"`
	Errors     map[string]string    `json:"errors"`
	Summary    *domain.OrderSummary `json:"summary,omitempty"`
}

func orderState(o *wizard.Order, store *cart.Store) OrderStateResponse {
	items := o.VisibleItems()
	if items == nil {
		items = []domain.MenuItem{}
	}
	resp := OrderStateResponse{
		Step:       o.Step(),
		Category:   o.Category(),
		Categories: catalog.Categories,
		Items:      items,
		Cart:       cartResponse(store),
		Delivery:   o.DeliveryValues(),
		Errors:     o.DeliveryErrors(),
	}
	if summary, err := o.Summary(); err == nil {
		resp.Summary = &summary
	}
	return resp
}

// CategoryRequest switches the browse category facet
type CategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// OrderAddRequest adds one unit of a catalog item to the cart
type OrderAddRequest struct {
	ID int `json:"id" binding:"required"`
}

// QuantityDeltaRequest applies a quantity delta to a cart line
type QuantityDeltaRequest struct {
	ID    int `json:"id" binding:"required"`
	Delta int `json:"delta" binding:"required"`
}

// HandleOrderState handles GET /v1/order
func HandleOrderState(o *wizard.Order, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orderState(o, store))
	}
}

// HandleOrderCategory handles POST /v1/order/category
func HandleOrderCategory(o *wizard.Order, store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := o.SelectCategory(req.Category); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, orderState(o, store))
	}
}

// HandleOrderAddItem handles POST /v1/order/items
func HandleOrderAddItem(o *wizard.Order, store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OrderAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		ack, err := o.AddToCart(req.ID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ack":  ack,
			"cart": cartResponse(store),
		})
	}
}

// HandleOrderQuantity handles POST /v1/order/review/quantity
func HandleOrderQuantity(o *wizard.Order, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuantityDeltaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		o.ChangeQuantity(req.ID, req.Delta)
		c.JSON(http.StatusOK, orderState(o, store))
	}
}

// HandleOrderRemove handles POST /v1/order/review/remove
func HandleOrderRemove(o *wizard.Order, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OrderAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		o.RemoveItem(req.ID)
		c.JSON(http.StatusOK, orderState(o, store))
	}
}

// HandleOrderDelivery handles POST /v1/order/delivery
func HandleOrderDelivery(o *wizard.Order, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FieldEditRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		o.EditDelivery(req.Field, req.Value, req.Blur)
		c.JSON(http.StatusOK, orderState(o, store))
	}
}

// HandleOrderAdvance handles POST /v1/order/advance
func HandleOrderAdvance(o *wizard.Order, store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := o.Advance(); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, orderState(o, store))
	}
}

// HandleOrderBack handles POST /v1/order/back
func HandleOrderBack(o *wizard.Order, store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := o.Back(); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, orderState(o, store))
	}
}

// HandleOrderConfirm handles POST /v1/order/confirm
func HandleOrderConfirm(o *wizard.Order, store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := o.Confirm(); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, orderState(o, store))
	}
}

// HandleOrderRestart handles POST /v1/order/restart
func HandleOrderRestart(o *wizard.Order, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		o.StartOver()
		c.JSON(http.StatusOK, orderState(o, store))
	}
}
