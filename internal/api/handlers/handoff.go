package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/cart"
	"github.com/spiceterra/webapi/internal/config"
	"github.com/spiceterra/webapi/internal/handoff"
	pkgerrors "github.com/spiceterra/webapi/pkg/errors"
)

// WhatsAppRequest optionally carries delivery details for the bill
type WhatsAppRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupportRequest carries the free-text support message
type SupportRequest struct {
	Message string `json:"message"`
}

// HandleWhatsAppBill handles POST /v1/handoff/whatsapp: formats the
// current cart as a bill and returns the deep link that opens it in a chat
func HandleWhatsAppBill(cfg *config.Config, store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WhatsAppRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		lines := store.Lines()
		if len(lines) == 0 {
			respondError(c, logger, &pkgerrors.ErrStepIncomplete{Step: "handoff", Reason: "cart is empty"})
			return
		}

		bill := handoff.FormatBill(cfg.Restaurant.Name, lines, store.Total(), &handoff.Delivery{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
		})
		c.JSON(http.StatusOK, gin.H{
			"link":    handoff.WhatsAppLink(cfg.Restaurant.WhatsAppPhone, bill),
			"message": bill,
		})
	}
}

// HandleWhatsAppSupport handles POST /v1/handoff/support
func HandleWhatsAppSupport(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SupportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		message := handoff.SupportMessage(cfg.Restaurant.Name, req.Message)
		c.JSON(http.StatusOK, gin.H{
			"link":    handoff.WhatsAppLink(cfg.Restaurant.WhatsAppPhone, message),
			"message": message,
		})
	}
}

// HandleReceipt handles GET /v1/handoff/receipt: serves the same bill text
// as a downloadable plain-text file
func HandleReceipt(cfg *config.Config, store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines := store.Lines()
		if len(lines) == 0 {
			respondError(c, logger, &pkgerrors.ErrStepIncomplete{Step: "handoff", Reason: "cart is empty"})
			return
		}

		bill := handoff.FormatBill(cfg.Restaurant.Name, lines, store.Total(), &handoff.Delivery{
			Name:    c.Query("name"),
			Phone:   c.Query("phone"),
			Address: c.Query("address"),
		})
		receipt := handoff.BillReceipt(cfg.Restaurant.Name, bill, time.Now())

		c.Header("Content-Disposition", `attachment; filename="`+receipt.Filename+`"`)
		c.Data(http.StatusOK, receipt.ContentType, []byte(receipt.Body))
	}
}
