package wizard

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/cart"
	"github.com/spiceterra/webapi/internal/catalog"
	"github.com/spiceterra/webapi/internal/domain"
	"github.com/spiceterra/webapi/internal/validate"
	"github.com/spiceterra/webapi/pkg/errors"
)

const estimatedDelivery = "30-40 minutes"

// CartAck describes a user-visible acknowledgment of a cart mutation
type CartAck struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Updated  bool   `json:"updated"`
}

// Order drives the online ordering flow: browse, cart review, checkout,
// confirmation. The cart store injected at construction is the single
// source of truth for items and totals; the wizard issues commands to it
// and reads back, it keeps no copy of its own.
type Order struct {
	mu     sync.Mutex
	logger *zap.Logger
	cart   *cart.Store

	step     domain.OrderStep
	category string
	form     *validate.Form
	orderID  string

	newID func() string
}

func deliveryRules() map[string]validate.Rule {
	return map[string]validate.Rule{
		"name":         {Required: true, MinLength: 2},
		"phone":        {Required: true, Pattern: validate.PatternPhone},
		"address":      {Required: true, MinLength: 5},
		"instructions": {},
	}
}

// NewOrder creates an ordering wizard at the browse step
func NewOrder(cartStore *cart.Store, logger *zap.Logger) *Order {
	return &Order{
		logger:   logger,
		cart:     cartStore,
		step:     domain.OrderStepBrowse,
		category: "All",
		form: validate.NewForm(map[string]string{
			"name":         "",
			"phone":        "",
			"address":      "",
			"instructions": "",
		}, deliveryRules()),
		newID: fabricateOrderID,
	}
}

// Step returns the current wizard step
func (o *Order) Step() domain.OrderStep {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.step
}

// Category returns the active category facet
func (o *Order) Category() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.category
}

// SelectCategory switches the active category facet
func (o *Order) SelectCategory(category string) error {
	if !catalog.ValidCategory(category) {
		return &errors.ErrInvalidInput{Field: "category", Reason: "unknown category"}
	}
	o.mu.Lock()
	o.category = category
	o.mu.Unlock()
	return nil
}

// VisibleItems returns the catalog items matching the active facet
func (o *Order) VisibleItems() []domain.MenuItem {
	o.mu.Lock()
	category := o.category
	o.mu.Unlock()
	return catalog.ByCategory(category)
}

// AddToCart adds one unit of a catalog item to the cart store and returns
// the acknowledgment to show the user
func (o *Order) AddToCart(itemID int) (CartAck, error) {
	item, ok := catalog.ItemByID(itemID)
	if !ok {
		return CartAck{}, &errors.ErrNotFound{Resource: "menu item", ID: strconv.Itoa(itemID)}
	}

	existed := o.cart.Quantity(item.ID) > 0
	o.cart.AddItem(domain.CartLine{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
		Image:    item.Image,
	})

	ack := CartAck{Item: item.Name, Quantity: o.cart.Quantity(item.ID), Updated: existed}
	if ack.Updated {
		o.logger.Info("Updated cart", zap.String("item", ack.Item), zap.Int("quantity", ack.Quantity))
	} else {
		o.logger.Info("Added to cart", zap.String("item", ack.Item), zap.Int("quantity", ack.Quantity))
	}
	return ack, nil
}

// ChangeQuantity applies a quantity delta to a cart line; a result of zero
// removes the line
func (o *Order) ChangeQuantity(id int, delta int) {
	current := o.cart.Quantity(id)
	if current == 0 {
		return
	}
	next := current + delta
	if next < 0 {
		next = 0
	}
	o.cart.UpdateQuantity(id, next)
}

// RemoveItem drops a line from the cart entirely
func (o *Order) RemoveItem(id int) {
	o.cart.RemoveItem(id)
}

// EditDelivery records a delivery field value, optionally marking it blurred
func (o *Order) EditDelivery(name, value string, blur bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.form.Change(name, value)
	if blur {
		o.form.Blur(name)
	}
}

// DeliveryValues returns the current delivery field values
func (o *Order) DeliveryValues() map[string]string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.form.Values()
}

// DeliveryErrors returns the visible delivery field errors
func (o *Order) DeliveryErrors() map[string]string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.form.FieldErrors()
}

// Advance moves the wizard forward one step. The checkout edge requires a
// non-empty cart; the confirmation edge performs submit-time validation
// and fabricates the display order id.
func (o *Order) Advance() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.step {
	case domain.OrderStepBrowse:
		return o.transition(domain.OrderStepCartReview)

	case domain.OrderStepCartReview:
		if o.cart.Count() == 0 {
			return &errors.ErrStepIncomplete{Step: string(o.step), Reason: "cart is empty"}
		}
		return o.transition(domain.OrderStepCheckout)

	case domain.OrderStepCheckout:
		if errs := o.form.Validate(); !validate.Valid(errs) {
			return &errors.ErrFormInvalid{Fields: errs}
		}
		if err := o.transition(domain.OrderStepConfirmed); err != nil {
			return err
		}
		o.orderID = o.newID()
		o.logger.Info("Order confirmed",
			zap.String("order_id", o.orderID),
			zap.Int("items", o.cart.Count()),
			zap.Float64("total", o.cart.Total()),
		)
		return nil

	default:
		return &errors.ErrInvalidStateTransition{From: string(o.step), To: ""}
	}
}

// Confirm submits the checkout step; it is only valid from that step
func (o *Order) Confirm() error {
	if step := o.Step(); step != domain.OrderStepCheckout {
		return &errors.ErrInvalidStateTransition{From: string(step), To: string(domain.OrderStepConfirmed)}
	}
	return o.Advance()
}

// Back moves the wizard one step backward. Going back never rolls back cart
// mutations; items added while browsing stay in the cart.
func (o *Order) Back() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.step {
	case domain.OrderStepCartReview:
		return o.transition(domain.OrderStepBrowse)
	case domain.OrderStepCheckout:
		return o.transition(domain.OrderStepCartReview)
	default:
		return &errors.ErrInvalidStateTransition{From: string(o.step), To: ""}
	}
}

// Summary returns the read-only confirmation view; only available once the
// order has been confirmed
func (o *Order) Summary() (domain.OrderSummary, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.step != domain.OrderStepConfirmed {
		return domain.OrderSummary{}, &errors.ErrStepIncomplete{
			Step:   string(o.step),
			Reason: "order has not been confirmed",
		}
	}

	values := o.form.Values()
	return domain.OrderSummary{
		OrderID: o.orderID,
		Delivery: domain.DeliveryDetails{
			Name:         values["name"],
			Phone:        values["phone"],
			Address:      values["address"],
			Instructions: values["instructions"],
		},
		Lines:             o.cart.Lines(),
		Total:             o.cart.Total(),
		EstimatedDelivery: estimatedDelivery,
	}, nil
}

// StartOver clears the cart store, resets the delivery form and returns to
// the browse step
func (o *Order) StartOver() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.cart.Clear()
	o.form.Reset()
	o.step = domain.OrderStepBrowse
	o.category = "All"
	o.orderID = ""
}

func (o *Order) transition(next domain.OrderStep) error {
	if !o.step.CanTransitionTo(next) {
		return &errors.ErrInvalidStateTransition{From: string(o.step), To: string(next)}
	}
	o.step = next
	return nil
}

// fabricateOrderID produces a display-only order reference; it is not a
// server-issued id
func fabricateOrderID() string {
	return "SPT-" + strings.ToUpper(uuid.NewString()[:8])
}

