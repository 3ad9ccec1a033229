package wizard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/cart"
	"github.com/spiceterra/webapi/internal/domain"
	"github.com/spiceterra/webapi/internal/storage"
	pkgerrors "github.com/spiceterra/webapi/pkg/errors"
)

func newTestOrder(t *testing.T) (*Order, *cart.Store) {
	t.Helper()
	store := cart.NewStore(storage.NewMemoryStore(), zap.NewNop())
	return NewOrder(store, zap.NewNop()), store
}

func fillDelivery(o *Order, name, phone, address string) {
	o.EditDelivery("name", name, true)
	o.EditDelivery("phone", phone, true)
	o.EditDelivery("address", address, true)
}

func TestCategoryFacet(t *testing.T) {
	o, _ := newTestOrder(t)
	require.Equal(t, "All", o.Category())
	assert.Len(t, o.VisibleItems(), 6)

	require.NoError(t, o.SelectCategory("Main Course"))
	for _, item := range o.VisibleItems() {
		assert.Equal(t, "Main Course", item.Category)
	}
	assert.Len(t, o.VisibleItems(), 3)

	assert.Error(t, o.SelectCategory("Sushi"))
	assert.Equal(t, "Main Course", o.Category())
}

func TestAddToCartAcknowledgments(t *testing.T) {
	o, store := newTestOrder(t)

	ack, err := o.AddToCart(1)
	require.NoError(t, err)
	assert.Equal(t, CartAck{Item: "Butter Chicken", Quantity: 1, Updated: false}, ack)

	ack, err = o.AddToCart(1)
	require.NoError(t, err)
	assert.Equal(t, CartAck{Item: "Butter Chicken", Quantity: 2, Updated: true}, ack)

	require.Len(t, store.Lines(), 1)
	assert.Equal(t, 900.0, store.Total())

	_, err = o.AddToCart(999)
	var notFound *pkgerrors.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestRepeatAddThenZeroQuantityEmptiesCart(t *testing.T) {
	o, store := newTestOrder(t)

	_, err := o.AddToCart(1)
	require.NoError(t, err)
	_, err = o.AddToCart(1)
	require.NoError(t, err)

	require.Len(t, store.Lines(), 1)
	require.Equal(t, 2, store.Quantity(1))
	require.Equal(t, 900.0, store.Total())

	store.UpdateQuantity(1, 0)
	assert.Empty(t, store.Lines())
}

func TestChangeQuantityDeltas(t *testing.T) {
	o, store := newTestOrder(t)
	_, err := o.AddToCart(3)
	require.NoError(t, err)

	o.ChangeQuantity(3, 1)
	assert.Equal(t, 2, store.Quantity(3))

	o.ChangeQuantity(3, -1)
	o.ChangeQuantity(3, -1)
	assert.Empty(t, store.Lines())

	// Delta against an absent line is a no-op
	o.ChangeQuantity(3, -1)
	assert.Empty(t, store.Lines())
}

func TestCheckoutGuardRequiresItems(t *testing.T) {
	o, _ := newTestOrder(t)
	require.NoError(t, o.Advance())
	require.Equal(t, domain.OrderStepCartReview, o.Step())

	err := o.Advance()
	var incomplete *pkgerrors.ErrStepIncomplete
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, domain.OrderStepCartReview, o.Step())
}

func TestInvalidDeliveryBlocksConfirmation(t *testing.T) {
	o, _ := newTestOrder(t)
	_, err := o.AddToCart(1)
	require.NoError(t, err)
	require.NoError(t, o.Advance())
	require.NoError(t, o.Advance())
	require.Equal(t, domain.OrderStepCheckout, o.Step())

	fillDelivery(o, "Asha Rao", "9876543210", "12A") // address below min length

	err = o.Confirm()
	var invalid *pkgerrors.ErrFormInvalid
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Minimum 5 characters required", invalid.Fields["address"])
	assert.Equal(t, domain.OrderStepCheckout, o.Step())
}

func TestOrderScenario(t *testing.T) {
	o, store := newTestOrder(t)

	_, err := o.AddToCart(1)
	require.NoError(t, err)
	_, err = o.AddToCart(3)
	require.NoError(t, err)
	_, err = o.AddToCart(3)
	require.NoError(t, err)

	require.NoError(t, o.Advance()) // browse -> review
	require.NoError(t, o.Advance()) // review -> checkout

	fillDelivery(o, "Asha Rao", "9876543210", "14 MG Road, Indiranagar")
	require.NoError(t, o.Confirm())
	require.Equal(t, domain.OrderStepConfirmed, o.Step())

	summary, err := o.Summary()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(summary.OrderID, "SPT-"), "order id %q", summary.OrderID)
	assert.Len(t, summary.OrderID, len("SPT-")+8)
	assert.Equal(t, "Asha Rao", summary.Delivery.Name)
	assert.Equal(t, "14 MG Road, Indiranagar", summary.Delivery.Address)
	assert.Equal(t, 690.0, summary.Total)
	assert.Len(t, summary.Lines, 2)

	o.StartOver()
	assert.Equal(t, domain.OrderStepBrowse, o.Step())
	assert.Empty(t, store.Lines())
	assert.Empty(t, o.DeliveryValues()["name"])
	assert.Equal(t, "All", o.Category())
}

func TestBackNeverRollsBackCart(t *testing.T) {
	o, store := newTestOrder(t)
	_, err := o.AddToCart(1)
	require.NoError(t, err)
	require.NoError(t, o.Advance())
	require.NoError(t, o.Advance())

	require.NoError(t, o.Back())
	require.NoError(t, o.Back())
	assert.Equal(t, domain.OrderStepBrowse, o.Step())
	assert.Equal(t, 1, store.Quantity(1))
}

func TestCheckoutSummaryReadsStoreDirectly(t *testing.T) {
	o, store := newTestOrder(t)
	_, err := o.AddToCart(1)
	require.NoError(t, err)
	require.NoError(t, o.Advance())
	require.NoError(t, o.Advance())

	// A mutation through the store is immediately visible to the wizard
	store.AddItem(domain.CartLine{ID: 6, Name: "Gulab Jamun", Price: 150, Quantity: 2})

	fillDelivery(o, "Asha Rao", "9876543210", "14 MG Road, Indiranagar")
	require.NoError(t, o.Confirm())

	summary, err := o.Summary()
	require.NoError(t, err)
	assert.Equal(t, 750.0, summary.Total)
}
