package domain

// BookingStep represents a step in the table reservation flow
type BookingStep string

const (
	BookingStepGuests    BookingStep = "GUEST_COUNT"
	BookingStepDate      BookingStep = "DATE"
	BookingStepTime      BookingStep = "TIME"
	BookingStepContact   BookingStep = "CONTACT_DETAILS"
	BookingStepConfirmed BookingStep = "CONFIRMATION"
)

// IsValid checks if the booking step is valid
func (s BookingStep) IsValid() bool {
	switch s {
	case BookingStepGuests,
		BookingStepDate,
		BookingStepTime,
		BookingStepContact,
		BookingStepConfirmed:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a step transition is valid
func (s BookingStep) CanTransitionTo(next BookingStep) bool {
	switch s {
	case BookingStepGuests:
		return next == BookingStepDate
	case BookingStepDate:
		return next == BookingStepTime || next == BookingStepGuests
	case BookingStepTime:
		return next == BookingStepContact || next == BookingStepDate
	case BookingStepContact:
		return next == BookingStepConfirmed || next == BookingStepTime
	case BookingStepConfirmed:
		// Terminal; only restart returns to GUEST_COUNT
		return next == BookingStepGuests
	default:
		return false
	}
}

// OrderStep represents a step in the online ordering flow
type OrderStep string

const (
	OrderStepBrowse     OrderStep = "BROWSE"
	OrderStepCartReview OrderStep = "CART_REVIEW"
	OrderStepCheckout   OrderStep = "CHECKOUT"
	OrderStepConfirmed  OrderStep = "CONFIRMATION"
)

// IsValid checks if the order step is valid
func (s OrderStep) IsValid() bool {
	switch s {
	case OrderStepBrowse,
		OrderStepCartReview,
		OrderStepCheckout,
		OrderStepConfirmed:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a step transition is valid
func (s OrderStep) CanTransitionTo(next OrderStep) bool {
	switch s {
	case OrderStepBrowse:
		return next == OrderStepCartReview
	case OrderStepCartReview:
		return next == OrderStepCheckout || next == OrderStepBrowse
	case OrderStepCheckout:
		return next == OrderStepConfirmed || next == OrderStepCartReview
	case OrderStepConfirmed:
		// Terminal; restart returns to BROWSE
		return next == OrderStepBrowse
	default:
		return false
	}
}
