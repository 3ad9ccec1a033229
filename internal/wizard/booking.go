// Package wizard implements the two guarded multi-step flows: table
// reservation and online ordering. Each wizard is an explicit state machine
// over the step enums in the domain package; every forward edge carries a
// completion guard and transitions outside the table are rejected.
package wizard

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/domain"
	"github.com/spiceterra/webapi/internal/validate"
	"github.com/spiceterra/webapi/pkg/errors"
)

// TimeSlots are the fixed reservation slots offered at the time step
var TimeSlots = []string{
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"1:00 PM", "1:30 PM", "2:00 PM", "6:00 PM",
	"6:30 PM", "7:00 PM", "7:30 PM", "8:00 PM",
	"8:30 PM", "9:00 PM", "9:30 PM", "10:00 PM",
}

const (
	minGuests     = 1
	maxGuests     = 20
	defaultGuests = 2
)

// Booking drives the table reservation flow: guest count, date, time slot,
// contact details, confirmation.
type Booking struct {
	mu     sync.Mutex
	logger *zap.Logger

	step   domain.BookingStep
	guests int
	date   time.Time
	slot   string
	form   *validate.Form

	now func() time.Time
}

func bookingContactRules() map[string]validate.Rule {
	return map[string]validate.Rule{
		"name":            {Required: true, MinLength: 2},
		"email":           {Required: true, Pattern: validate.PatternEmail},
		"phone":           {Required: true, Pattern: validate.PatternPhone},
		"specialRequests": {},
	}
}

// NewBooking creates a reservation wizard at the guest-count step
func NewBooking(logger *zap.Logger) *Booking {
	return &Booking{
		logger: logger,
		step:   domain.BookingStepGuests,
		guests: defaultGuests,
		form: validate.NewForm(map[string]string{
			"name":            "",
			"email":           "",
			"phone":           "",
			"specialRequests": "",
		}, bookingContactRules()),
		now: time.Now,
	}
}

// Step returns the current wizard step
func (b *Booking) Step() domain.BookingStep {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.step
}

// Guests returns the current guest count
func (b *Booking) Guests() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.guests
}

// IncrementGuests raises the guest count, clamped at 20
func (b *Booking) IncrementGuests() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.guests < maxGuests {
		b.guests++
	}
	return b.guests
}

// DecrementGuests lowers the guest count, clamped at 1
func (b *Booking) DecrementGuests() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.guests > minGuests {
		b.guests--
	}
	return b.guests
}

// Date returns the chosen date, zero when none has been picked yet
func (b *Booking) Date() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.date
}

// SelectDate picks the reservation date. Days before today are rejected.
func (b *Booking) SelectDate(date time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	today := dayOf(b.now())
	if dayOf(date).Before(today) {
		return &errors.ErrInvalidInput{Field: "date", Reason: "date must be today or later"}
	}
	b.date = dayOf(date)
	return nil
}

// TimeSlot returns the chosen slot, empty when none has been picked yet
func (b *Booking) TimeSlot() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.slot
}

// SelectTime picks one slot from the fixed slot list
func (b *Booking) SelectTime(slot string) error {
	for _, s := range TimeSlots {
		if s == slot {
			b.mu.Lock()
			b.slot = slot
			b.mu.Unlock()
			return nil
		}
	}
	return &errors.ErrInvalidInput{Field: "time", Reason: "unknown time slot"}
}

// EditContact records a contact field value, optionally marking it blurred
func (b *Booking) EditContact(name, value string, blur bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.form.Change(name, value)
	if blur {
		b.form.Blur(name)
	}
}

// BlurContact marks a contact field touched and revalidates it
func (b *Booking) BlurContact(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.form.Blur(name)
}

// ContactValues returns the current contact field values
func (b *Booking) ContactValues() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.form.Values()
}

// ContactErrors returns the visible contact field errors
func (b *Booking) ContactErrors() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.form.FieldErrors()
}

// Advance moves the wizard forward one step. Each edge checks its
// completion guard; from the contact step it performs submit-time
// validation of every field and only then confirms.
func (b *Booking) Advance() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.step {
	case domain.BookingStepGuests:
		return b.transition(domain.BookingStepDate)

	case domain.BookingStepDate:
		if b.date.IsZero() {
			return &errors.ErrStepIncomplete{Step: string(b.step), Reason: "a date must be chosen"}
		}
		return b.transition(domain.BookingStepTime)

	case domain.BookingStepTime:
		if b.slot == "" {
			return &errors.ErrStepIncomplete{Step: string(b.step), Reason: "a time slot must be chosen"}
		}
		return b.transition(domain.BookingStepContact)

	case domain.BookingStepContact:
		if errs := b.form.Validate(); !validate.Valid(errs) {
			return &errors.ErrFormInvalid{Fields: errs}
		}
		if err := b.transition(domain.BookingStepConfirmed); err != nil {
			return err
		}
		b.logger.Info("Reservation confirmed",
			zap.Int("guests", b.guests),
			zap.String("date", b.date.Format("2006-01-02")),
			zap.String("time", b.slot),
		)
		return nil

	default:
		return &errors.ErrInvalidStateTransition{From: string(b.step), To: ""}
	}
}

// Confirm submits the contact step; it is only valid from that step
func (b *Booking) Confirm() error {
	if step := b.Step(); step != domain.BookingStepContact {
		return &errors.ErrInvalidStateTransition{From: string(step), To: string(domain.BookingStepConfirmed)}
	}
	return b.Advance()
}

// Back moves the wizard one step backward. Backward edges are always
// permitted and never re-validate completed steps.
func (b *Booking) Back() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.step {
	case domain.BookingStepDate:
		return b.transition(domain.BookingStepGuests)
	case domain.BookingStepTime:
		return b.transition(domain.BookingStepDate)
	case domain.BookingStepContact:
		return b.transition(domain.BookingStepTime)
	default:
		return &errors.ErrInvalidStateTransition{From: string(b.step), To: ""}
	}
}

// Summary returns the read-only confirmation view; only available once the
// wizard has reached confirmation
func (b *Booking) Summary() (domain.BookingSummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.step != domain.BookingStepConfirmed {
		return domain.BookingSummary{}, &errors.ErrStepIncomplete{
			Step:   string(b.step),
			Reason: "booking has not been confirmed",
		}
	}

	values := b.form.Values()
	return domain.BookingSummary{
		Guests: b.guests,
		Date:   b.date,
		Time:   b.slot,
		Contact: domain.ContactDetails{
			Name:            values["name"],
			Email:           values["email"],
			Phone:           values["phone"],
			SpecialRequests: values["specialRequests"],
		},
	}, nil
}

// StartOver resets every field to its initial value and returns to the
// guest-count step
func (b *Booking) StartOver() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.step = domain.BookingStepGuests
	b.guests = defaultGuests
	b.date = time.Time{}
	b.slot = ""
	b.form.Reset()
}

func (b *Booking) transition(next domain.BookingStep) error {
	if !b.step.CanTransitionTo(next) {
		return &errors.ErrInvalidStateTransition{From: string(b.step), To: string(next)}
	}
	b.step = next
	return nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
