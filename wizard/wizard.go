// Package wizard implements the five-step reservation flow: date/time,
// guest count, table, customer info, confirmation. A Draft accumulates
// the answers in memory; each step gates its own forward transition and
// nothing is persisted between visits.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/verdantea/teahouse-web/models"
)

type Step int

const (
	StepSelectDate Step = iota + 1
	StepSelectGuests
	StepSelectTable
	StepCustomerInfo
	StepConfirm
	StepSuccess
)

const (
	// Operating hours, lower bound inclusive, upper exclusive.
	OpenHour  = 11
	CloseHour = 22

	MinGuests = 1
	MaxGuests = 8

	// A slot must be at least this far in the future to be bookable.
	SafetyMargin = 10 * time.Minute

	// Reservations can be made up to three months ahead.
	MaxAdvanceMonths = 3
)

// TimeSlots is the fixed half-hour grid offered on the date step. The
// house closes between lunch and dinner service.
var TimeSlots = []string{
	"11:00", "11:30", "12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00",
}

var (
	ErrInvalidDateTime = errors.New("date and time outside the bookable window")
	ErrTableNotOffered = errors.New("table is not in the available set")
	ErrMissingInfo     = errors.New("name and phone number are required")
	ErrNotOnConfirm    = errors.New("wizard is not on the confirm step")
	ErrIncompleteDraft = errors.New("draft is missing required fields")
	ErrSubmitInFlight  = errors.New("submission already in progress")
)

// Draft is the transient reservation record built up across steps.
// Fields survive back-navigation so earlier answers can be edited
// without losing later ones.
type Draft struct {
	Step           Step
	DateTime       time.Time
	Time           string
	NumberOfGuests int
	TableID        uint
	CustomerName   string
	CustomerPhone  string

	submitting atomic.Bool
}

func NewDraft() *Draft {
	return &Draft{Step: StepSelectDate}
}

// Reset discards every answer and returns to the first step.
func (d *Draft) Reset() {
	d.Step = StepSelectDate
	d.DateTime = time.Time{}
	d.Time = ""
	d.NumberOfGuests = 0
	d.TableID = 0
	d.CustomerName = ""
	d.CustomerPhone = ""
}

// Back moves one step toward the start. Success has no back transition.
func (d *Draft) Back() {
	if d.Step > StepSelectDate && d.Step < StepSuccess {
		d.Step--
	}
}

// ValidDateTime reports whether dt is a bookable slot as seen from now:
// inside operating hours, past the safety margin, and not beyond the
// advance-booking horizon.
func ValidDateTime(now, dt time.Time) bool {
	if dt.Hour() < OpenHour || dt.Hour() >= CloseHour {
		return false
	}
	if !dt.After(now.Add(SafetyMargin)) {
		return false
	}
	if dt.After(now.AddDate(0, MaxAdvanceMonths, 0)) {
		return false
	}
	return true
}

// ClampGuests forces a guest count into [MinGuests, MaxGuests]. Out of
// range values are clamped, never rejected.
func ClampGuests(n int) int {
	if n < MinGuests {
		return MinGuests
	}
	if n > MaxGuests {
		return MaxGuests
	}
	return n
}

// SetDateTime validates and records the chosen slot, then advances.
// date is "2006-01-02", slot is "15:04" from the slot grid.
func (d *Draft) SetDateTime(now time.Time, date, slot string) error {
	dt, err := time.ParseInLocation("2006-01-02 15:04", date+" "+slot, now.Location())
	if err != nil {
		return ErrInvalidDateTime
	}
	if !ValidDateTime(now, dt) {
		return ErrInvalidDateTime
	}

	d.DateTime = dt
	d.Time = slot
	d.Step = StepSelectGuests
	return nil
}

// SetGuests clamps and records the guest count, then advances. A table
// chosen for a different party size is reconciled against the refreshed
// availability on the table step, not here.
func (d *Draft) SetGuests(n int) {
	d.NumberOfGuests = ClampGuests(n)
	d.Step = StepSelectTable
}

// ReconcileTable silently clears a previously chosen table that is no
// longer in the freshly fetched available set.
func (d *Draft) ReconcileTable(available []models.CafeTable) {
	if d.TableID == 0 {
		return
	}
	for _, t := range available {
		if t.ID == d.TableID {
			return
		}
	}
	d.TableID = 0
}

// SetTable records a table selection, which must come from the offered
// set, then advances.
func (d *Draft) SetTable(id uint, available []models.CafeTable) error {
	for _, t := range available {
		if t.ID == id {
			d.TableID = id
			d.Step = StepCustomerInfo
			return nil
		}
	}
	return ErrTableNotOffered
}

// SetCustomer records the trimmed contact details, then advances.
func (d *Draft) SetCustomer(name, phone string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return ErrMissingInfo
	}

	d.CustomerName = name
	d.CustomerPhone = phone
	d.Step = StepConfirm
	return nil
}

// Complete reports whether every field needed for submission is present.
func (d *Draft) Complete() bool {
	return !d.DateTime.IsZero() &&
		d.Time != "" &&
		d.NumberOfGuests >= MinGuests &&
		d.TableID != 0 &&
		d.CustomerName != "" &&
		d.CustomerPhone != ""
}

// CustomerCreator and ReservationCreator are the two backend operations
// the final submission depends on, in that order.
type CustomerCreator interface {
	CreateCustomer(ctx context.Context, dto models.CreateCustomer) (models.Customer, error)
}

type ReservationCreator interface {
	CreateReservation(ctx context.Context, dto models.CreateReservation) (models.Reservation, error)
}

// Submit performs the two dependent create calls: customer first, then
// the reservation referencing the returned customer id. Either failure
// leaves the draft intact on the confirm step so the user can retry.
// A submitting flag makes this at-most-once per attempt; there is no
// automatic retry.
func (d *Draft) Submit(ctx context.Context, customers CustomerCreator, reservations ReservationCreator) error {
	if d.Step != StepConfirm {
		return ErrNotOnConfirm
	}
	if !d.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer d.submitting.Store(false)

	if !d.Complete() {
		return ErrIncompleteDraft
	}

	customer, err := customers.CreateCustomer(ctx, models.CreateCustomer{
		Name:        d.CustomerName,
		PhoneNumber: d.CustomerPhone,
	})
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}

	_, err = reservations.CreateReservation(ctx, models.CreateReservation{
		StartTime:      d.DateTime.Format(time.RFC3339),
		NumberOfGuests: d.NumberOfGuests,
		CafeTableID:    d.TableID,
		CustomerID:     customer.ID,
	})
	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}

	d.Step = StepSuccess
	return nil
}

// Submitting reports whether a submission is currently in flight, used
// to disable the confirm control.
func (d *Draft) Submitting() bool {
	return d.submitting.Load()
}
