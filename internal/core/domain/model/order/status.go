package order

import (
	"fmt"
	"time"

	"quickdish/internal/pkg/errs"
)

// StatusFlag is the discriminant of the order status union. It is the value
// persisted in the orders table and used for filtering; the full status
// payload lives in the Status variants below.
type StatusFlag int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized StatusFlag values.
	StatusUnknown StatusFlag = iota

	// StatusOrdered is the initial status when an order is first placed.
	// It is the only status without a satellite payload.
	StatusOrdered

	// StatusPreparing indicates the merchant has started preparing the order.
	StatusPreparing

	// StatusReady indicates the order is ready for pickup by the customer.
	StatusReady

	// StatusSettled indicates the customer has received and settled the order.
	// This is a terminal status.
	StatusSettled

	// StatusCancelled indicates the order was cancelled by the customer or
	// the merchant. This is a terminal status.
	StatusCancelled
)

func getStatusFlagStrings() map[StatusFlag]string {
	return map[StatusFlag]string{
		StatusOrdered:   "ORDERED",
		StatusPreparing: "PREPARING",
		StatusReady:     "READY",
		StatusSettled:   "SETTLED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFlagFromString parses a StatusFlag from its wire representation.
// Used for listing filters and when reconstructing orders from persistence.
func StatusFlagFromString(s string) (StatusFlag, error) {
	for flag, str := range getStatusFlagStrings() {
		if str == s {
			return flag, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the StatusFlag value is valid.
func (f StatusFlag) Validate() error {
	if _, ok := getStatusFlagStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", f))
	}
	return nil
}

// String returns the wire representation of the status flag, or "UNKNOWN"
// for invalid values. Implements fmt.Stringer.
func (f StatusFlag) String() string {
	if str, ok := getStatusFlagStrings()[f]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are allowed from
// this status.
func (f StatusFlag) IsTerminal() bool {
	return f == StatusSettled || f == StatusCancelled
}

// CancelledBy identifies which party cancelled an order.
type CancelledBy int

const (
	// CancelledByUnknown represents an invalid or undefined canceller.
	CancelledByUnknown CancelledBy = iota

	// CancelledByCustomer marks a cancellation initiated by the customer.
	CancelledByCustomer

	// CancelledByMerchant marks a cancellation initiated by the merchant.
	CancelledByMerchant
)

func getCancelledByStrings() map[CancelledBy]string {
	return map[CancelledBy]string{
		CancelledByCustomer: "CUSTOMER",
		CancelledByMerchant: "MERCHANT",
	}
}

// CancelledByFromString parses a CancelledBy from its wire representation.
func CancelledByFromString(s string) (CancelledBy, error) {
	for by, str := range getCancelledByStrings() {
		if str == s {
			return by, nil
		}
	}
	return CancelledByUnknown, errs.NewValueIsInvalidErrorWithCause("cancelled by",
		fmt.Errorf("%q is not a valid canceller", s))
}

// String returns the wire representation of the canceller, or "UNKNOWN"
// for invalid values.
func (c CancelledBy) String() string {
	if str, ok := getCancelledByStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// cancelledByRole maps the acting role onto the recorded canceller.
func cancelledByRole(role Role) CancelledBy {
	switch role {
	case RoleCustomer:
		return CancelledByCustomer
	case RoleMerchant:
		return CancelledByMerchant
	default:
		return CancelledByUnknown
	}
}

// Status is the discriminated union of order status payloads. Exactly one
// variant matches each StatusFlag, which removes the "status flag set but
// satellite payload missing" error class from the in-memory model; the
// persistence adapter is the only place that can observe that mismatch,
// and it reports it as an InconsistentStateError.
type Status interface {
	// Flag returns the discriminant for this payload.
	Flag() StatusFlag

	isStatus()
}

// Ordered is the initial status payload. It carries no transition metadata;
// the order's own ordered-at timestamp covers it.
type Ordered struct{}

// Flag returns StatusOrdered.
func (Ordered) Flag() StatusFlag { return StatusOrdered }

func (Ordered) isStatus() {}

// Preparing records when the merchant started preparing the order.
type Preparing struct {
	PreparedAt time.Time
}

// Flag returns StatusPreparing.
func (Preparing) Flag() StatusFlag { return StatusPreparing }

func (Preparing) isStatus() {}

// Ready records when the order became ready for pickup.
type Ready struct {
	ReadyAt time.Time
}

// Flag returns StatusReady.
func (Ready) Flag() StatusFlag { return StatusReady }

func (Ready) isStatus() {}

// Settled records when the customer settled the order.
type Settled struct {
	SettledAt time.Time
}

// Flag returns StatusSettled.
func (Settled) Flag() StatusFlag { return StatusSettled }

func (Settled) isStatus() {}

// Cancelled records who cancelled the order, when, and why.
type Cancelled struct {
	By          CancelledBy
	CancelledAt time.Time
	Reason      string
}

// Flag returns StatusCancelled.
func (Cancelled) Flag() StatusFlag { return StatusCancelled }

func (Cancelled) isStatus() {}
