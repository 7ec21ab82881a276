package order

import (
	"fmt"

	"quickdish/internal/pkg/errs"
)

// ErrStatusUpdateIsNotConstructed is returned when a StatusUpdate was not
// created through one of the constructor functions.
var ErrStatusUpdateIsNotConstructed = errs.NewValueIsRequiredError(
	"StatusUpdate must be created via NewCancelUpdate, NewSettleUpdate, NewMarkPreparingUpdate, or NewMarkReadyUpdate")

// UpdateKind identifies the requested status transition.
type UpdateKind int

const (
	// UpdateUnknown represents an invalid or undefined update kind.
	UpdateUnknown UpdateKind = iota

	// UpdateCancel requests cancellation of the order.
	UpdateCancel

	// UpdateSettle requests settlement of a ready order by the customer.
	UpdateSettle

	// UpdateMarkPreparing requests marking the order as being prepared.
	UpdateMarkPreparing

	// UpdateMarkReady requests marking a prepared order as ready for pickup.
	UpdateMarkReady
)

func getUpdateKindStrings() map[UpdateKind]string {
	return map[UpdateKind]string{
		UpdateCancel:        "cancel",
		UpdateSettle:        "settle",
		UpdateMarkPreparing: "prepare",
		UpdateMarkReady:     "ready",
	}
}

// UpdateKindFromString parses an UpdateKind from its wire representation
// ("cancel", "settle", "prepare", "ready").
func UpdateKindFromString(s string) (UpdateKind, error) {
	for kind, str := range getUpdateKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return UpdateUnknown, errs.NewValueIsInvalidErrorWithCause("status update",
		fmt.Errorf("%q is not a valid status update", s))
}

// String returns the wire representation of the update kind, or "unknown"
// for invalid values.
func (k UpdateKind) String() string {
	if str, ok := getUpdateKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the UpdateKind value is valid.
func (k UpdateKind) Validate() error {
	if _, ok := getUpdateKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status update",
			fmt.Errorf("%d is not a valid status update", k))
	}
	return nil
}

// StatusUpdate is a value object describing a requested status transition.
// Only cancellations carry a reason; the other kinds are bare requests and
// pick up their timestamps when the transition is applied.
type StatusUpdate struct {
	kind   UpdateKind
	reason string

	isConstructed bool
}

// NewCancelUpdate creates a cancellation request with the caller's reason.
// The reason is recorded verbatim on the cancelled order.
func NewCancelUpdate(reason string) StatusUpdate {
	return StatusUpdate{kind: UpdateCancel, reason: reason, isConstructed: true}
}

// NewSettleUpdate creates a settlement request.
func NewSettleUpdate() StatusUpdate {
	return StatusUpdate{kind: UpdateSettle, isConstructed: true}
}

// NewMarkPreparingUpdate creates a request to mark the order as being prepared.
func NewMarkPreparingUpdate() StatusUpdate {
	return StatusUpdate{kind: UpdateMarkPreparing, isConstructed: true}
}

// NewMarkReadyUpdate creates a request to mark the order as ready for pickup.
func NewMarkReadyUpdate() StatusUpdate {
	return StatusUpdate{kind: UpdateMarkReady, isConstructed: true}
}

// Kind returns the requested transition kind.
func (u StatusUpdate) Kind() UpdateKind {
	return u.kind
}

// Reason returns the cancellation reason. Empty for non-cancel updates.
func (u StatusUpdate) Reason() string {
	return u.reason
}

// Validate ensures the update was created through a constructor.
func (u StatusUpdate) Validate() error {
	if !u.isConstructed {
		return ErrStatusUpdateIsNotConstructed
	}
	return nil
}
