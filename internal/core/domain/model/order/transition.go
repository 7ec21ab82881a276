package order

import (
	"fmt"
	"time"

	"quickdish/internal/pkg/errs"
)

// transitionKey addresses one row of the status transition table: which
// role requests which update from which current status.
type transitionKey struct {
	role    Role
	current StatusFlag
	kind    UpdateKind
}

// transitionFunc builds the next status payload for a legal transition.
type transitionFunc func(role Role, update StatusUpdate, now time.Time) Status

func cancelTransition(role Role, update StatusUpdate, now time.Time) Status {
	return Cancelled{By: cancelledByRole(role), CancelledAt: now, Reason: update.Reason()}
}

// getTransitionTable returns the full set of legal (role, status, update)
// transitions. Any combination absent from this table is illegal and is
// rejected with the matching reason from getRejectionReasons.
func getTransitionTable() map[transitionKey]transitionFunc {
	return map[transitionKey]transitionFunc{
		{RoleCustomer, StatusOrdered, UpdateCancel}: cancelTransition,
		{RoleCustomer, StatusReady, UpdateSettle}: func(_ Role, _ StatusUpdate, now time.Time) Status {
			return Settled{SettledAt: now}
		},
		{RoleMerchant, StatusOrdered, UpdateMarkPreparing}: func(_ Role, _ StatusUpdate, now time.Time) Status {
			return Preparing{PreparedAt: now}
		},
		{RoleMerchant, StatusPreparing, UpdateMarkReady}: func(_ Role, _ StatusUpdate, now time.Time) Status {
			return Ready{ReadyAt: now}
		},
		{RoleMerchant, StatusOrdered, UpdateCancel}:   cancelTransition,
		{RoleMerchant, StatusPreparing, UpdateCancel}: cancelTransition,
	}
}

// rejectionKey addresses the reason reported when no transition row matches:
// the reason depends on who asked for what, not on the current status.
type rejectionKey struct {
	role Role
	kind UpdateKind
}

func getRejectionReasons() map[rejectionKey]string {
	return map[rejectionKey]string{
		{RoleCustomer, UpdateCancel}:        "order can't be cancelled anymore",
		{RoleCustomer, UpdateSettle}:        "order can only be settled when it's ready",
		{RoleCustomer, UpdateMarkPreparing}: "only cancellation or settlement are allowed",
		{RoleCustomer, UpdateMarkReady}:     "only cancellation or settlement are allowed",
		{RoleMerchant, UpdateCancel}:        "order can't be cancelled anymore",
		{RoleMerchant, UpdateSettle}:        "order can't be settled by merchant",
		{RoleMerchant, UpdateMarkPreparing}: "order can be prepared only once",
		{RoleMerchant, UpdateMarkReady}:     "order can be ready only after it's prepared",
	}
}

// NextStatus evaluates the transition table for the given role, current
// status, and requested update. On a legal transition it returns the next
// status payload, stamped with now. On an illegal combination it returns a
// ValueIsInvalidError whose reason names the violated rule.
func NextStatus(role Role, current StatusFlag, update StatusUpdate, now time.Time) (Status, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if err := current.Validate(); err != nil {
		return nil, err
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	if apply, ok := getTransitionTable()[transitionKey{role, current, update.Kind()}]; ok {
		return apply(role, update, now), nil
	}

	reason, ok := getRejectionReasons()[rejectionKey{role, update.Kind()}]
	if !ok {
		reason = "status update is not allowed"
	}
	return nil, errs.NewValueIsInvalidErrorWithCause(reason,
		fmt.Errorf("%s cannot apply %s to an order in status %s", role, update.Kind(), current))
}
