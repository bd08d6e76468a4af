package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/KeisukeTTTT/estate-management/internal/models"
)

const (
	dateOrderMessage = "The end date must be after the start date."
	nonZeroMessage   = "The amount must not be zero."
)

// CheckDateOrder rejects a lease unless end is strictly after start. The error is attached to endDate.
func CheckDateOrder(start, end time.Time) FieldErrors {
	if end.After(start) {
		return nil
	}
	return FieldErrors{"endDate": {dateOrderMessage}}
}

// CheckNonZeroAmount rejects a zero ledger amount. The error is attached to amount.
func CheckNonZeroAmount(amount int64) FieldErrors {
	if amount != 0 {
		return nil
	}
	return FieldErrors{"amount": {nonZeroMessage}}
}

// Reference is an id submitted in Field that must name an existing record of Kind.
// A nil ID is an absent optional reference and is always valid.
type Reference struct {
	Field   string
	Kind    models.Kind
	ID      *string
	Message string
}

// Resolver answers whether a record exists. Implemented by the storage layer.
type Resolver interface {
	Exists(ctx context.Context, kind models.Kind, id string) (bool, error)
}

// Resolve checks every present reference. A reference that does not resolve becomes
// a field error; a failed lookup is returned as an error since no field is at fault.
func Resolve(ctx context.Context, r Resolver, refs []Reference) (FieldErrors, error) {
	var errs FieldErrors
	for _, ref := range refs {
		if ref.ID == nil {
			continue
		}
		ok, err := r.Exists(ctx, ref.Kind, *ref.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", ref.Field, err)
		}
		if !ok {
			msg := ref.Message
			if msg == "" {
				msg = "The selected record does not exist."
			}
			errs.Add(ref.Field, msg)
		}
	}
	return errs, nil
}
