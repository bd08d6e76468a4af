package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrConstraint is a write rejected by an index constraint.
	ErrConstraint = errors.New("storage constraint violation")
	// ErrUnavailable is a store that could not be reached in time.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrStorage is any other storage failure.
	ErrStorage = errors.New("storage error")
)

// StorageError tags a driver error with its class. It matches both the class
// sentinel and the driver error under errors.Is.
type StorageError struct {
	Class error
	Op    string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Class, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{e.Class, e.Err}
}

// Classify wraps a driver error from op into a StorageError. Nil stays nil.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Class: classOf(err), Op: op, Err: err}
}

func classOf(err error) error {
	switch {
	case IsMongoDuplicateKeyError(err):
		return ErrConstraint
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, mongo.ErrClientDisconnected),
		mongo.IsTimeout(err),
		mongo.IsNetworkError(err):
		return ErrUnavailable
	default:
		return ErrStorage
	}
}

// IsMongoDuplicateKeyError checks if an error from MongoDB is a duplicate key error (code 11000).
func IsMongoDuplicateKeyError(err error) bool {
	var e mongo.WriteException
	if errors.As(err, &e) {
		for _, we := range e.WriteErrors {
			if we.Code == 11000 {
				return true
			}
		}
	}
	// Also check for BulkWriteException, which can contain duplicate key errors
	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		for _, writeError := range bwe.WriteErrors {
			if writeError.Code == 11000 {
				return true
			}
		}
	}
	return false
}
