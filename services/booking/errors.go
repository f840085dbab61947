package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced to the HTTP layer.
const (
	CodeSlotUnavailable        = "slotUnavailable"
	CodeSlotTaken              = "slotTaken"
	CodeInvalidPatientInfo     = "invalidPatientInfo"
	CodePersistenceUnavailable = "persistenceUnavailable"
)

// BookingError is a coded, recoverable booking failure.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSlotUnavailable(msg string) error {
	return &BookingError{Code: CodeSlotUnavailable, Message: msg}
}

func NewSlotTaken(msg string) error {
	return &BookingError{Code: CodeSlotTaken, Message: msg}
}

func NewInvalidPatientInfo(msg string) error {
	return &BookingError{Code: CodeInvalidPatientInfo, Message: msg}
}

func NewPersistenceUnavailable(msg string) error {
	return &BookingError{Code: CodePersistenceUnavailable, Message: msg}
}

// CodeOf extracts the booking error code, or "" for unrelated errors.
func CodeOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
