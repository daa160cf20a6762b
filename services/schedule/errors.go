package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// ScheduleError carries a stable code alongside the message so handlers can
// map engine refusals to HTTP statuses.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBookedConflictError reports a bulk operation blocked because the listed
// days hold ranges with confirmed bookings.
func NewBookedConflictError(dates []string) error {
	return &ScheduleError{
		Code:    "bookedConflict",
		Message: fmt.Sprintf("days %s contain booked ranges and cannot be overwritten", strings.Join(dates, ", ")),
	}
}

// NewDraftNotFoundError reports a missing or expired edit draft.
func NewDraftNotFoundError(draftID string) error {
	return &ScheduleError{
		Code:    "draftNotFound",
		Message: fmt.Sprintf("draft %s not found or expired", draftID),
	}
}

// NewMalformedWeekError reports unusable remote availability data.
func NewMalformedWeekError(date, start, end string) error {
	return &ScheduleError{
		Code:    "malformedWeek",
		Message: fmt.Sprintf("remote range %s %s-%s is malformed", date, start, end),
	}
}

// IsCode reports whether err is a ScheduleError with the given code.
func IsCode(err error, code string) bool {
	var se *ScheduleError
	return errors.As(err, &se) && se.Code == code
}
