package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAttractionNotFound = errors.New("attraction not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrTripNotFound       = errors.New("trip not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDayOutOfRange      = errors.New("day index out of range")
	ErrScheduleEmpty      = errors.New("schedule has no days")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
