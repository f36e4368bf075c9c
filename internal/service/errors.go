package service

import "errors"

var (
	ErrBlockNotFound     = errors.New("block not in plan")
	ErrSubjectNotFound   = errors.New("subject not in plan")
	ErrDayNotFound       = errors.New("day not in plan")
	ErrInvalidConfidence = errors.New("confidence must be between 1 and 5")
)
