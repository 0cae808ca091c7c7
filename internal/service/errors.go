package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyApplied     = errors.New("application already submitted")
	ErrRecruitmentClosed  = errors.New("recruitment is not active")
	ErrSlotUnavailable    = errors.New("room is already booked for this slot")
	ErrForbidden          = errors.New("operation not permitted")
)
