package service

import "errors"

var (
	// ErrInvalidTransition indicates a timer operation was attempted from a
	// state that forbids it, such as pausing with no running timer.
	ErrInvalidTransition = errors.New("invalid timer transition")

	// ErrConflict indicates the target task cannot accept a timer: it is
	// completed, or assigned to a different user.
	ErrConflict = errors.New("conflicting task state")
)
