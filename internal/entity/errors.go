package entity

import "errors"

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrIllegalTransition = errors.New("illegal publish status transition")
	ErrAuthorNotFound    = errors.New("author not found")
	ErrBookNotFound      = errors.New("book not found")
)
