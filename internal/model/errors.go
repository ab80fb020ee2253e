package model

import "errors"

var (
	ErrDuplicateName          = errors.New("hook name already used by this user")
	ErrHookNotFound           = errors.New("hook not found")
	ErrUpdateConflict         = errors.New("hook name conflicts with another hook of this user")
	ErrUnsupportedHookVariant = errors.New("unsupported hook variant")
)
