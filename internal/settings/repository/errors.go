package repository

import "errors"

var (
	ErrFailedToGet  = errors.New("failed to get settings")
	ErrFailedToSave = errors.New("failed to save settings")
)
