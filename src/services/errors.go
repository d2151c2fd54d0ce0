package services

import (
	"errors"

	"gorm.io/gorm"
)

// asNotFound maps a missing-row error to the domain sentinel and passes
// every other storage error through untouched.
func asNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
