package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPanelNotFound   = errors.New("sperm health panel not found")
	ErrCycleNotFound   = errors.New("cycle not found")
	ErrContentNotFound = errors.New("content item not found")
	ErrInviteNotFound  = errors.New("partner invite not found")
)

// notFound maps gorm.ErrRecordNotFound to the given sentinel and keeps both in the chain.
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}
