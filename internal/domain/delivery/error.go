package delivery

import "errors"

var (
	ErrAttachment  = errors.New("attachment error")
	ErrDelivery    = errors.New("delivery failure")
	ErrNoRecipient = errors.New("recipient address is required")
)
