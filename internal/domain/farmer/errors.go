package farmer

import "errors"

var (
	ErrInsufficientResource = errors.New("insufficient resource")
	ErrToolMaxLevel         = errors.New("tool at max level")
	ErrUnknownTool          = errors.New("unknown tool")
	ErrInvalidChoice        = errors.New("invalid perk choice")
	ErrSlotFilled           = errors.New("perk slot already filled")
	ErrUnknownItem          = errors.New("unknown item")
	ErrAmbiguousItem        = errors.New("ambiguous item")
	ErrNotForSale           = errors.New("item not traded here")
)

type InsufficientResourceError struct {
	Resource string
	Need     int
	Have     int
}

func (e *InsufficientResourceError) Error() string {
	return ErrInsufficientResource.Error() + ": " + e.Resource
}

func (e *InsufficientResourceError) Unwrap() error {
	return ErrInsufficientResource
}

type ItemMatchError struct {
	Query      string
	Candidates []string
	err        error
}

func (e *ItemMatchError) Error() string {
	return e.err.Error() + ": " + e.Query
}

func (e *ItemMatchError) Unwrap() error {
	return e.err
}
