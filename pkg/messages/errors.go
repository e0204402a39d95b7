package messages

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported message file format")
	ErrParsingCancelled  = errors.New("message parsing cancelled")
	ErrFailedToParse     = errors.New("failed to parse message table")
	ErrFailedToReadFile  = errors.New("failed to read message file")
	ErrInvalidValue      = errors.New("message value must be a string")
	ErrEmptyTable        = errors.New("message table is empty")
)
