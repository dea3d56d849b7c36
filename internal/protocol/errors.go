package protocol

import "errors"

var (
	ErrTruncatedHeader     = errors.New("protocol: truncated header")
	ErrTruncatedPayload    = errors.New("protocol: truncated payload")
	ErrLengthMismatch      = errors.New("protocol: payload length mismatch")
	ErrUnsupportedVersion  = errors.New("protocol: unsupported version")
	ErrInvalidPixelPayload = errors.New("protocol: invalid pixel payload size")
	ErrFrameSizeMismatch   = errors.New("protocol: frame snapshot size mismatch")
)
