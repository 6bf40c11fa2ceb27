package event

import "errors"

var (
	// ErrEventNil Event arg is nil
	ErrEventNil = errors.New("event is nil")

	// ErrEventTypeInvalid Event body is nil
	ErrEventTypeInvalid = errors.New("event type is invalid")

	// ErrListenerNil Listener arg is nil
	ErrListenerNil = errors.New("listener is nil")

	// ErrListenerIncomparable Listener can not be removed by Off
	ErrListenerIncomparable = errors.New("listener is incomparable")

	// ErrBusClosed bus is closed
	ErrBusClosed = errors.New("bus is closed")
)
