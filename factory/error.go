package factory

import "errors"

// ErrNewLineNil line constructor is nil
var ErrNewLineNil = errors.New("new line func is nil")
