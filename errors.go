package comaster

import "errors"

var (
	ErrIllegalArgument = errors.New("error in function arguments")
	ErrRxEmpty         = errors.New("no frame pending on receive channel")
	ErrTimeout         = errors.New("timed out waiting for response")
	ErrSDOAbort        = errors.New("node aborted the SDO transfer")
)
