package cli

import "fmt"

type unknownTopicError struct {
	topic string
}

func (e unknownTopicError) Error() string {
	return fmt.Sprintf("unknown docs topic: %q (run `monthcal docs` to list topics)", e.topic)
}

// flagError wraps a validation failure with the flag that carried the value.
type flagError struct {
	flag string
	err  error
}

func (e flagError) Error() string {
	return fmt.Sprintf("--%s: %v", e.flag, e.err)
}

func (e flagError) Unwrap() error { return e.err }

type monthArgError struct {
	arg string
	err error
}

func (e monthArgError) Error() string {
	return fmt.Sprintf("invalid month %q (expected YYYY-MM): %v", e.arg, e.err)
}

func (e monthArgError) Unwrap() error { return e.err }
