package analyzer

import "fmt"

// UnavailableError indicates the analyzer has no LLM client configured.
// Callers treat it like any other analyzer failure and use the fallback path.
type UnavailableError struct{}

func (e *UnavailableError) Error() string {
	return "analyzer unavailable: no LLM client configured"
}

// CallError indicates the LLM call itself failed (transport, quota, timeout).
type CallError struct {
	Operation string
	Err       error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("LLM call failed during %s: %v", e.Operation, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// MalformedResponseError indicates the LLM answered but the response could
// not be parsed or did not match the expected shape.
type MalformedResponseError struct {
	Operation string
	Reason    string
	Err       error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed LLM response during %s: %s: %v", e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed LLM response during %s: %s", e.Operation, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
