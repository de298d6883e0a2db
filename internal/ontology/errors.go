package ontology

import "fmt"

// LoadError reports a failed catalog load. The cache must not serve a
// partially loaded state, so callers treat this as fatal at startup.
type LoadError struct {
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("ontology load failed: %v", e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
