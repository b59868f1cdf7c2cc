package models

// ResultKind discriminates the expected, recoverable outcomes of a
// business operation. Routine conditions like a duplicate favorite or a
// missing row are results, not errors: callers switch on Kind instead of
// unwrapping error chains.
type ResultKind string

const (
	// ResultOK marks a successful operation.
	ResultOK ResultKind = "ok"

	// ResultInvalidInput marks a request with missing or malformed
	// parameters.
	ResultInvalidInput ResultKind = "invalid_input"

	// ResultDuplicate marks a create that would violate a uniqueness
	// invariant.
	ResultDuplicate ResultKind = "duplicate"

	// ResultNotFound marks an operation that targeted a row which does
	// not exist.
	ResultNotFound ResultKind = "not_found"

	// ResultFailed marks an unexpected storage-level failure.
	ResultFailed ResultKind = "failed"
)

// Result is the discriminated outcome of an operation whose failure modes
// are part of normal control flow.
type Result struct {
	Kind    ResultKind `json:"kind"`
	Message string     `json:"message"`
}

// OK returns a success result with the given user-facing message.
func OK(message string) Result {
	return Result{Kind: ResultOK, Message: message}
}

// Failure returns a non-success result of the given kind.
func Failure(kind ResultKind, message string) Result {
	return Result{Kind: kind, Message: message}
}

// Success reports whether the operation completed.
func (r Result) Success() bool { return r.Kind == ResultOK }

// IsDuplicate reports whether the operation failed on a uniqueness
// invariant.
func (r Result) IsDuplicate() bool { return r.Kind == ResultDuplicate }
