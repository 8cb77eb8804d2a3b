package domain

// Status tags the variant held by a Result
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusFailure
	StatusSkipped
)

// String returns the lowercase name of the status
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is either a success payload, a failure carrying the error, a
// pending value, or a skipped operation that did nothing. The zero value is
// Loading.
type Result[T any] struct {
	status Status
	value  T
	err    error
}

// Success wraps a value
func Success[T any](value T) Result[T] {
	return Result[T]{status: StatusSuccess, value: value}
}

// Failure wraps an error. A nil error is still a failure.
func Failure[T any](err error) Result[T] {
	return Result[T]{status: StatusFailure, err: err}
}

// Loading returns the pending variant
func Loading[T any]() Result[T] {
	return Result[T]{status: StatusLoading}
}

// Skipped returns the variant for an operation that was not performed
func Skipped[T any]() Result[T] {
	return Result[T]{status: StatusSkipped}
}

// Status returns the variant tag
func (r Result[T]) Status() Status { return r.status }

// IsSuccess reports whether the result holds a value
func (r Result[T]) IsSuccess() bool { return r.status == StatusSuccess }

// IsFailure reports whether the result holds an error
func (r Result[T]) IsFailure() bool { return r.status == StatusFailure }

// IsLoading reports whether the result is still pending
func (r Result[T]) IsLoading() bool { return r.status == StatusLoading }

// IsSkipped reports whether the operation was not performed
func (r Result[T]) IsSkipped() bool { return r.status == StatusSkipped }

// Value returns the payload and whether the result is a success
func (r Result[T]) Value() (T, bool) {
	return r.value, r.status == StatusSuccess
}

// Err returns the failure error, or nil for other variants
func (r Result[T]) Err() error {
	if r.status != StatusFailure {
		return nil
	}
	return r.err
}

// Message returns the failure message, or "" for other variants
func (r Result[T]) Message() string {
	if r.status != StatusFailure {
		return ""
	}
	if r.err == nil {
		return ErrMsgUnknownError
	}
	return r.err.Error()
}

// Fold calls onSuccess or onFailure depending on the variant. Loading and
// Skipped call neither.
func (r Result[T]) Fold(onSuccess func(T), onFailure func(error)) {
	switch r.status {
	case StatusSuccess:
		if onSuccess != nil {
			onSuccess(r.value)
		}
	case StatusFailure:
		if onFailure != nil {
			onFailure(r.err)
		}
	}
}

// ErrMsgUnknownError is used when a failure carries no error
const ErrMsgUnknownError = "unknown error occurred"

// AuthResult is the outcome of a sign-in: exactly one of User or Message is set
type AuthResult struct {
	User    *User  `json:"user,omitempty"`
	Message string `json:"error,omitempty"`
}

// AuthSuccess builds a successful sign-in result
func AuthSuccess(user User) AuthResult {
	return AuthResult{User: &user}
}

// AuthError builds a failed sign-in result
func AuthError(message string) AuthResult {
	if message == "" {
		message = ErrMsgUnknownError
	}
	return AuthResult{Message: message}
}

// IsSuccess reports whether the sign-in succeeded
func (a AuthResult) IsSuccess() bool {
	return a.User != nil
}
