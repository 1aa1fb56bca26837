// Package result defines the uniform success/error envelope returned by
// every externally-facing operation of the SMS, email and chat services.
package result

// Result is a tagged union: either Success is true and Data carries the
// operation payload, or Success is false and Error carries the failure
// message. Exactly one side is ever populated.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok wraps a payload in a successful envelope.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Err wraps an error in a failed envelope.
func Err[T any](err error) Result[T] {
	return Result[T]{Success: false, Error: err.Error()}
}

// Errf builds a failed envelope from a fixed message, for precondition
// failures that never reach the transport.
func Errf[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}

// Of runs op and converts its (value, error) pair into an envelope.
// This is the single place where transport errors become envelope errors,
// so individual service methods never repeat the conversion.
func Of[T any](op func() (T, error)) Result[T] {
	v, err := op()
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}
