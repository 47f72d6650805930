package dto

// Envelope wraps every API response body.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Result  T      `json:"result"`
	Error   string `json:"error"`
}

func OK[T any](result T) Envelope[T] {
	return Envelope[T]{Success: true, Result: result}
}

func Failure(message string) Envelope[any] {
	return Envelope[any]{Error: message}
}
