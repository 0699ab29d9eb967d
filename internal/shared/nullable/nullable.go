// Package nullable holds helpers for provider cells that may be absent.
package nullable

// OrZero returns *p, or the zero value of T when p is nil.
func OrZero[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Of returns a pointer to v.
func Of[T any](v T) *T {
	return &v
}
