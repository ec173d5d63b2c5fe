package opt

// FlatMap applies f to the held value and returns the option f produces. An
// absent option short-circuits: f is not called and None comes back. The
// held value converts to T under the Unwrap rules; when it does not convert,
// FlatMap returns None rather than failing, leaving Unwrap as the only
// operation that surfaces conversion errors.
func FlatMap[T any](o Option, f func(T) Option) Option {
	if !o.ok {
		return None()
	}
	t, err := coerce[T](o.value)
	if err != nil {
		return None()
	}
	return f(t)
}

// Map applies f to the held value and wraps the result in Some. Absence and
// conversion failures propagate as None, exactly as in FlatMap.
func Map[T, U any](o Option, f func(T) U) Option {
	return FlatMap(o, func(t T) Option {
		return Some(f(t))
	})
}
