package transport

// Result carries either a value or an error, never both
type Result[T any] struct {
	Value T
	Err   error
}

func Success[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Deliver returns a channel that yields res exactly once
func Deliver[T any](res Result[T]) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	ch <- res
	close(ch)
	return ch
}

// Map converts the single result of in using f. Failures pass through unchanged.
func Map[T, U any](in <-chan Result[T], f func(T) (U, error)) <-chan Result[U] {
	out := make(chan Result[U], 1)

	go func() {
		defer close(out)

		res, ok := <-in
		if !ok {
			out <- Failure[U](&ClientError{Err: errClosed})
			return
		}
		if res.Err != nil {
			out <- Failure[U](res.Err)
			return
		}

		v, err := f(res.Value)
		if err != nil {
			out <- Failure[U](err)
			return
		}
		out <- Success(v)
	}()

	return out
}
