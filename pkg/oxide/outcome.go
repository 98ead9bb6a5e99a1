package oxide

// From turns a Go (value, error) pair into a Result.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// FromOutcome converts the settled outcome of an asynchronous computation
// into a Result. Adapters for future or promise types call it once the
// computation has finished.
//
// A value that is itself a Result is flattened. A []any holding at least one
// Result is folded with IntoResult. On failure a non-nil err wins over the
// value; otherwise the value is the failure reason.
func FromOutcome(succeeded bool, value any, err error) Result[any] {
	if succeeded {
		if r, ok := foldOutcome(value); ok {
			return r
		}
		return Ok(value)
	}

	if err != nil {
		return Err[any](err)
	}
	if r, ok := foldOutcome(value); ok {
		return r
	}
	return ErrOf[any](value)
}

func foldOutcome(value any) (Result[any], bool) {
	switch v := value.(type) {
	case AnyResult:
		return v.Any().Flatten(), true
	case []any:
		for _, el := range v {
			if _, isResult := el.(AnyResult); isResult {
				return IntoResult(v...).Any(), true
			}
		}
	}
	return Result[any]{}, false
}
