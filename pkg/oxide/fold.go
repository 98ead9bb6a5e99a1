package oxide

// element is one classified input of a fold.
type element struct {
	ok      bool
	payload any
}

func classify(v any) element {
	switch x := v.(type) {
	case AnyResult:
		r := x.Any()
		if r.IsEmpty() {
			return element{payload: r.passThrough().UnwrapErr()}
		}
		return element{ok: r.IsOk(), payload: r.Payload()}
	case error:
		return element{payload: x}
	default:
		return element{ok: true, payload: v}
	}
}

// IntoResult folds a sequence of Results, errors and plain values into one
// Result. Results are taken as they are, errors count as Err and everything
// else as Ok. With no failures the Ok values come back in order; otherwise
// only the failures do, in order, as an aggregate Err.
//
// An empty input yields Ok of an empty slice.
func IntoResult(elems ...any) Result[[]any] {
	oks := make([]any, 0, len(elems))
	var errs []error

	for _, v := range elems {
		el := classify(v)
		if el.ok {
			oks = append(oks, el.payload)
			continue
		}
		errs = append(errs, el.payload.(error))
	}

	if len(errs) == 0 {
		return Ok(oks)
	}
	return Errs[[]any](errs...)
}

// Collect is the typed form of IntoResult for Results of one payload type.
func Collect[T any](rs ...Result[T]) Result[[]T] {
	oks := make([]T, 0, len(rs))
	var errs []error

	for _, r := range rs {
		switch r.tag {
		case TagOk:
			oks = append(oks, r.value)
		case TagErr:
			errs = append(errs, r.UnwrapErr())
		default:
			errs = append(errs, r.passThrough().UnwrapErr())
		}
	}

	if len(errs) == 0 {
		return Ok(oks)
	}
	return Errs[[]T](errs...)
}
