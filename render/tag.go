package render

// Tag is an opaque per-cell style marker. A nil Tag means untagged.
type Tag = any

// Wrapper is implemented by tags that decorate another tag.
type Wrapper interface {
	Unwrap() Tag
}

// As extracts a T from tag. It accepts T itself, a non-nil *T, and any chain
// of Wrapper values ending in one of those.
func As[T any](tag Tag) (T, bool) {
	for tag != nil {
		switch v := tag.(type) {
		case T:
			return v, true
		case *T:
			if v != nil {
				return *v, true
			}
			var zero T
			return zero, false
		case Wrapper:
			tag = v.Unwrap()
		default:
			var zero T
			return zero, false
		}
	}
	var zero T
	return zero, false
}
