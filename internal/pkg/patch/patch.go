package patch

// Coalesce returns *v when a partial update carries the field, else current.
func Coalesce[T any](v *T, current T) T {
	if v != nil {
		return *v
	}
	return current
}
