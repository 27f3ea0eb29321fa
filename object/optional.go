package object

// Optional represents a value that may be individually absent, used for the
// elements of a StringList or BytesList: the outer list itself is a single
// present/absent DataPosition, but each element nested inside it carries
// its own independent DataPosition and can be null on its own (spec §9,
// "Nested list headers").
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}
