// Package options implements the functional option machinery shared by
// the configurable entry points of the module.
package options

// Option configures a target of type T. An option may reject an invalid
// setting by returning an error.
type Option[T any] func(T) error

// Apply runs opts against target in order and stops at the first error.
// Later options override earlier ones. Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}

// Set adapts a setter that cannot fail into an Option.
func Set[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}
