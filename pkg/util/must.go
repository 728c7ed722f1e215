package util

// Must unwraps the result of a function that may return an error,
// panicking if it did. It should only be used for values whose
// construction can only fail due to a programming error, such as
// parsing tables that are embedded into the binary.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
