package sentinel

var _ error = Error("")

// Error is an error whose identity is its text. Values are comparable, so
// errors.Is matches them through fmt.Errorf("%w") chains.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}
