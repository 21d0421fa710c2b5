package sentinel

var _ error = Error("")

// Error is an error whose value is its message. Declared as a const it
// cannot be reassigned by importers, and two Errors are equal exactly when
// their messages are, which is the comparison errors.Is performs at every
// link of a %w chain.
type Error string

func (e Error) Error() string { return string(e) }
