package domain

// Decision is the outcome of an access check. Reason is nil when Allowed and
// one of ErrUnauthenticated or ErrForbidden otherwise.
type Decision struct {
	Allowed bool
	Reason  error
}

func Allow() Decision { return Decision{Allowed: true} }

func Deny(reason error) Decision { return Decision{Reason: reason} }
