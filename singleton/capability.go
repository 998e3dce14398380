package singleton

// Checkable is implemented by types that can report whether their most recent
// construction succeeded.
type Checkable interface {
	InstanceOK() bool
}

// ResultBearing is implemented by Checkable types that also report a result
// value when InstanceOK returns false.
type ResultBearing[R any] interface {
	Checkable
	InstanceResultValue() R
}

// Kind is the capability set a wrapper was bound with.
type Kind int

const (
	KindNone Kind = iota
	KindChecked
	KindCheckedWithResult
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindChecked:
		return "checked"
	case KindCheckedWithResult:
		return "checked_with_result"
	}
	return "unknown"
}

// Policy selects what keeps an instance alive.
type Policy int

const (
	// ExternalLifetime destroys the instance when the last external Handle is released.
	ExternalLifetime Policy = iota
	// ProcessKeepAlive pins the first valid instance until the process exits.
	ProcessKeepAlive
)

func (p Policy) String() string {
	switch p {
	case ExternalLifetime:
		return "external"
	case ProcessKeepAlive:
		return "keepalive"
	}
	return "unknown"
}
