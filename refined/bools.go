package refined

// True wraps a bool known to be true. Degenerate on purpose: it turns a
// runtime check ("did the user confirm?") into a value a signature can
// demand.
type True struct{}

// NewTrue validates v == true.
func NewTrue(v bool) (True, error) {
	if !v {
		return True{}, errf("true", "false")
	}
	return True{}, nil
}

func (True) Value() bool  { return true }
func (True) Unwrap() bool { return true }

// False wraps a bool known to be false.
type False struct{}

// NewFalse validates v == false.
func NewFalse(v bool) (False, error) {
	if v {
		return False{}, errf("false", "true")
	}
	return False{}, nil
}

func (False) Value() bool  { return false }
func (False) Unwrap() bool { return false }
