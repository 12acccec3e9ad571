package plantowerpms5003

// Tribool is a three-valued logic type used where the sensor mode cannot be assumed before it is observed
type Tribool int8

const (
	False Tribool = iota
	True
	Unknown
)

// TriboolOf converts a bool into a known Tribool
func TriboolOf(v bool) Tribool {
	if v {
		return True
	}
	return False
}

// IsKnown reports whether t is either True or False
func (t Tribool) IsKnown() bool {
	return t == True || t == False
}

// Bool returns true only when t is True
func (t Tribool) Bool() bool {
	return t == True
}

// Not negates t; the negation of Unknown is Unknown
func (t Tribool) Not() Tribool {
	switch t {
	case True:
		return False
	case False:
		return True
	}
	return Unknown
}

// And is the Kleene conjunction: False dominates, then Unknown
func (t Tribool) And(o Tribool) Tribool {
	if t == False || o == False {
		return False
	}
	if t == True && o == True {
		return True
	}
	return Unknown
}

// Or is the Kleene disjunction: True dominates, then Unknown
func (t Tribool) Or(o Tribool) Tribool {
	if t == True || o == True {
		return True
	}
	if t == False && o == False {
		return False
	}
	return Unknown
}

// Equal compares two values; the result is Unknown when either side is Unknown
func (t Tribool) Equal(o Tribool) Tribool {
	if !t.IsKnown() || !o.IsKnown() {
		return Unknown
	}
	return TriboolOf(t == o)
}

// NotEqual is the negation of Equal
func (t Tribool) NotEqual(o Tribool) Tribool {
	return t.Equal(o).Not()
}

func (t Tribool) String() string {
	switch t {
	case True:
		return "1"
	case False:
		return "0"
	}
	return "?"
}
