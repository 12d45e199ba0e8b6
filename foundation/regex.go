package foundation

// Regex structural validation is layered. The layers run strictly in
// order and each one assumes everything before it already passed:
//
//	1. DelimitersBalanced  ( ) [ ] { } pair up
//	2. EscapesValid        every \x names a recognized escape
//	3. QuantifiersValid    * + ? {n,m} follow an atom, never each other
//	4. CharClassValid      [...] contents are non-empty with ordered ranges
//
// CheckRegex evaluates the chain and stops at the first failing layer.

// RegexLayer identifies one structural layer.
type RegexLayer int

const (
	LayerDelimiters RegexLayer = iota + 1
	LayerEscapes
	LayerQuantifiers
	LayerCharClass
)

func (l RegexLayer) String() string {
	switch l {
	case LayerDelimiters:
		return "balanced-delimiters"
	case LayerEscapes:
		return "valid-escapes"
	case LayerQuantifiers:
		return "quantifier-placement"
	case LayerCharClass:
		return "char-class"
	}
	return "unknown"
}

// RegexVerdict reports the outcome of the layered check. Failed is zero
// when OK; otherwise it names the first layer that rejected the pattern,
// and later layers were never evaluated.
type RegexVerdict struct {
	OK     bool
	Failed RegexLayer
}

// CheckRegex runs the four structural layers in order with short-circuit.
func CheckRegex(pattern string) RegexVerdict {
	if !DelimitersBalanced(pattern) {
		return RegexVerdict{Failed: LayerDelimiters}
	}
	if !EscapesValid(pattern) {
		return RegexVerdict{Failed: LayerEscapes}
	}
	if !QuantifiersValid(pattern) {
		return RegexVerdict{Failed: LayerQuantifiers}
	}
	if !CharClassValid(pattern) {
		return RegexVerdict{Failed: LayerCharClass}
	}
	return RegexVerdict{OK: true}
}

// DelimitersBalanced reports whether ( ) [ ] { } pair up, treating {n,m}
// quantifier braces as literals and skipping escaped characters.
func DelimitersBalanced(pattern string) bool {
	b := []byte(pattern)
	n := len(b)
	var paren, bracket, brace int
	i := 0
	for i < n {
		switch c := b[i]; {
		case c == '(':
			paren++
		case c == ')':
			paren--
		case c == '[':
			bracket++
		case c == ']':
			bracket--
		case c == '{' && i+1 < n && isDigit(b[i+1]):
			// Quantifier brace, not a group.
		case c == '{':
			brace++
		case c == '}' && !isQuantifierEnd(b, i):
			brace--
		case c == '\\' && i+1 < n:
			i++
		}
		if paren < 0 || bracket < 0 || brace < 0 {
			return false
		}
		i++
	}
	return paren == 0 && bracket == 0 && brace == 0
}

// isQuantifierEnd reports whether the '}' at pos closes a {n,m} style
// quantifier: everything back to the opening '{' is digits or commas.
func isQuantifierEnd(b []byte, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		c := b[i]
		if c == '{' {
			for j := i + 1; j < pos; j++ {
				if !isDigit(b[j]) && b[j] != ',' {
					return false
				}
			}
			return true
		}
		if !isDigit(c) && c != ',' {
			return false
		}
	}
	return false
}

// EscapesValid reports whether every backslash is followed by a
// recognized escape character. Assumes DelimitersBalanced passed.
func EscapesValid(pattern string) bool {
	b := []byte(pattern)
	n := len(b)
	for i := 0; i < n; i++ {
		if b[i] != '\\' {
			continue
		}
		if i+1 >= n || !isValidEscape(b[i+1]) {
			return false
		}
		i++
	}
	return true
}

func isValidEscape(c byte) bool {
	switch c {
	case 'n', 't', 'r', 'd', 'D', 'w', 'W', 's', 'S',
		'.', '*', '+', '?', '(', ')', '[', ']', '{', '}',
		'^', '$', '|', '\\':
		return true
	}
	return isDigit(c)
}

// QuantifiersValid reports whether every quantifier follows an atom: a
// quantifier may not start the pattern, follow an alternation or anchor,
// or follow another quantifier. {n,m} ranges additionally require n <= m.
// Assumes EscapesValid passed.
func QuantifiersValid(pattern string) bool {
	b := []byte(pattern)
	n := len(b)
	i := 0
	hasAtom := false
	for i < n {
		switch c := b[i]; {
		case c == '*' || c == '+' || c == '?':
			if !hasAtom {
				return false
			}
			hasAtom = false
		case c == '{' && i+1 < n && isDigit(b[i+1]):
			if !hasAtom {
				return false
			}
			start := i
			i++
			for i < n && (isDigit(b[i]) || b[i] == ',') {
				i++
			}
			if i >= n || b[i] != '}' {
				return false
			}
			if !quantifierRangeOrdered(b, start, i) {
				return false
			}
			hasAtom = false
		case c == '\\' && i+1 < n:
			i++
			hasAtom = true
		case c == '(' || c == '[' || c == ')' || c == ']':
			hasAtom = true
		case c == '^' || c == '$' || c == '|':
			hasAtom = false
		default:
			hasAtom = true
		}
		i++
	}
	return true
}

// quantifierRangeOrdered checks n <= m inside b[start..end] ({n,m}).
// {n} and {n,} are always ordered.
func quantifierRangeOrdered(b []byte, start, end int) bool {
	i := start + 1
	var lo uint32
	for i < end && isDigit(b[i]) {
		lo = lo*10 + uint32(b[i]-'0')
		i++
	}
	if i >= end || b[i] != ',' {
		return true
	}
	i++
	if i >= end || !isDigit(b[i]) {
		return true
	}
	var hi uint32
	for i < end && isDigit(b[i]) {
		hi = hi*10 + uint32(b[i]-'0')
		i++
	}
	return lo <= hi
}

// CharClassValid reports whether every [...] class is non-empty (after an
// optional leading ^), closes before the pattern ends, and orders its
// ranges low-to-high. Assumes QuantifiersValid passed.
func CharClassValid(pattern string) bool {
	b := []byte(pattern)
	n := len(b)
	i := 0
	for i < n {
		if b[i] != '[' {
			i++
			continue
		}
		i++
		if i < n && b[i] == '^' {
			i++
		}
		if i >= n || b[i] == ']' {
			return false
		}
		for i < n && b[i] != ']' {
			switch {
			case b[i] == '\\':
				i += 2
			case i+2 < n && b[i+1] == '-' && b[i+2] != ']':
				if b[i] > b[i+2] {
					return false
				}
				i += 3
			default:
				i++
			}
		}
		if i >= n {
			return false
		}
		i++
	}
	return true
}
