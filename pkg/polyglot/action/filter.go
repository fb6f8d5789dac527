package action

// Filter narrows the candidate set before matching. A Filter must reject
// nil. A nil Filter accepts every non-nil action.
type Filter func(*Action) bool

// All accepts every non-nil action.
func All(a *Action) bool { return a != nil }

// ByCode accepts actions with the given code.
func ByCode(code Code) Filter {
	return func(a *Action) bool {
		return a != nil && a.Code == code
	}
}

// ByCodes accepts actions whose code is one of codes.
func ByCodes(codes ...Code) Filter {
	set := make(map[Code]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return func(a *Action) bool {
		if a == nil {
			return false
		}
		_, ok := set[a.Code]
		return ok
	}
}

func (f Filter) accept(a *Action) bool {
	if a == nil {
		return false
	}
	if f == nil {
		return true
	}
	return f(a)
}
