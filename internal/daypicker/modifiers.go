package daypicker

// Built-in modifier names.
const (
	ModifierToday   = "today"
	ModifierOutside = "outside"
)

// Predicate classifies a single day. A panicking predicate is a
// configuration error and propagates to the caller of Classify.
type Predicate func(Date) bool

// Modifier is a named day predicate.
type Modifier struct {
	Name  string
	Match Predicate
}

// Modifiers is an ordered list of named predicates. Evaluation order is the
// list order; a later entry with the same name replaces an earlier one.
type Modifiers []Modifier

// Fixed returns a predicate that ignores the day.
func Fixed(v bool) Predicate {
	return func(Date) bool { return v }
}

// Merge prepends base to user. Entries of user shadow base entries with the
// same name, keeping the position of the base entry.
func Merge(base, user Modifiers) Modifiers {
	out := make(Modifiers, 0, len(base)+len(user))
	pos := make(map[string]int, len(base)+len(user))
	for _, list := range []Modifiers{base, user} {
		for _, m := range list {
			if m.Match == nil {
				continue
			}
			if i, ok := pos[m.Name]; ok {
				out[i] = m
				continue
			}
			pos[m.Name] = len(out)
			out = append(out, m)
		}
	}
	return out
}

// Active returns the names whose predicate holds for d, in list order.
func (ms Modifiers) Active(d Date) []string {
	var names []string
	for _, m := range ms {
		if m.Match(d) {
			names = append(names, m.Name)
		}
	}
	return names
}

// builtins returns the today/outside predicates for a day shown in month.
func builtins(month Month, today Date) Modifiers {
	return Modifiers{
		{Name: ModifierToday, Match: func(d Date) bool { return SameDay(d, today) }},
		{Name: ModifierOutside, Match: func(d Date) bool { return !month.Contains(d) }},
	}
}

