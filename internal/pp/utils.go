package pp

import "strings"

const nothing = "(none)"

// Join joins items with commas, as in an enumeration of settings.
func Join(items []string) string {
	if len(items) == 0 {
		return nothing
	}
	return strings.Join(items, ", ")
}

// EnglishJoin joins items as in an English sentence, with the Oxford comma:
// "a", "a and b", "a, b, and c". No items give "(none)".
func EnglishJoin(items []string) string {
	switch len(items) {
	case 0:
		return nothing
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}

	var b strings.Builder
	for _, item := range items[:len(items)-1] {
		b.WriteString(item)
		b.WriteString(", ")
	}
	b.WriteString("and ")
	b.WriteString(items[len(items)-1])
	return b.String()
}

func describeAll[T any](f func(T) string, items []T) []string {
	ss := make([]string, 0, len(items))
	for _, item := range items {
		ss = append(ss, f(item))
	}
	return ss
}

// JoinMap describes each item with f and then calls [Join].
func JoinMap[T any](f func(T) string, items []T) string {
	return Join(describeAll(f, items))
}

// EnglishJoinMap describes each item with f and then calls [EnglishJoin].
func EnglishJoinMap[T any](f func(T) string, items []T) string {
	return EnglishJoin(describeAll(f, items))
}
