package rank

import (
	"sort"
	"unicode/utf8"
)

// Entry pairs a source URL with the answer produced from that page.
type Entry struct {
	URL    string
	Answer string
}

// ByAnswerLength returns the entries stably sorted by descending answer
// length in runes, so a longer answer ranks first. Length is a weak proxy
// for detail, kept deliberately; there is no other scoring signal. Ties keep
// their input order. The input slice is not modified.
func ByAnswerLength(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i].Answer) > utf8.RuneCountInString(out[j].Answer)
	})
	return out
}
