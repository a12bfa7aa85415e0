package analyzer

import "strings"

// bodySeparator splits an optional category from the task subject in a
// session description, e.g. "proj: fix bug".
const bodySeparator = ": "

// Body is the categorized form of a session description.
type Body struct {
	Category    string
	Categorized bool
	Subject     string
}

// ParseBody splits a description at the first occurrence of ": " into a
// category and a subject. It never fails: a description without the
// separator is simply uncategorized.
func ParseBody(description string) Body {
	idx := strings.Index(description, bodySeparator)
	if idx < 0 {
		return Body{Subject: description}
	}
	return Body{
		Category:    description[:idx],
		Categorized: true,
		Subject:     description[idx+len(bodySeparator):],
	}
}
