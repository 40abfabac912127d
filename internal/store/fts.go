package store

import "strings"

// ParseTerms splits free text into search terms. Double quotes are dropped,
// surrounding '*' is trimmed, keywords are kept bare and terms carrying an
// inner '*' are kept as typed.
func ParseTerms(input string) []string {
	parts := strings.Fields(strings.ReplaceAll(input, `"`, " "))
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		clean := strings.Trim(part, "*")
		switch {
		case isKeyword(clean):
			terms = append(terms, clean)
		case strings.Contains(clean, "*"):
			terms = append(terms, part)
		case clean != "":
			terms = append(terms, clean)
		}
	}
	return terms
}

// MatchString builds an FTS4 MATCH expression in the enhanced query syntax.
// Plain terms become prefix queries and explicit wildcards pass through.
// A term prefixed with '-' or preceded by NOT is excluded from what the
// terms before it match; exclusions typed before any other term apply to
// the first one. Operators missing an operand are dropped.
func MatchString(terms []string) string {
	var (
		out      []string
		deferred []string // exclusions seen before the first positive term
		op       string
		negate   bool
	)
	for _, term := range terms {
		switch {
		case term == "":
			continue
		case term == "NOT":
			negate = true
			continue
		case isKeyword(term):
			op = strings.ToUpper(term)
			continue
		}
		if strings.HasPrefix(term, "-") {
			term = strings.TrimLeft(term, "-")
			negate = true
		}
		if term == "" {
			continue
		}
		if !strings.Contains(term, "*") {
			term += "*"
		}

		switch {
		case negate && len(out) == 0:
			deferred = append(deferred, term)
		case negate:
			out = append(out, "NOT", term)
		case len(out) == 0:
			out = append(out, term)
			for _, d := range deferred {
				out = append(out, "NOT", d)
			}
			deferred = nil
		case op != "":
			out = append(out, op, term)
		default:
			out = append(out, term)
		}
		op, negate = "", false
	}
	return strings.Join(out, " ")
}

// isKeyword matches OR and AND in any case. NOT only counts in upper case
// so that "do not disturb" stays a plain query.
func isKeyword(term string) bool {
	return term == "NOT" || strings.EqualFold(term, "OR") || strings.EqualFold(term, "AND")
}
