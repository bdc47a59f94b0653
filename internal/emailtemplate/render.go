package emailtemplate

import (
	"html"
	"regexp"
	"sort"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z][a-zA-Z0-9_]*)\s*\}\}`)

type Rendered struct {
	Subject          string   `json:"subject"`
	BodyHTML         string   `json:"body_html"`
	MissingVariables []string `json:"missing_variables"`
}

// Render substitutes {{name}} placeholders. Values are HTML escaped in the body
// only. Placeholders without a value are left as written and reported.
func Render(subject, body string, vars map[string]string) Rendered {
	missing := map[string]struct{}{}

	replace := func(escape bool) func(string) string {
		return func(token string) string {
			name := placeholderPattern.FindStringSubmatch(token)[1]
			v, ok := vars[name]
			if !ok {
				missing[name] = struct{}{}
				return token
			}
			if escape {
				return html.EscapeString(v)
			}
			return v
		}
	}

	out := Rendered{
		Subject:  placeholderPattern.ReplaceAllStringFunc(subject, replace(false)),
		BodyHTML: placeholderPattern.ReplaceAllStringFunc(body, replace(true)),
	}

	out.MissingVariables = make([]string, 0, len(missing))
	for name := range missing {
		out.MissingVariables = append(out.MissingVariables, name)
	}
	sort.Strings(out.MissingVariables)
	return out
}

// Placeholders lists the distinct variable names used in s, in order of first use.
func Placeholders(s string) []string {
	seen := map[string]bool{}
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(s, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
