package emailtemplate

import (
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var bodyPolicy = newBodyPolicy()

func newBodyPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("center", "font")
	policy.AllowAttrs("align", "valign", "width", "bgcolor").OnElements("table", "tr", "td", "th", "p", "div")
	policy.AllowAttrs("color").OnElements("font")
	policy.RequireNoFollowOnLinks(false)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

// SanitizeBody strips scripts, event handlers and other unsafe markup.
// Placeholders are swapped for plain alphanumeric tokens while the policy
// runs so URL attributes such as href keep them un-encoded.
func SanitizeBody(body string) string {
	prefix := tokenPrefix(body)
	restore := make(map[string]string)
	masked := placeholderPattern.ReplaceAllStringFunc(body, func(m string) string {
		name := placeholderPattern.FindStringSubmatch(m)[1]
		token := prefix + strconv.Itoa(len(restore)) + "x"
		restore[token] = "{{" + name + "}}"
		return token
	})

	out := bodyPolicy.Sanitize(masked)
	for token, placeholder := range restore {
		out = strings.ReplaceAll(out, token, placeholder)
	}
	return strings.TrimSpace(out)
}

// tokenPrefix returns a prefix that does not occur in body, so restoring
// tokens never rewrites author text.
func tokenPrefix(body string) string {
	prefix := "atsvar"
	for strings.Contains(body, prefix) {
		prefix += "q"
	}
	return prefix
}
