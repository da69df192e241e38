// Package seccheck is the static security filter. It runs before any
// execution is attempted and rejects submissions containing constructs
// outside the restricted dialect.
//
// Two passes are applied in order. The first is a table of lexical pattern
// rules over the raw source text, matching the forbidden module, call and
// attribute names directly so that a violation can name the exact
// offending construct. The second parses the submission and walks the
// syntax tree with an explicit allow-list of node kinds; any node kind not
// on the list is rejected. Lexical matching alone is bypassable by
// obfuscation, which is why the structural pass has the final say.
package seccheck

import (
	"fmt"
	"regexp"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/sandbox"
)

// Violation identifies one forbidden construct. Construct is the exact
// source-level name (`import "os"`, `go statement`, ...); Reason is a
// user-safe sentence naming it.
type Violation struct {
	Construct string
	Reason    string
}

type lexRule struct {
	pattern *regexp.Regexp
	// construct and reason templates; %s receives the first non-empty
	// capture group when the pattern has one
	construct string
	reason    string
}

var lexRules = []lexRule{
	{
		// exact import spellings only: a quoted path, a group, or a
		// whitespace-separated module name. Identifiers that merely
		// contain "import" must not match; the structural pass catches
		// every real import the lexical spellings miss.
		pattern:   regexp.MustCompile(`\bimport\s*(?:"([^"]+)"|\()|\bimport\s+([A-Za-z_][A-Za-z0-9_./]*)\b`),
		construct: `import %q`,
		reason:    "importing package %q is not allowed",
	},
	{
		pattern:   regexp.MustCompile(`\b(open|eval|exec|compile|getattr|setattr|delattr|globals|locals|__import__)\s*\(`),
		construct: "%s()",
		reason:    "calling %s() is not allowed",
	},
	{
		pattern:   regexp.MustCompile(`\b(os|sys|syscall|unsafe|reflect|runtime|subprocess)\s*\.`),
		construct: "%s",
		reason:    "accessing the %s package is not allowed",
	},
	{
		pattern:   regexp.MustCompile(`\.\s*(__[A-Za-z0-9_]+__)`),
		construct: "%s",
		reason:    "accessing the %s attribute is not allowed",
	},
}

// Check scans the submission for forbidden constructs. It returns nil when
// the source is clean and the first matching violation otherwise. The
// check is a pure function of the source text and the static rule tables;
// no user code runs.
func Check(src string) *Violation {
	for _, rule := range lexRules {
		m := rule.pattern.FindStringSubmatch(src)
		if m == nil {
			continue
		}
		name := firstGroup(m)
		if name == "" {
			return &Violation{
				Construct: "import declaration",
				Reason:    "importing packages is not allowed",
			}
		}
		return &Violation{
			Construct: fmt.Sprintf(rule.construct, name),
			Reason:    fmt.Sprintf(rule.reason, name),
		}
	}

	file, _, _, err := sandbox.Parse(src)
	if err != nil {
		// unparsable source cannot execute; the definer reports the
		// syntax error with proper context
		return nil
	}
	return walkFile(file)
}

func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}
