// Package classify assigns incoming prompts to a dispatch route using an
// ordered table of pattern groups.
package classify

import (
	"regexp"
	"strings"

	"github.com/escalate-ai/router/internal/domain"
)

// Rule pairs a route with the patterns that select it. Groups are evaluated
// in table order and the first group with any match wins, so the search
// group outranks the back group even when both match.
type Rule struct {
	Route    domain.Route
	Patterns []string
}

// Classifier evaluates an ordered rule table against lowercased prompt text.
type Classifier struct {
	groups []group
}

type group struct {
	route    domain.Route
	patterns []*regexp.Regexp
}

// DefaultRules returns the stock routing table.
func DefaultRules() []Rule {
	return []Rule{
		{
			Route: domain.RouteSearch,
			Patterns: []string{
				`\bsearch\b`,
				`\bfind\b`,
				`\blook up\b`,
				`\blatest\b`,
				`\bnews\b`,
				`\bcurrent\b`,
				`\btoday\b`,
				`\brecent\b`,
				`\bweather\b`,
				`\bprice of\b`,
				`\bwho won\b`,
				`\bright now\b`,
			},
		},
		{
			Route: domain.RouteBack,
			Patterns: []string{
				`\banaly[sz]e\b`,
				`\bresearch\b`,
				`\bexplain\b`,
				`\bsummari[sz]e\b`,
				`\bcompare\b`,
				`\bwrite .*(code|essay|report|function|script)\b`,
				`\bimplement\b`,
				`\bdebug\b`,
				`\brefactor\b`,
				`\bdesign\b`,
				`\bprove\b`,
				`\bstep.by.step\b`,
				`\bin detail\b`,
				`\breview\b`,
				`\btranslate .{80,}`,
			},
		},
		{
			Route: domain.RouteFront,
			Patterns: []string{
				`^(hi|hello|hey)\b`,
				`\bthanks?\b`,
				`\bwhat is\b`,
				`\bwho is\b`,
				`\bdefine\b`,
			},
		},
	}
}

// New compiles a rule table into a Classifier. Patterns are compiled
// case-insensitively; a pattern that does not compile panics, since the
// table is static program data.
func New(rules []Rule) *Classifier {
	c := &Classifier{}
	for _, r := range rules {
		g := group{route: r.Route}
		for _, p := range r.Patterns {
			g.patterns = append(g.patterns, regexp.MustCompile(`(?i)`+p))
		}
		c.groups = append(c.groups, g)
	}
	return c
}

// Classify returns the route for the given prompt text. It is a pure
// function: no history, no randomness. Prompts matching no group fall
// through to the front route.
func (c *Classifier) Classify(prompt string) domain.Route {
	text := strings.ToLower(prompt)
	for _, g := range c.groups {
		for _, p := range g.patterns {
			if p.MatchString(text) {
				return g.route
			}
		}
	}
	return domain.RouteFront
}
