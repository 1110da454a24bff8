package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/escalate-ai/router/internal/domain"
)

func TestClassifyDefaultRules(t *testing.T) {
	c := New(DefaultRules())

	tests := []struct {
		name   string
		prompt string
		want   domain.Route
	}{
		{"no match falls through to front", "purple elephant", domain.RouteFront},
		{"greeting", "Hello there", domain.RouteFront},
		{"complex only", "please analyze this dataset", domain.RouteBack},
		{"code request", "write a function that reverses a list", domain.RouteBack},
		{"search keyword", "search for cheap flights", domain.RouteSearch},
		{"weather", "what's the weather in Oslo", domain.RouteSearch},
		{"empty prompt", "", domain.RouteFront},
		{"case insensitive", "ANALYZE my logs", domain.RouteBack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.prompt))
		})
	}
}

func TestSearchOutranksBack(t *testing.T) {
	c := New(DefaultRules())

	// Matches both a search pattern ("find", "latest") and a back pattern
	// ("research"); the search group is evaluated first and must win.
	got := c.Classify("find the latest research on fusion energy")
	assert.Equal(t, domain.RouteSearch, got)
}

func TestClassifyIsPure(t *testing.T) {
	c := New(DefaultRules())

	first := c.Classify("summarize this paper")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify("summarize this paper"))
	}
}

func TestCustomRuleTableOrder(t *testing.T) {
	// Flipping the table order flips the overlap winner; the priority lives
	// in data, not code.
	c := New([]Rule{
		{Route: domain.RouteBack, Patterns: []string{`\bresearch\b`}},
		{Route: domain.RouteSearch, Patterns: []string{`\bfind\b`}},
	})

	assert.Equal(t, domain.RouteBack, c.Classify("find research on X"))
}
