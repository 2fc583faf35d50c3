package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsTrigger(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"anyone seen the latest episode?", true},
		{"looking for a good kdrama", true},
		{"Where To Watch this show", true},
		{"what's for lunch", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ContainsTrigger(tt.content), "content %q", tt.content)
	}
}

func TestCandidateTerms(t *testing.T) {
	terms := CandidateTerms("anyone seen Crash Landing? best drama ever!")

	assert.Contains(t, terms, "crash")
	assert.Contains(t, terms, "landing")
	assert.NotContains(t, terms, "drama") // trigger keywords are stripped
}

func TestCandidateTermsDropsShortWords(t *testing.T) {
	terms := CandidateTerms("is it on tv episode")
	for _, term := range terms {
		assert.GreaterOrEqual(t, len([]rune(term)), 3)
	}
}
