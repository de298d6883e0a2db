package jd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_PreservesSkillCharacters(t *testing.T) {
	tokens := tokenize("c++, c# and node.js (ci/cd)")
	assert.Equal(t, []string{"c++", "c#", "and", "node.js", "ci/cd"}, tokens)
}

func TestTokenize_TrimsSentencePunctuation(t *testing.T) {
	tokens := tokenize("we use node.js. also python.")
	assert.Equal(t, []string{"we", "use", "node.js", "also", "python"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, tokenize(""))
	assert.Empty(t, tokenize("  ,;:  "))
}

func TestBaseForm(t *testing.T) {
	cases := map[string]string{
		"databases": "database",
		"libraries": "library",
		"dockers":   "docker",
		"pass":      "pass", // double-s is not a plural
		"aws":       "aws",  // too short to strip
		"its":       "its",
		"python":    "python",
	}
	for in, want := range cases {
		assert.Equal(t, want, baseForm(in), "baseForm(%q)", in)
	}
}
