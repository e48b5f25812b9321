package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLTrim(t *testing.T) {
	tests := []struct {
		s, prefix string
		expected  string
	}{
		{"prefix_value", "prefix_", "value"},
		{"value", "prefix_", "value"},
		{"prefix_prefix_value", "prefix_", "prefix_value"},
		{"", "prefix_", ""},
		{"value", "", "value"},
	}

	for _, test := range tests {
		result := LTrim(test.s, test.prefix)
		if result != test.expected {
			t.Errorf("LTrim(%q, %q) = %q, expected %q", test.s, test.prefix, result, test.expected)
		}
	}
}

func TestRTrim(t *testing.T) {
	tests := []struct {
		s, suffix string
		expected  string
	}{
		{"value_suffix", "_suffix", "value"},
		{"value", "_suffix", "value"},
		{"value_suffix_suffix", "_suffix", "value_suffix"},
		{"_suffix", "_suffix", ""},
	}

	for _, test := range tests {
		result := RTrim(test.s, test.suffix)
		if result != test.expected {
			t.Errorf("RTrim(%q, %q) = %q, expected %q", test.s, test.suffix, result, test.expected)
		}
	}
}

func TestIEquals(t *testing.T) {
	assert.True(t, IEquals("ABC", "abc"))
	assert.True(t, IEquals("Radarr", "rADARR"))
	assert.True(t, IEquals("", ""))
	assert.True(t, IEquals("ПРИВЕТ", "привет"))
	assert.True(t, IEquals("TITLE", "title"), "mapping must not depend on a Turkish locale")
	assert.False(t, IEquals("abc", "abd"))
	assert.False(t, IEquals("abc", "abc "))
}

func TestMaxLength(t *testing.T) {
	tests := []struct {
		s        string
		max      int
		expected string
	}{
		{"hello world", 5, "hello ...."},
		{"hi", 5, "hi"},
		{"hello", 5, "hello"},
		{"héllo wörld", 4, "héll ...."},
		{"abc", 0, " ...."},
		{"abc", -3, " ...."},
		{"", 0, ""},
	}

	for _, test := range tests {
		result := MaxLength(test.s, test.max)
		if result != test.expected {
			t.Errorf("MaxLength(%q, %d) = %q, expected %q", test.s, test.max, result, test.expected)
		}
	}
}
