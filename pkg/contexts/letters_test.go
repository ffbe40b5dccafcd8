package contexts

import (
	"reflect"
	"testing"
)

func TestFilterLetters(t *testing.T) {
	tests := []struct {
		input    []string
		expected []string
	}{
		{[]string{"isn't", "here"}, []string{"ISNT", "HERE"}},
		{[]string{"hello"}, []string{"HELLO"}},
		{[]string{"...", "a-b", "--"}, []string{"AB"}},
		{[]string{"", "x"}, []string{"X"}},
		{[]string{"..."}, []string{}},
		{[]string{}, []string{}},
	}

	for _, tt := range tests {
		result := FilterLetters(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("FilterLetters(%v) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestFilterLetters_Idempotent(t *testing.T) {
	inputs := [][]string{
		{"isn't", "HERE", "a1b2"},
		{"Déjà", "vu"},
		{"..."},
	}

	for _, input := range inputs {
		once := FilterLetters(input)
		twice := FilterLetters(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("FilterLetters(%v) is not idempotent: %v != %v", input, once, twice)
		}
	}
}

func TestLetterize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "HELLO"},
		{"isn't", "ISNT"},
		{"a1b2c3", "ABC"},
		{"123", ""},
		{"", ""},
		{"déjà", "DJ"},
	}

	for _, tt := range tests {
		if result := letterize(tt.input); result != tt.expected {
			t.Errorf("letterize(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
