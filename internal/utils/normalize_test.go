package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Citroën", "citroen"},
		{"  Volkswagen   Gol  ", "volkswagen gol"},
		{"Inspeção Básica", "inspecao basica"},
		{"", ""},
	}

	for _, test := range tests {
		result := NormalizeText(test.input)
		if result != test.expected {
			t.Errorf("NormalizeText(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestNormalizePlaca(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abc-1234", "ABC1234"},
		{"ABC1D23", "ABC1D23"},
		{" bra 2e19 ", "BRA2E19"},
		{"", ""},
	}

	for _, test := range tests {
		result := NormalizePlaca(test.input)
		if result != test.expected {
			t.Errorf("NormalizePlaca(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestNormalizeIdentifiers(t *testing.T) {
	got := NormalizeIdentifiers([]string{"35 2099 001", "", "352099001", "abc"})
	want := []string{"352099001", "ABC"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeIdentifiers() = %v; expected %v", got, want)
	}

	if got := NormalizeIdentifiers(nil); got == nil || len(got) != 0 {
		t.Errorf("NormalizeIdentifiers(nil) deveria retornar slice vazio, got %#v", got)
	}
}
