package main

import "testing"

func TestDeriveOutputName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single digit", "input3.txt", "output3.txt"},
		{"multiple digits", "input42.txt", "output42.txt"},
		{"no digits", "input.txt", "output.txt"},
		{"no txt suffix", "input3.dat", "output.txt"},
		{"digits after suffix", "input.txt3", "output.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveOutputName(tt.input); got != tt.want {
				t.Errorf("deriveOutputName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
