package domain

import "testing"

func TestNormalizeDraft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "crlf to lf", input: "一行目\r\n二行目", want: "一行目\n二行目"},
		{name: "bare cr", input: "a\rb", want: "a\nb"},
		{name: "trailing spaces stripped", input: "質問です。  \t\n次へ", want: "質問です。\n次へ"},
		{name: "leading blank lines trimmed", input: "\n\n本文", want: "本文"},
		{name: "trailing blank lines trimmed", input: "本文\n\n\n", want: "本文"},
		{name: "inner blank line kept", input: "一\n\n二", want: "一\n\n二"},
		{name: "leading indentation kept", input: "　字下げ", want: "　字下げ"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeDraft(tt.input); got != tt.want {
				t.Errorf("NormalizeDraft(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\n\t", true},
		{"　　", true},
		{"質問", false},
		{" a ", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
