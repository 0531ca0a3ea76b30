package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes truncated by byte limit", "日本語のテスト名前", "日本語のテ"},
		{"mixed printable and control", "a\x00b\x01c\x02d", "abcd"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestSessionTerm(t *testing.T) {
	cases := []struct {
		name    string
		environ []string
		want    string
	}{
		{"xterm-256color", []string{"TERM=xterm-256color"}, "xterm-256color"},
		{"tmux", []string{"LANG=C", "TERM=tmux"}, "tmux"},
		{"linux", []string{"TERM=linux"}, "linux"},
		{"unknown term", []string{"TERM=evil-term"}, defaultTerm},
		{"path traversal", []string{"TERM=../../../etc/passwd"}, defaultTerm},
		{"empty string", []string{"TERM="}, defaultTerm},
		{"no TERM", nil, defaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sessionTerm(tc.environ); got != tc.want {
				t.Errorf("sessionTerm(%q) = %q, want %q", tc.environ, got, tc.want)
			}
		})
	}
}

func TestHostKeyPersistsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	first := loadOrCreateHostKey(path)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("host key not written: %v", err)
	}
	second := loadOrCreateHostKey(path)

	a, b := first.PublicKey().Marshal(), second.PublicKey().Marshal()
	if string(a) != string(b) {
		t.Fatal("reloaded host key differs from the generated one")
	}
}
