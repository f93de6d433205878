package textutil

import (
	"strings"
	"testing"
)

func TestNormalize_Basic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello world"},
		{"  spaced \t out \n text  ", "spaced out text"},
		{"Test123 v2.0", "test123 v2 0"},
		{"", ""},
		{"!!! ??? ---", ""},
		{"already normalized", "already normalized"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_UnicodeFolding(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"CAFÉ", "café"},
		{"Grüße", "grüsse"}, // full folding expands ß
		{"ЙОЖ и КОТ", "йож и кот"},
		{"日本語 テスト", "日本語 テスト"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_OutputAlphabet(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"a--b__c..d",
		"  mixed\tCASE \n and; punctuation!  ",
		"émoji 🎉 inside",
	}
	for _, in := range inputs {
		got := Normalize(in)
		if strings.TrimSpace(got) != got {
			t.Fatalf("Normalize(%q) = %q has surrounding whitespace", in, got)
		}
		if strings.Contains(got, "  ") {
			t.Fatalf("Normalize(%q) = %q contains a double space", in, got)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"Grüße aus Köln",
		"",
		"...",
		"plain text with no punctuation",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestTail(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"hello world", 5, "world"},
		{"hello world", 11, "hello world"},
		{"hello world", 100, "hello world"},
		{"hello world", 0, ""},
		{"hello world", -3, ""},
		{"", 10, ""},
	}
	for _, c := range cases {
		if got := Tail(c.in, c.n); got != c.want {
			t.Fatalf("Tail(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}

func TestTail_MultibyteRunes(t *testing.T) {
	// Counted in characters, not bytes
	if got := Tail("héllo wörld", 5); got != "wörld" {
		t.Fatalf("Tail on multibyte input = %q, want %q", got, "wörld")
	}
	if got := Tail("日本語テスト", 3); got != "テスト" {
		t.Fatalf("Tail on CJK input = %q, want %q", got, "テスト")
	}
}

func TestWordSet(t *testing.T) {
	set := WordSet("the cat sat on the mat")
	if len(set) != 5 {
		t.Fatalf("expected 5 unique words, got %d: %v", len(set), set)
	}
	for _, w := range []string{"the", "cat", "sat", "on", "mat"} {
		if _, ok := set[w]; !ok {
			t.Fatalf("missing word %q in %v", w, set)
		}
	}
}

func TestWordSet_Empty(t *testing.T) {
	if set := WordSet(""); len(set) != 0 {
		t.Fatalf("expected empty set, got %v", set)
	}
	if set := WordSet("   \t\n  "); len(set) != 0 {
		t.Fatalf("expected empty set for whitespace input, got %v", set)
	}
}

func TestJaccard(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"a b c", "a b c", 1.0},
		{"a b", "c d", 0.0},
		{"a b c", "b c d", 0.5}, // 2 shared / 4 total
		{"", "a b", 0.0},
		{"a b", "", 0.0},
		{"", "", 0.0},
	}
	for _, c := range cases {
		got := Jaccard(WordSet(c.a), WordSet(c.b))
		if got != c.want {
			t.Fatalf("Jaccard(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestJaccard_Symmetric(t *testing.T) {
	a := WordSet("the quick brown fox")
	b := WordSet("the slow brown dog")
	if Jaccard(a, b) != Jaccard(b, a) {
		t.Fatalf("Jaccard is not symmetric: %v vs %v", Jaccard(a, b), Jaccard(b, a))
	}
}
