package hpzt

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDictionary_RejectsOversizedTable(t *testing.T) {
	phrases := make([]string, maxDictSize+1)
	for i := range phrases {
		phrases[i] = strings.Repeat("x", i+1)
	}

	if _, err := NewDictionary(phrases); !errors.Is(err, ErrDictTooLarge) {
		t.Fatalf("got %v, want ErrDictTooLarge", err)
	}
}

func TestNewDictionary_RejectsEmptyPhrase(t *testing.T) {
	if _, err := NewDictionary([]string{"ok", ""}); !errors.Is(err, ErrDictEmptyPhrase) {
		t.Fatalf("got %v, want ErrDictEmptyPhrase", err)
	}
}

func TestNewDictionary_RejectsReservedLeadByte(t *testing.T) {
	for _, bad := range []string{"\x00abc", "\x80abc", "\x84abc"} {
		if _, err := NewDictionary([]string{bad}); !errors.Is(err, ErrDictEmptyPhrase) {
			t.Fatalf("phrase %q: got %v, want ErrDictEmptyPhrase", bad, err)
		}
	}
}

func TestDictionary_LookupRoundTrip(t *testing.T) {
	d, err := NewDictionary([]string{"alpha", "beta", "gamma"})
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	for id, want := range map[int]string{1: "alpha", 2: "beta", 3: "gamma"} {
		got, ok := d.Lookup(id)
		if !ok || got != want {
			t.Fatalf("Lookup(%d) = %q, %v; want %q, true", id, got, ok, want)
		}
	}

	if _, ok := d.Lookup(0); ok {
		t.Fatal("Lookup(0) should fail, IDs are 1-based")
	}

	if _, ok := d.Lookup(4); ok {
		t.Fatal("Lookup(4) should fail, out of range")
	}
}

func TestDictionary_LongestMatchPrefersLongerPhrase(t *testing.T) {
	d, err := NewDictionary([]string{"a", "ab", "abc"})
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	block := []byte("abcd")
	id, length := d.longestMatch(block, 0)
	if length != 3 {
		t.Fatalf("longestMatch length = %d, want 3", length)
	}

	phrase, ok := d.Lookup(id)
	if !ok || phrase != "abc" {
		t.Fatalf("longestMatch id %d -> %q, want %q", id, phrase, "abc")
	}
}

func TestDictionary_LongestMatchRejectsTruncatedCandidate(t *testing.T) {
	d, err := NewDictionary([]string{"abcdef"})
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	if _, length := d.longestMatch([]byte("abc"), 0); length != 0 {
		t.Fatalf("longestMatch length = %d, want 0 for a phrase longer than the remaining block", length)
	}
}

func TestDictionaryFingerprint_SensitiveToOrderAndContent(t *testing.T) {
	a := dictionaryFingerprint([]string{"foo", "bar"})
	b := dictionaryFingerprint([]string{"bar", "foo"})
	c := dictionaryFingerprint([]string{"foo", "baz"})

	if a == b {
		t.Fatal("fingerprint should depend on phrase order")
	}

	if a == c {
		t.Fatal("fingerprint should depend on phrase content")
	}
}

func TestDefaultDictionary_WithinSizeBudget(t *testing.T) {
	if defaultDictionary.Len() > maxDictSize {
		t.Fatalf("default dictionary has %d phrases, exceeds maxDictSize %d", defaultDictionary.Len(), maxDictSize)
	}
}
