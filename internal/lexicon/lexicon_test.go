package lexicon

import "testing"

func TestDefaultsLoaded(t *testing.T) {
	l := New(nil, nil)
	pos, neg := l.Size()
	if pos == 0 || neg == 0 {
		t.Fatalf("expected non-empty default lists, got %d/%d", pos, neg)
	}
	if !l.IsPositive("great") {
		t.Error("expected 'great' to be positive")
	}
	if !l.IsNegative("terrible") {
		t.Error("expected 'terrible' to be negative")
	}
	if l.IsPositive("terrible") || l.IsNegative("great") {
		t.Error("terms leaked into the wrong list")
	}
}

func TestAdditionsAreNormalized(t *testing.T) {
	l := New([]string{"  Stellar! "}, []string{"MELTDOWN."})
	if !l.IsPositive("stellar") {
		t.Error("expected normalized addition 'stellar' to be positive")
	}
	if !l.IsNegative("meltdown") {
		t.Error("expected normalized addition 'meltdown' to be negative")
	}
}

func TestLookupNormalizesQuery(t *testing.T) {
	l := New(nil, nil)
	if !l.IsPositive("Great!") {
		t.Error("expected lookup to normalize the queried term")
	}
}

func TestCustomSkipsDefaults(t *testing.T) {
	l := Custom([]string{"great", "service"}, []string{"terrible", "wait"})
	if l.IsPositive("good") {
		t.Error("custom lexicon should not contain built-in defaults")
	}
	if !l.IsPositive("service") || !l.IsNegative("wait") {
		t.Error("custom terms missing")
	}
}
