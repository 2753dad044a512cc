package hpzt

import "testing"

func TestBestRun_PicksLongestEligibleCandidate(t *testing.T) {
	e := &Encoder{flags: DefaultFlags(), dict: defaultDictionary}

	kind, length := e.bestRun([]byte("    1234567"), 0)
	if kind != runSpace || length != 4 {
		t.Fatalf("bestRun = (%v, %d), want (runSpace, 4)", kind, length)
	}

	kind, length = e.bestRun([]byte("1234567    "), 0)
	if kind != runDigit || length != 7 {
		t.Fatalf("bestRun = (%v, %d), want (runDigit, 7)", kind, length)
	}
}

func TestBestRun_BelowMinimumDoesNotQualify(t *testing.T) {
	e := &Encoder{flags: DefaultFlags(), dict: defaultDictionary}

	// Two spaces is below spaceMin (4).
	if _, length := e.bestRun([]byte("  x"), 0); length != 0 {
		t.Fatalf("bestRun length = %d, want 0 for a sub-minimum run", length)
	}
}

func TestBestRun_DisabledFlagIsIgnored(t *testing.T) {
	e := &Encoder{flags: DefaultFlags() &^ FlagSpace, dict: defaultDictionary}

	if kind, length := e.bestRun([]byte("          "), 0); kind != runNone || length != 0 {
		t.Fatalf("bestRun = (%v, %d), want (runNone, 0) with FlagSpace disabled", kind, length)
	}
}

func TestRunParams_CoverEveryKind(t *testing.T) {
	for _, kind := range []runKind{runSpace, runNL, runDigit, runDash, runEqual} {
		token, base, minLen, maxTok := runParams(kind)
		if token == 0 || base <= 0 || minLen <= 0 || maxTok <= base {
			t.Fatalf("runParams(%v) returned degenerate values: token=%#x base=%d min=%d max=%d", kind, token, base, minLen, maxTok)
		}
	}
}
