package version

import "testing"

func TestString(t *testing.T) {
	prevCommit, prevDate := GitCommit, BuildDate
	defer func() { GitCommit, BuildDate = prevCommit, prevDate }()

	GitCommit, BuildDate = "", ""
	if got := String(); got != Version {
		t.Fatalf("String() = %q, want bare version %q", got, Version)
	}

	GitCommit = "abc1234"
	if got, want := String(), Version+" (abc1234)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	BuildDate = "2026-08-31"
	if got, want := String(), Version+" (abc1234), built 2026-08-31"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
