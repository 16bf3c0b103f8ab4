package foodlog

import "testing"

func TestRequestGuardSingleFlight(t *testing.T) {
	guard := newRequestGuard()

	if !guard.begin("user-a") {
		t.Fatal("first begin should succeed")
	}
	if guard.begin("user-a") {
		t.Fatal("second begin for the same user should be refused")
	}

	// Other users are unaffected.
	if !guard.begin("user-b") {
		t.Fatal("begin for a different user should succeed")
	}

	guard.end("user-a")
	if !guard.begin("user-a") {
		t.Fatal("begin after end should succeed")
	}
}

func TestRequestGuardEndWithoutBegin(t *testing.T) {
	guard := newRequestGuard()

	guard.end("user-a")
	if !guard.begin("user-a") {
		t.Fatal("begin should succeed after a spurious end")
	}
}
