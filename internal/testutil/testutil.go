// Package testutil gates slow stress tests behind the same
// unit/integration split the rest of the test suite uses.
package testutil

import (
	"os"
	"testing"
)

// Unit returns true when only fast unit tests should run. It honors
// the -short flag and the LOGQ_UNIT_TESTS_ONLY / LOGQ_RUN_STRESS_TESTS
// environment variables.
func Unit() bool {
	if os.Getenv("LOGQ_UNIT_TESTS_ONLY") == "true" {
		return true
	}
	if os.Getenv("LOGQ_RUN_STRESS_TESTS") == "true" {
		return false
	}
	return testing.Short()
}

// SkipIfUnit skips the test in unit mode.
func SkipIfUnit(t *testing.T, message ...string) {
	t.Helper()
	if Unit() {
		msg := "skipping stress test in unit mode"
		if len(message) > 0 {
			msg = message[0]
		}
		t.Skip(msg)
	}
}
