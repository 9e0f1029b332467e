// Package fstest provides a conformance test suite for filesystem providers
// that path-backed data sources are opened through.
//
// The suite checks the parts of the core interfaces data sources rely on:
// reading files in full, reporting missing files with fs.ErrNotExist,
// returning independent handles on every Open, and seeking.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/szio/fs/core"
)

// FSTestConfig configures the test suite.
type FSTestConfig struct {
	// SkipTests lists test groups to skip, e.g. "Streams".
	SkipTests []string
}

// TestSuite runs all conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each group,
// since groups seed their own fixtures.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, FSTestConfig{})
}

// TestSuiteWithConfig runs conformance tests, skipping configured groups.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	shouldSkip := func(testName string) bool {
		for _, skip := range config.SkipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	t.Run("ReadFS", func(t *testing.T) {
		if shouldSkip("ReadFS") {
			t.Skip("Skipped by provider configuration")
			return
		}
		TestReadFS(t, newFS())
	})

	t.Run("Streams", func(t *testing.T) {
		if shouldSkip("Streams") {
			t.Skip("Skipped by provider configuration")
			return
		}
		TestStreams(t, newFS())
	})
}
