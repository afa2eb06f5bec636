package logfields

import (
	"log/slog"
	"testing"
	"time"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    interface{}
	}{
		{"Component", KeyComponent, "docs", Component("docs")},
		{"Version", KeyVersion, "2.0", Version("2.0")},
		{"Module", KeyModule, "ROOT", Module("ROOT")},
		{"Family", KeyFamily, "page", Family("page")},
		{"URL", KeyURL, "http://example", URL("http://example")},
		{"Stage", KeyStage, "classify", Stage("classify")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"File", KeyFile, "file.adoc", File("file.adoc")},
		{"Repository", KeyRepo, "repo1", Repository("repo1")},
		{"Section", KeySection, "sec", Section("sec")},
	}

	for _, tc := range cases {
		a := tc.attr.(slog.Attr)
		if a.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, a.Key)
		}
		if got := a.Value.String(); got != tc.attrVal { // Value is slog.Value
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

// TestNumericHelpers verifies keys for numeric & float helpers.
func TestNumericHelpers(t *testing.T) {
	if v := DurationMS(12.5); v.Key != KeyDurationMS {
		t.Fatalf("DurationMS key mismatch: %s", v.Key)
	}
	if v := Duration(1500 * time.Millisecond); v.Key != KeyDurationMS {
		t.Fatalf("Duration key mismatch: %s", v.Key)
	} else if got := v.Value.Float64(); got != 1500 {
		t.Fatalf("Duration value mismatch: got %v", got)
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError {
		t.Fatalf("Error key mismatch: %s", attr.Key)
	}
	if attr.Value.String() != "" {
		t.Fatalf("Expected empty error string, got %s", attr.Value.String())
	}
	attr = Error(errTest{})
	if attr.Value.String() != "err-test" {
		t.Fatalf("Expected 'err-test', got %s", attr.Value.String())
	}
}

type errTest struct{}

func (e errTest) Error() string { return "err-test" }
