package appinfo

import (
	"strings"
	"testing"
)

const samplePlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>CFBundleExecutable</key>
    <string>brightray</string>
    <key>CFBundleName</key>
    <string>Brightray</string>
    <key>CFBundleVersion</key>
    <string>1.2.3</string>
    <key>LSUIElement</key>
    <true/>
    <key>CFBundleDocumentTypes</key>
    <array>
        <dict>
            <key>CFBundleTypeName</key>
            <string>nested-should-be-ignored</string>
        </dict>
    </array>
</dict>
</plist>`

func TestParseInfoPlist_TopLevelStrings(t *testing.T) {
	values, err := parseInfoPlist(strings.NewReader(samplePlist))
	if err != nil {
		t.Fatalf("parseInfoPlist() error: %v", err)
	}

	if got := values["CFBundleName"]; got != "Brightray" {
		t.Errorf("CFBundleName = %q, want %q", got, "Brightray")
	}
	if got := values["CFBundleVersion"]; got != "1.2.3" {
		t.Errorf("CFBundleVersion = %q, want %q", got, "1.2.3")
	}
	if got := values["CFBundleExecutable"]; got != "brightray" {
		t.Errorf("CFBundleExecutable = %q, want %q", got, "brightray")
	}
}

func TestParseInfoPlist_NestedValuesIgnored(t *testing.T) {
	values, err := parseInfoPlist(strings.NewReader(samplePlist))
	if err != nil {
		t.Fatalf("parseInfoPlist() error: %v", err)
	}

	if _, exists := values["CFBundleTypeName"]; exists {
		t.Error("nested dict key leaked into top-level values")
	}
}

func TestParseInfoPlist_NonStringValueClearsKey(t *testing.T) {
	values, err := parseInfoPlist(strings.NewReader(samplePlist))
	if err != nil {
		t.Fatalf("parseInfoPlist() error: %v", err)
	}

	if _, exists := values["LSUIElement"]; exists {
		t.Error("boolean value should not be recorded as a string")
	}
}

func TestParseInfoPlist_MissingKey(t *testing.T) {
	values, err := parseInfoPlist(strings.NewReader(samplePlist))
	if err != nil {
		t.Fatalf("parseInfoPlist() error: %v", err)
	}

	// Absent keys read as empty string, no error path.
	if got := values["CFBundleIdentifier"]; got != "" {
		t.Errorf("absent key = %q, want empty", got)
	}
}

func TestParseInfoPlist_Malformed(t *testing.T) {
	_, err := parseInfoPlist(strings.NewReader("<plist><dict><key>oops"))
	if err == nil {
		t.Error("expected error for truncated plist")
	}
}

func TestParseInfoPlist_EmptyDict(t *testing.T) {
	values, err := parseInfoPlist(strings.NewReader(`<plist version="1.0"><dict/></plist>`))
	if err != nil {
		t.Fatalf("parseInfoPlist() error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("empty dict produced %d values", len(values))
	}
}
