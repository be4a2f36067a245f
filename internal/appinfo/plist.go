// ABOUTME: Application identity lookup (name and version).
// ABOUTME: On macOS the values come from the enclosing bundle's Info.plist.
package appinfo

import (
	"encoding/xml"
	"errors"
	"io"
)

// parseInfoPlist reads the string-valued entries of a plist's top-level dict.
// Nested dicts and arrays are skipped; non-string values clear the pending
// key. Only what bundle identity needs (CFBundleName, CFBundleVersion, ...)
// is extracted.
func parseInfoPlist(r io.Reader) (map[string]string, error) {
	dec := xml.NewDecoder(r)
	values := make(map[string]string)

	depth := 0 // container nesting; 1 = top-level dict
	currentKey := ""

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "plist":
				// Document wrapper, no nesting.
			case "dict", "array":
				if depth == 1 {
					currentKey = ""
				}
				depth++
			case "key":
				var k string
				if err := dec.DecodeElement(&k, &el); err != nil {
					return nil, err
				}
				if depth == 1 {
					currentKey = k
				}
			case "string":
				var v string
				if err := dec.DecodeElement(&v, &el); err != nil {
					return nil, err
				}
				if depth == 1 && currentKey != "" {
					values[currentKey] = v
					currentKey = ""
				}
			default:
				// true/false/integer/date/data values.
				if err := dec.Skip(); err != nil {
					return nil, err
				}
				if depth == 1 {
					currentKey = ""
				}
			}
		case xml.EndElement:
			if el.Name.Local == "dict" || el.Name.Local == "array" {
				depth--
			}
		}
	}

	return values, nil
}
