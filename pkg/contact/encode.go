package contact

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Format controls how a snapshot is serialised.
type Format string

const (
	// FormatJSON emits application/json payloads.
	FormatJSON Format = "json"
	// FormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	FormatFormURLEncoded Format = "form"
	// FormatPrettyText emits one name=value line per field.
	FormatPrettyText Format = "pretty"
)

// ParseFormat validates a user supplied format name. Empty selects JSON.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatFormURLEncoded:
		return FormatFormURLEncoded, nil
	case FormatPrettyText:
		return FormatPrettyText, nil
	default:
		return "", fmt.Errorf("contact: unsupported format %q", raw)
	}
}

// ContentType returns the MIME type produced by Encode for format.
func (f Format) ContentType() string {
	switch f {
	case FormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case FormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Encode serialises the snapshot. The message is omitted when empty, matching
// the display contract.
func (s Snapshot) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatFormURLEncoded:
		form := url.Values{}
		for _, f := range s.displayFields() {
			form.Set(f.String(), s.Get(f))
		}
		return []byte(form.Encode()), nil
	case FormatPrettyText:
		var b strings.Builder
		for _, f := range s.displayFields() {
			fmt.Fprintf(&b, "%s=%s\n", f, s.Get(f))
		}
		return []byte(b.String()), nil
	case FormatJSON, "":
		payload := make(map[string]string, fieldCount)
		for _, f := range s.displayFields() {
			payload[f.String()] = s.Get(f)
		}
		return json.Marshal(payload)
	default:
		return nil, fmt.Errorf("contact: unsupported format %q", format)
	}
}

func (s Snapshot) displayFields() []Field {
	if s.HasMessage() {
		return Fields()
	}
	return []Field{FirstName, LastName, Email}
}
