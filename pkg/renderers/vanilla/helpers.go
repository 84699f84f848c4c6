package vanilla

import "strings"

func componentLabelID(controlID string) string {
	if controlID == "" {
		return ""
	}
	return controlID + "-label"
}

func componentErrorID(controlID string) string {
	if controlID == "" {
		return ""
	}
	return controlID + "-error"
}

// sanitizeClassList drops reserved "contactform-" tokens so overrides cannot
// collide with the built-in chrome.
func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, "contactform-") {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
