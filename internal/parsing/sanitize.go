// Package parsing is the sole boundary between untrusted model text and the
// typed data model. Every generation response in the pipeline passes through
// the sanitizer before anything else touches it.
package parsing

import (
	"encoding/json"
	"strings"
)

// CleanFences removes markdown code-fence wrappers from model output.
// Models often wrap JSON in ```json ... ``` blocks even when instructed
// not to.
func CleanFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line: short, no spaces,
		// and not already JSON content.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.ContainsAny(firstLine, "{[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// SanitizeArray strips wrapping from raw model output and returns the JSON
// encoding of the array it contains. Recovery order: strict parse of the
// cleaned text; unwrap of a single-key object holding an array (models
// sometimes emit {"stories": [...]}); the first-'['-to-last-']' substring
// of the raw text. A ParseError preserves the underlying diagnostic.
func SanitizeArray(raw string) (json.RawMessage, error) {
	cleaned := CleanFences(raw)

	var arr []json.RawMessage
	strictErr := json.Unmarshal([]byte(cleaned), &arr)
	if strictErr == nil {
		return json.RawMessage(cleaned), nil
	}

	// An object wrapping exactly one array value counts as that array.
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil {
		var found json.RawMessage
		count := 0
		for _, v := range obj {
			if json.Unmarshal(v, &arr) == nil {
				found = v
				count++
			}
		}
		if count == 1 {
			return found, nil
		}
	}

	// Last resort: bracket-substring recovery over the unstripped text.
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start >= 0 && end > start {
		candidate := raw[start : end+1]
		if json.Unmarshal([]byte(candidate), &arr) == nil {
			return json.RawMessage(candidate), nil
		}
	}

	return nil, &ParseError{
		Message: "response is not a JSON array",
		Cause:   strictErr,
	}
}

// SanitizeObject strips wrapping from raw model output and returns the JSON
// encoding of the object it contains.
func SanitizeObject(raw string) (json.RawMessage, error) {
	cleaned := CleanFences(raw)

	var obj map[string]json.RawMessage
	strictErr := json.Unmarshal([]byte(cleaned), &obj)
	if strictErr == nil {
		return json.RawMessage(cleaned), nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		candidate := raw[start : end+1]
		if json.Unmarshal([]byte(candidate), &obj) == nil {
			return json.RawMessage(candidate), nil
		}
	}

	return nil, &ParseError{
		Message: "response is not a JSON object",
		Cause:   strictErr,
	}
}
