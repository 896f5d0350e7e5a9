package llm

import (
	"encoding/json"
)

// extractor pulls the reply text out of one vendor's response envelope
type extractor func(v map[string]any) (string, bool)

// extractors is tried in priority order; the first match wins.
// Shapes: OpenAI chat completions, Gemini, Wenxin (result), Qwen
// (output.text), Baichuan/Spark/Minimax (output[0].content[0].text),
// and the /v1/responses array shape (output[0].text).
var extractors = []extractor{
	func(v map[string]any) (string, bool) {
		return digString(v, "choices", 0, "message", "content")
	},
	func(v map[string]any) (string, bool) {
		return digString(v, "candidates", 0, "content", "parts", 0, "text")
	},
	func(v map[string]any) (string, bool) {
		return digString(v, "result")
	},
	func(v map[string]any) (string, bool) {
		return digString(v, "output", "text")
	},
	func(v map[string]any) (string, bool) {
		return digString(v, "output", 0, "content", 0, "text")
	},
	func(v map[string]any) (string, bool) {
		return digString(v, "output", 0, "text")
	},
}

// NormalizeResponse extracts the reply text from a raw response body,
// trying each known envelope shape in order.
func NormalizeResponse(body []byte) (string, bool) {
	var v map[string]any
	if err := json.Unmarshal(body, &v); err != nil {
		return "", false
	}
	for _, ex := range extractors {
		if text, ok := ex(v); ok && text != "" {
			return text, true
		}
	}
	return "", false
}

// digString walks a parsed JSON value by string keys and integer
// indexes, returning the string at the end of the path.
func digString(v any, path ...any) (string, bool) {
	cur := v
	for _, step := range path {
		switch key := step.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return "", false
			}
			cur, ok = m[key]
			if !ok {
				return "", false
			}
		case int:
			arr, ok := cur.([]any)
			if !ok || key < 0 || key >= len(arr) {
				return "", false
			}
			cur = arr[key]
		}
	}
	s, ok := cur.(string)
	return s, ok
}

// ExtractJSON returns the first balanced top-level JSON object embedded
// in free text. Models wrap their JSON in prose or code fences more
// often than not.
func ExtractJSON(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if start == -1 {
			if r == '{' {
				start = i
				depth = 1
			}
			continue
		}
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
	}
	return "", false
}
