package llm

import (
	"testing"
)

func TestNormalizeResponseEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"openai",
			`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`,
			"hello",
		},
		{
			"gemini",
			`{"candidates":[{"content":{"parts":[{"text":"hi there"}]}}]}`,
			"hi there",
		},
		{
			"wenxin result",
			`{"result":"answer text"}`,
			"answer text",
		},
		{
			"qwen output.text",
			`{"output":{"text":"qwen says"}}`,
			"qwen says",
		},
		{
			"nested output array",
			`{"output":[{"content":[{"text":"deep"}]}]}`,
			"deep",
		},
		{
			"responses array",
			`{"output":[{"text":"flat"}]}`,
			"flat",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeResponse([]byte(tt.body))
			if !ok {
				t.Fatalf("NormalizeResponse failed for %s", tt.body)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeResponsePriorityOrder(t *testing.T) {
	// When both shapes are present the OpenAI envelope wins.
	body := `{"result":"loser","choices":[{"message":{"content":"winner"}}]}`
	got, ok := NormalizeResponse([]byte(body))
	if !ok || got != "winner" {
		t.Errorf("got %q ok=%v, want winner", got, ok)
	}
}

func TestNormalizeResponseUnknown(t *testing.T) {
	if _, ok := NormalizeResponse([]byte(`{"something":"else"}`)); ok {
		t.Error("expected failure on unknown envelope")
	}
	if _, ok := NormalizeResponse([]byte(`not json`)); ok {
		t.Error("expected failure on invalid json")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"plain object", `{"a":1}`, `{"a":1}`, true},
		{"prose wrapped", "Sure, here you go:\n```json\n{\"a\": {\"b\": 2}}\n``` hope it helps", `{"a": {"b": 2}}`, true},
		{"brace in string", `{"a":"}{"}`, `{"a":"}{"}`, true},
		{"escaped quote", `{"a":"say \"hi\" {now}"}`, `{"a":"say \"hi\" {now}"}`, true},
		{"no object", "nothing here", "", false},
		{"unbalanced", `{"a": 1`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.text)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
