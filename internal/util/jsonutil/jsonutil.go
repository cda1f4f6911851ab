// Package jsonutil recovers JSON payloads from LLM text output. Models are
// instructed to emit raw JSON but routinely wrap it in code fences or
// surround it with prose anyway.
package jsonutil

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Fence markers can show up anywhere in the output, not just at the edges,
// so they are stripped globally before slicing.
var reFence = regexp.MustCompile("```(?:json)?\n?")

// ExtractObject recovers a JSON value embedded in free-form model output:
// trim, strip every code-fence marker, re-trim, then slice from the first
// '{' to the last '}' when both exist. The slice discards leading and
// trailing prose but does not repair interior malformation; anything that
// still fails to parse is returned as an error.
func ExtractObject(text string) (json.RawMessage, error) {
	s := strings.TrimSpace(text)
	s = reFence.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start != -1 && end != -1 && end >= start {
		s = s[start : end+1]
	}

	raw := json.RawMessage(s)
	var scratch any
	if err := json.Unmarshal(raw, &scratch); err != nil {
		return nil, err
	}
	return raw, nil
}

// MarshalNoEscape encodes v into JSON without escaping <, >, & into <
// and friends, so prompt text and report bodies stay readable in logs.
func MarshalNoEscape(v any) ([]byte, error) {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return []byte(strings.TrimRight(sb.String(), "\n")), nil
}
