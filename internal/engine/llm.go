package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// CallLLM sends a prompt to the configured text-generation capability and
// returns the raw reply. The reply is never assumed to be well-formed JSON;
// callers run it through the extraction cascade below.
func CallLLM(ctx context.Context, prompt string) (string, error) {
	metrics.LLMCalls.Add(1)
	if cfg.LLMClient == nil {
		metrics.LLMErrors.Add(1)
		return "", fmt.Errorf("no text-generation client configured")
	}
	resp, err := cfg.LLMClient.Complete(ctx, "", prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return strings.TrimSpace(resp), nil
}

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	bareObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
	bareArrayRe  = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
)

// ExtractJSONObject pulls a JSON object out of a possibly noisy reply:
// a fenced block explicitly labelled as JSON first, else the first
// balanced-looking {...} span. ok is false when neither is present.
func ExtractJSONObject(raw string) (s string, ok bool) {
	if m := fencedJSONRe.FindStringSubmatch(raw); len(m) > 1 {
		return m[1], true
	}
	if m := bareObjectRe.FindString(raw); m != "" {
		return m, true
	}
	return "", false
}

// ExtractJSONArray is the array counterpart of ExtractJSONObject: a fenced
// JSON block first, else the first [{...}] span.
func ExtractJSONArray(raw string) (s string, ok bool) {
	if m := fencedJSONRe.FindStringSubmatch(raw); len(m) > 1 {
		return m[1], true
	}
	if m := bareArrayRe.FindString(raw); m != "" {
		return m, true
	}
	return "", false
}
