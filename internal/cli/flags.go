package cli

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// tokenize splits a command line on whitespace while keeping double-quoted
// strings intact (quotes are stripped).
func tokenize(line string) []string {
	var toks []string
	var sb strings.Builder
	inQuote := false
	flush := func() {
		if sb.Len() > 0 {
			toks = append(toks, sb.String())
			sb.Reset()
		}
	}
	for _, ch := range line {
		switch {
		case inQuote && ch == '"':
			inQuote = false
		case inQuote:
			sb.WriteRune(ch)
		case ch == '"':
			inQuote = true
		case unicode.IsSpace(ch):
			flush()
		default:
			sb.WriteRune(ch)
		}
	}
	flush()
	return toks
}

// flagSet holds the parsed --key value arguments of one command. Handlers
// consume flags via take/need; whatever remains is reported as ignored.
type flagSet map[string]string

// parseFlags reads "--key value" pairs; a flag followed by another flag (or
// nothing) gets the value "true".
func parseFlags(toks []string) flagSet {
	kv := make(flagSet)
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if !strings.HasPrefix(tok, "--") {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(tok, "--"))
		value := "true"
		if i+1 < len(toks) && !strings.HasPrefix(toks[i+1], "--") {
			i++
			value = toks[i]
		}
		kv[key] = value
	}
	return kv
}

func (f flagSet) take(key, fallback string) string {
	value, ok := f[key]
	if !ok {
		return fallback
	}
	delete(f, key)
	return value
}

func (f flagSet) need(key string) (string, error) {
	value, ok := f[key]
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("missing --%s", key)
	}
	delete(f, key)
	return value, nil
}

func (f flagSet) unused() []string {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
