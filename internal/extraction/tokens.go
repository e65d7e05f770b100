package extraction

import "strings"

// Keys under which OCR engines we have seen deliver their recognized text.
var textListKeys = []string{"recognized_text", "texts", "lines", "fragments", "text"}

// NormalizeTokens adapts the heterogeneous result shapes produced by OCR
// engines into one ordered sequence of trimmed text fragments. Accepted
// shapes: a map carrying a recognized-text list under a known key, a bare
// list of strings, or a single text block with line breaks. Anything else
// degrades to an empty sequence.
func NormalizeTokens(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case []string:
		return trimAll(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				if t := strings.TrimSpace(s); t != "" {
					out = append(out, t)
				}
			}
		}
		return out
	case string:
		return trimAll(strings.Split(strings.ReplaceAll(v, "\r\n", "\n"), "\n"))
	case map[string]any:
		for _, key := range textListKeys {
			inner, ok := v[key]
			if !ok {
				continue
			}
			if toks := NormalizeTokens(inner); len(toks) > 0 {
				return toks
			}
		}
		return nil
	default:
		return nil
	}
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
