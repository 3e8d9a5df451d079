package devutil

import "encoding/json"

// Pick projects any struct or map onto the requested JSON keys. The fetch
// cmds use it to print compact one-line summaries of scraped turma records
// without dumping the whole page.
func Pick(v any, keys ...string) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if val, ok := m[k]; ok {
			out[k] = val
		}
	}
	return out
}
