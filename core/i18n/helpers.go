package i18n

import (
	"fmt"
	"maps"
	"strings"
)

// ReplacePlaceholders substitutes %{name} markers with values from placeholders.
// Unknown markers are left as is.
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "%{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "%{"+key+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func flatten(data map[string]any, prefix string) map[string]string {
	out := make(map[string]string)
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			maps.Copy(out, flatten(v, full))
		case map[string]string:
			for k, s := range v {
				out[full+"."+k] = s
			}
		default:
			out[full] = fmt.Sprint(v)
		}
	}
	return out
}
