package compare

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// JSONFormatter renders a comparison set for scripts. Pretty indents the output.
type JSONFormatter struct {
	Pretty bool
}

// Format encodes the set. Empty lists are written as [] rather than null.
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	if compSet == nil {
		return "", fmt.Errorf("no comparison to format")
	}
	out := *compSet
	if out.AlternativeResults == nil {
		out.AlternativeResults = []ComparisonResult{}
	}
	if out.Recommendations == nil {
		out.Recommendations = []string{}
	}

	encode := json.Marshal
	if jf.Pretty {
		encode = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	}
	data, err := encode(&out)
	if err != nil {
		return "", fmt.Errorf("encode comparison: %w", err)
	}
	return string(data), nil
}
