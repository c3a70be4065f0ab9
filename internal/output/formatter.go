package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/vetfin/vetplan/internal/domain"
)

// Formatter renders calculated plans in a single output format
type Formatter interface {
	Name() string
	Format(results *domain.PlanComparison) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(results *domain.PlanComparison) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(results *domain.PlanComparison) ([]byte, error) {
	return f.F(results)
}

// registered formatters in display order
var formatters = []Formatter{
	ConsoleFormatter{},
	ConsoleVerboseFormatter{},
	CSVSummarizer{},
	DetailedCSVFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
	HTMLFormatter{},
}

var formatAliases = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"summary":         "console-lite",
	"projection-csv":  "detailed-csv",
	"yml":             "yaml",
}

// AvailableFormatterNames lists the canonical formatter names
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// AvailableFormatAliases lists the accepted alternate names, sorted
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// GetFormatterByName resolves a formatter by name or alias. It returns nil when
// nothing matches.
func GetFormatterByName(name string) Formatter {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := formatAliases[key]; ok {
		key = canonical
	}
	for _, f := range formatters {
		if f.Name() == key {
			return f
		}
	}
	return nil
}

// FileExtension returns the file extension conventionally used for a formatter
func FileExtension(f Formatter) string {
	switch f.Name() {
	case "csv", "detailed-csv":
		return "csv"
	case "json":
		return "json"
	case "yaml":
		return "yaml"
	case "html":
		return "html"
	default:
		return "txt"
	}
}

// WriteFormatted renders results and writes them to a timestamped file in the
// working directory, returning the file name
func WriteFormatted(f Formatter, results *domain.PlanComparison, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("retirement_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
