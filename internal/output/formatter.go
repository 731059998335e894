package output

import (
	"fmt"
	"os"
	"sort"
)

// QuoteFormatter renders a report into bytes
type QuoteFormatter interface {
	Name() string
	Format(r *Report) ([]byte, error)
}

var formatters = map[string]QuoteFormatter{
	"console": ConsoleFormatter{},
	"json":    JSONFormatter{},
	"csv":     CSVFormatter{},
	"yaml":    YAMLFormatter{},
	"pdf":     PDFFormatter{},
}

var formatAliases = map[string]string{
	"text":    "console",
	"table":   "console",
	"yml":     "yaml",
	"summary": "csv",
}

// GetFormatterByName returns the formatter for a name or alias, nil when unknown
func GetFormatterByName(name string) QuoteFormatter {
	if target, ok := formatAliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists registered formatter names, sorted
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted aliases, sorted
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// DefaultFilename names a report file after its selection
func DefaultFilename(r *Report, ext string) string {
	return fmt.Sprintf("plan733_age%d_term%d.%s", r.Quote.Age, r.Quote.Term, ext)
}

// WriteFormatted renders the report and writes it to filename
func WriteFormatted(f QuoteFormatter, r *Report, filename string) error {
	data, err := f.Format(r)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
