package compare

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/jeevanlakshya/plan733/internal/domain"
)

func buildTestComparisonSet(t *testing.T) *ComparisonSet {
	t.Helper()
	compSet, err := newCompareEngine().CompareTerms(25, domain.DefaultBonusConfig(), CompareOptions{
		Product: "Jeevan Lakshya 733",
		Terms:   []int{13, 20, 25},
	})
	if err != nil {
		t.Fatalf("CompareTerms() error = %v", err)
	}
	return compSet
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}

	result := formatter.Format(buildTestComparisonSet(t))

	for _, want := range []string{
		"TERM COMPARISON",
		"Product: Jeevan Lakshya 733",
		"Age at entry: 25",
		"13 years (base)",
		"₹21,182",
		"₹4,35,000",
		"COMPARISON TO BASE",
		"Annual Premium:   -₹12,920",
		"Maturity:         +₹1,18,000",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}

	compSet, err := newCompareEngine().CompareTerms(50, domain.DefaultBonusConfig(), CompareOptions{Terms: []int{15}})
	if err != nil {
		t.Fatalf("CompareTerms() error = %v", err)
	}

	result := formatter.Format(compSet)

	if !strings.Contains(result, "15 years (base)") {
		t.Error("Expected base row in output")
	}
	if strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("Did not expect comparison section without alternatives")
	}
	if strings.Contains(result, "RECOMMENDATIONS") {
		t.Error("Did not expect recommendations without alternatives")
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}

	result := formatter.FormatCompact(buildTestComparisonSet(t))

	if result != "Base: 13 years | 20: +73,000 | 25: +1,18,000" {
		t.Errorf("Unexpected compact output: %s", result)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}

	result, err := formatter.Format(buildTestComparisonSet(t))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(result)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("Expected header plus 3 rows, got %d", len(records))
	}
	if records[0][0] != "Term" {
		t.Errorf("Expected header, got %v", records[0])
	}
	if records[1][1] != "base" || records[1][0] != "13" {
		t.Errorf("Expected base row for term 13, got %v", records[1])
	}
	if records[3][6] != "435000" {
		t.Errorf("Expected maturity 435000 for term 25, got %s", records[3][6])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		formatter := &JSONFormatter{Pretty: pretty}

		result, err := formatter.Format(buildTestComparisonSet(t))
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}

		var decoded struct {
			Age                int                      `json:"age"`
			BaseTerm           int                      `json:"baseTerm"`
			AlternativeResults []map[string]interface{} `json:"alternativeResults"`
			Recommendations    []string                 `json:"recommendations"`
		}
		if err := json.Unmarshal([]byte(result), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded.Age != 25 || decoded.BaseTerm != 13 {
			t.Errorf("Unexpected header fields: %+v", decoded)
		}
		if len(decoded.AlternativeResults) != 2 {
			t.Errorf("Expected 2 alternatives, got %d", len(decoded.AlternativeResults))
		}
		if _, ok := decoded.AlternativeResults[0]["Quote"]; ok {
			t.Error("Quote should not be serialised")
		}
		if pretty != strings.Contains(result, "\n  ") {
			t.Errorf("pretty=%v mismatch in output", pretty)
		}
	}
}
