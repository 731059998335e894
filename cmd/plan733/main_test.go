package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeevanlakshya/plan733/internal/config"
	"github.com/jeevanlakshya/plan733/internal/domain"
)

const testProduct = "../../internal/config/testdata/product.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "plan733", root.Use)
	assert.NotEmpty(t, root.Short)
	assert.NotEmpty(t, root.Long)

	for _, name := range []string{"ages", "terms", "table", "quote", "payload", "rider", "what-if", "compare", "serve", "validate", "version"} {
		found, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}

	for _, flag := range []string{"config", "product", "log-level", "log-format"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"invalid-command"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestAgesCommand(t *testing.T) {
	out, err := execute(t, "ages")
	require.NoError(t, err)
	assert.Equal(t, "18 20 25 30 35 40 45 50\n", out)
}

func TestTermsCommand(t *testing.T) {
	out, err := execute(t, "terms", "--age", "50")
	require.NoError(t, err)
	assert.Equal(t, "13 15\n", out)

	_, err = execute(t, "terms", "--age", "26")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not offered")
}

func TestTableCommand(t *testing.T) {
	out, err := execute(t, "table")
	require.NoError(t, err)
	assert.Contains(t, out, "11,428")
	assert.Contains(t, out, "₹2,00,000")
	assert.Contains(t, out, "N/A")

	out, err = execute(t, "table", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"available": false`)

	_, err = execute(t, "table", "--format", "xml")
	assert.Error(t, err)
}

func TestTableCommand_YAMLRoundTrips(t *testing.T) {
	out, err := execute(t, "table", "--format", "yaml", "--product", testProduct)
	require.NoError(t, err)
	assert.Contains(t, out, "premiums:")

	product, err := config.NewInputParser().Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, []int{25, 30}, product.Table.AvailableAges())
	assert.Equal(t, 4, product.Table.Len())
	p, ok := product.Table.PremiumFor(30, 25)
	require.True(t, ok)
	assert.Equal(t, "8520", p.String())
}

func TestQuoteCommand_Console(t *testing.T) {
	out, err := execute(t, "quote", "--age", "25", "--term", "20", "--goal", "marriage", "--rider", "--death-year", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "₹11,428")
	assert.Contains(t, out, "Marriage")
	assert.Contains(t, out, "₹264")
	assert.Contains(t, out, "IF DEATH OCCURS IN POLICY YEAR 5")
}

func TestQuoteCommand_JSON(t *testing.T) {
	out, err := execute(t, "quote", "--age", "25", "--term", "20", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"annualPremium": "11428"`)
	assert.Contains(t, out, `"totalPremiumPaid": "194276"`)
}

func TestQuoteCommand_ProductFile(t *testing.T) {
	out, err := execute(t, "quote", "--product", testProduct, "--age", "25", "--term", "20", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"source": "precomputed"`)
	assert.Contains(t, out, `"estimatedMaturity": "380000"`)

	_, err = execute(t, "quote", "--product", testProduct, "--age", "18", "--term", "13")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.UnknownAge))
}

func TestQuoteCommand_Errors(t *testing.T) {
	_, err := execute(t, "quote", "--age", "25", "--term", "19")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.UnknownTerm))

	_, err = execute(t, "quote", "--age", "25", "--term", "20", "--goal", "retirement")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.UnknownGoal))

	_, err = execute(t, "quote", "--age", "25", "--term", "20", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	_, err = execute(t, "quote", "--age", "25")
	assert.Error(t, err, "term is required")
}

func TestQuoteCommand_PDFToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.pdf")
	out, err := execute(t, "quote", "--age", "30", "--term", "25", "--format", "pdf", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPayloadCommand(t *testing.T) {
	out, err := execute(t, "payload", "--goal", "marriage", "--age", "25", "--term", "20")
	require.NoError(t, err)
	assert.Contains(t, out, `"goalId": "marriage"`)
	assert.Contains(t, out, `"ppt": 17`)
}

func TestRiderCommand(t *testing.T) {
	out, err := execute(t, "rider", "--age", "25", "--term", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "₹264")

	_, err = execute(t, "rider", "--product", testProduct, "--age", "25", "--term", "15")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.RiderNotAvailable))
}

func TestWhatIfCommand(t *testing.T) {
	out, err := execute(t, "what-if", "--age", "25", "--term", "20", "--death-year", "5", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"deathYear": 5`)
	assert.Contains(t, out, `"premiumsWaived": "137136"`)

	_, err = execute(t, "what-if", "--age", "25", "--term", "20", "--death-year", "21")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.InvalidDeathYear))
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "compare", "--age", "25", "--format", "compact")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Base: 13 years"), out)

	out, err = execute(t, "compare", "--age", "25", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(out, "\n"), "header plus seven terms")

	_, err = execute(t, "compare", "--age", "26")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", testProduct)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "2 ages, 4 premium rows")

	_, err = execute(t, "validate", "missing.yaml")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "plan733 dev")
}

func TestLoadApp_InvalidLogLevel(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"ages", "--log-level", "loud"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
