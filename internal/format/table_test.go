package format

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRow struct {
	ID     string          `yaml:"id"`
	Name   string          `yaml:"name"`
	Amount decimal.Decimal `yaml:"amount"`
	Count  int             `yaml:"count"`
	Nested []string        `yaml:"nested"`
	hidden string
}

func TestColumnsSkipNonCellFields(t *testing.T) {
	cols := columns(reflect.TypeOf(sampleRow{}))
	require.Len(t, cols, 4)

	labels := make([]string, len(cols))
	for i, c := range cols {
		labels[i] = c.label
	}
	assert.Equal(t, []string{"Id", "Name", "Amount", "Count"}, labels)
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t, "Created At", formatHeader("created_at"))
	assert.Equal(t, "Name", formatHeader("name"))
}

func TestFormatValue(t *testing.T) {
	f := NewTableFormatter(false)

	assert.Equal(t, "hello", f.formatValue("hello"))
	assert.Equal(t, "42", f.formatValue(42))
	assert.Equal(t, "3.50", f.formatValue(3.5))
	assert.Equal(t, "true", f.formatValue(true))
	assert.Equal(t, "149.5", f.formatValue(decimal.NewFromFloat(149.5)))
	assert.Equal(t, "", f.formatValue(nil))
}
