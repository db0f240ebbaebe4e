package format

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders typed records as aligned tables: a slice
// becomes one row per record, a single struct becomes a vertical
// property/value table.
type TableFormatter struct {
	useColors bool
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(useColors bool) *TableFormatter {
	return &TableFormatter{
		useColors: useColors,
	}
}

// column describes one renderable struct field
type column struct {
	label string
	index int
}

// Format formats data as a table
func (f *TableFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Println("No data to display")
		return nil
	}

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			fmt.Println("No data to display")
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice:
		return f.formatRows(v)
	case reflect.Struct:
		return f.formatRecord(v)
	default:
		fmt.Printf("%v\n", data)
		return nil
	}
}

// formatRows renders a slice of records, one table row each
func (f *TableFormatter) formatRows(v reflect.Value) error {
	if v.Len() == 0 {
		fmt.Println("No data to display")
		return nil
	}

	elem := v.Index(0)
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		for i := 0; i < v.Len(); i++ {
			fmt.Printf("%v\n", v.Index(i).Interface())
		}
		return nil
	}

	cols := columns(elem.Type())
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.label
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	f.configureTable(table, len(headers))

	for i := 0; i < v.Len(); i++ {
		row := v.Index(i)
		if row.Kind() == reflect.Ptr {
			row = row.Elem()
		}
		values := make([]string, len(cols))
		for j, col := range cols {
			values[j] = f.formatValue(row.Field(col.index).Interface())
		}
		table.Append(values)
	}

	table.Render()
	return nil
}

// formatRecord renders a single record vertically
func (f *TableFormatter) formatRecord(v reflect.Value) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Property", "Value"})
	f.configureTable(table, 2)

	for _, col := range columns(v.Type()) {
		table.Append([]string{
			col.label,
			f.formatValue(v.Field(col.index).Interface()),
		})
	}

	table.Render()
	return nil
}

// columns selects the renderable fields of a record type. Labels come
// from the yaml tag when present; nested slices and structs that cannot
// print as a single cell are skipped.
func columns(t reflect.Type) []column {
	cols := make([]column, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		label := field.Name
		if tag := field.Tag.Get("yaml"); tag != "" {
			name := strings.Split(tag, ",")[0]
			if name == "-" {
				continue
			}
			if name != "" {
				label = name
			}
		}

		if !cellable(field.Type) {
			continue
		}

		cols = append(cols, column{label: formatHeader(label), index: i})
	}
	return cols
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// cellable reports whether a field type renders as a single table cell
func cellable(t reflect.Type) bool {
	if t.Implements(stringerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Map, reflect.Struct, reflect.Ptr:
		return false
	default:
		return true
	}
}

// configureTable sets up table appearance. SetHeaderColor requires one
// color entry per column.
func (f *TableFormatter) configureTable(table *tablewriter.Table, cols int) {
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	if f.useColors {
		colors := make([]tablewriter.Colors, cols)
		for i := range colors {
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiBlueColor}
		}
		table.SetHeaderColor(colors...)
	}
}

// formatHeader converts a snake_case label to Title Case
func formatHeader(header string) string {
	words := strings.Split(header, "_")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}

// formatValue formats a value for display
func (f *TableFormatter) formatValue(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%.2f", v)
	case bool:
		if f.useColors {
			if v {
				return color.GreenString("true")
			}
			return color.RedString("false")
		}
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
