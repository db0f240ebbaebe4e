package format

import (
	"fmt"
	"reflect"
)

// TextFormatter handles simple text output formatting
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format formats data as simple text
func (f *TextFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Println("No data")
		return nil
	}

	if s, ok := data.(string); ok {
		fmt.Println(s)
		return nil
	}

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			fmt.Println("No data")
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice:
		return f.formatSlice(v)
	case reflect.Struct:
		return f.formatStruct(v, "")
	default:
		fmt.Printf("%v\n", data)
		return nil
	}
}

// formatSlice formats a slice of records as numbered blocks
func (f *TextFormatter) formatSlice(v reflect.Value) error {
	if v.Len() == 0 {
		fmt.Println("No data")
		return nil
	}

	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			fmt.Println()
		}

		item := v.Index(i)
		if item.Kind() == reflect.Ptr {
			item = item.Elem()
		}
		if item.Kind() == reflect.Struct {
			fmt.Printf("Item %d:\n", i+1)
			if err := f.formatStruct(item, "  "); err != nil {
				return err
			}
		} else {
			fmt.Printf("%v\n", item.Interface())
		}
	}

	return nil
}

// formatStruct prints one line per renderable field
func (f *TextFormatter) formatStruct(v reflect.Value, indent string) error {
	for _, col := range columns(v.Type()) {
		fmt.Printf("%s%s: %v\n", indent, col.label, v.Field(col.index).Interface())
	}
	return nil
}
