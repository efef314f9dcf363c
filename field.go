package getresult

import "github.com/viant/getresult/token"

// Field is a named field holding one or more values of mixed scalar type.
type Field struct {
	name   string
	values []interface{}
}

// NewField creates a field; values are copied.
func NewField(name string, values ...interface{}) *Field {
	return &Field{name: name, values: append([]interface{}(nil), values...)}
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Values returns a copy of the field values.
func (f *Field) Values() []interface{} {
	return append([]interface{}(nil), f.values...)
}

// Value returns the first value or nil when the field has none.
func (f *Field) Value() interface{} {
	if len(f.values) == 0 {
		return nil
	}
	return f.values[0]
}

// Len returns number of values.
func (f *Field) Len() int { return len(f.values) }

// ReadField reads one named field record: the cursor must be positioned at a
// field name followed by an array of values. The cursor is left on the array end.
func ReadField(c token.Cursor) (*Field, error) {
	if err := token.Expect(c, c.Current(), token.FieldName); err != nil {
		return nil, err
	}
	name := c.Name()
	kind, err := c.Next()
	if err != nil {
		return nil, err
	}
	if err = token.Expect(c, kind, token.StartArray); err != nil {
		return nil, err
	}
	values, err := token.ReadList(c)
	if err != nil {
		return nil, err
	}
	return &Field{name: name, values: values}, nil
}
