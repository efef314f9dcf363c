// Package token defines the token cursor contract consumed by the get result
// assembler together with a JSON scanner implementing it.
package token

// Kind identifies a token produced by a Cursor.
type Kind uint8

const (
	// None is the cursor state before the first Next call.
	None Kind = iota
	StartObject
	EndObject
	StartArray
	EndArray
	FieldName
	String
	Number
	Bool
	Null
	// EOF is returned once the top level value has been consumed.
	EOF
)

var kindNames = [...]string{
	None:        "none",
	StartObject: "start_object",
	EndObject:   "end_object",
	StartArray:  "start_array",
	EndArray:    "end_array",
	FieldName:   "field_name",
	String:      "value_string",
	Number:      "value_number",
	Bool:        "value_boolean",
	Null:        "value_null",
	EOF:         "eof",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsValue reports whether k is a non null scalar value.
// Null is deliberately excluded: a null carries no value to assign.
func (k Kind) IsValue() bool {
	switch k {
	case String, Number, Bool:
		return true
	}
	return false
}

// IsScalar reports whether k is any scalar, null included.
func (k Kind) IsScalar() bool {
	return k.IsValue() || k == Null
}

// Cursor is a pull based token stream over one hierarchical document.
//
// Next advances to the following token. Current and Name describe the token
// the cursor is positioned at; Name is the field name owning the current
// token (for a start object/array it is the name of the field holding the
// container). Typed readers coerce the current scalar. Skip consumes the whole
// container the cursor is positioned at, leaving it on the matching end token;
// it is a no-op on any other token.
type Cursor interface {
	Next() (Kind, error)
	Current() Kind
	Name() string
	Text() (string, error)
	Int64() (int64, error)
	Bool() (bool, error)
	Value() (interface{}, error)
	Skip() error
	Offset() int
}
