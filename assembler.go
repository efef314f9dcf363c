package getresult

import "github.com/viant/getresult/token"

// assembler holds scratch state for one assembly; it is discarded once the
// Result is built.
type assembler struct {
	cursor  token.Cursor
	options *Options

	name           string
	index          *string
	id             *string
	version        int64
	seqNo          int64
	primaryTerm    int64
	found          *bool
	source         []byte
	documentFields map[string]*Field
	metaFields     map[string]*Field
}

func newAssembler(c token.Cursor, options *Options, index, id *string) *assembler {
	return &assembler{
		cursor:         c,
		options:        options,
		name:           c.Name(),
		index:          index,
		id:             id,
		version:        NotFoundVersion,
		seqNo:          UnassignedSeqNo,
		primaryTerm:    UnassignedPrimaryTerm,
		documentFields: map[string]*Field{},
		metaFields:     map[string]*Field{},
	}
}

// assemble consumes tokens up to the end of the enclosing object.
func (a *assembler) assemble() (*Result, error) {
	for {
		kind, err := a.cursor.Next()
		if err != nil {
			return nil, err
		}
		switch {
		case kind == token.EndObject:
			return a.result(), nil
		case kind == token.FieldName:
			a.name = a.cursor.Name()
		case kind.IsValue():
			err = a.onValue()
		case kind == token.StartObject:
			err = a.onObject()
		case kind == token.StartArray:
			err = a.onArray()
		case kind == token.Null:
			// null carries no value, the slot keeps its default
		default:
			err = token.Unexpected(a.cursor, kind, token.FieldName, token.EndObject)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (a *assembler) onValue() error {
	c := a.cursor
	switch k := lookupKey(a.name); k {
	case keyIndex:
		text, err := c.Text()
		if err != nil {
			return err
		}
		a.index = &text
	case keyID:
		text, err := c.Text()
		if err != nil {
			return err
		}
		a.id = &text
	case keyVersion:
		return a.readInt64(&a.version)
	case keySeqNo:
		return a.readInt64(&a.seqNo)
	case keyPrimaryTerm:
		return a.readInt64(&a.primaryTerm)
	case keyFound:
		found, err := c.Bool()
		if err != nil {
			return err
		}
		a.found = &found
	case keySource, keyFields, keyIgnored, keyIgnoredSource:
		return token.Unexpected(c, c.Current(), k.expected()...)
	default:
		value, err := c.Value()
		if err != nil {
			return err
		}
		a.putMeta(&Field{name: a.name, values: []interface{}{value}})
	}
	return nil
}

func (a *assembler) onObject() error {
	switch k := lookupKey(a.name); k {
	case keySource:
		source, err := captureSource(a.cursor, a.options.CompressSource)
		if err != nil {
			return err
		}
		a.source = source
	case keyFields:
		return a.readFields()
	case keyUnknown:
		return a.skip()
	default:
		return token.Unexpected(a.cursor, token.StartObject, k.expected()...)
	}
	return nil
}

func (a *assembler) onArray() error {
	switch k := lookupKey(a.name); k {
	case keyIgnored, keyIgnoredSource:
		values, err := token.ReadList(a.cursor)
		if err != nil {
			return err
		}
		a.putMeta(&Field{name: a.name, values: values})
	case keyUnknown:
		return a.skip()
	default:
		return token.Unexpected(a.cursor, token.StartArray, k.expected()...)
	}
	return nil
}

// readFields reads named field records until the fields object closes.
func (a *assembler) readFields() error {
	for {
		kind, err := a.cursor.Next()
		if err != nil {
			return err
		}
		if kind == token.EndObject {
			return nil
		}
		field, err := ReadField(a.cursor)
		if err != nil {
			return err
		}
		if field.name == "" {
			continue
		}
		a.documentFields[field.name] = field
	}
}

func (a *assembler) readInt64(dest *int64) error {
	value, err := a.cursor.Int64()
	if err != nil {
		return err
	}
	*dest = value
	return nil
}

func (a *assembler) putMeta(field *Field) {
	if field.name == "" {
		return
	}
	a.metaFields[field.name] = field
}

func (a *assembler) skip() error {
	kind, offset := a.cursor.Current(), a.cursor.Offset()
	if err := a.cursor.Skip(); err != nil {
		return err
	}
	a.options.Logger.LogSkipped(a.name, kind, offset)
	return nil
}

func (a *assembler) result() *Result {
	return &Result{
		index:          a.index,
		id:             a.id,
		seqNo:          a.seqNo,
		primaryTerm:    a.primaryTerm,
		version:        a.version,
		found:          a.found,
		source:         a.source,
		documentFields: a.documentFields,
		metaFields:     a.metaFields,
	}
}
