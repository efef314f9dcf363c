package getresult

import (
	"io"

	"github.com/viant/getresult/token"
)

// Parse assembles a Result from a fresh cursor: the first token must start
// the object enclosing the result fields.
func Parse(c token.Cursor, opts ...Option) (*Result, error) {
	kind, err := c.Next()
	if err != nil {
		return nil, err
	}
	if err = token.Expect(c, kind, token.StartObject); err != nil {
		return nil, err
	}
	return ParseEmbedded(c, opts...)
}

// ParseEmbedded assembles a Result whose fields start at the next token,
// which must be a field name. Assembly stops at the end of the enclosing object.
func ParseEmbedded(c token.Cursor, opts ...Option) (*Result, error) {
	kind, err := c.Next()
	if err != nil {
		return nil, err
	}
	if err = token.Expect(c, kind, token.FieldName); err != nil {
		return nil, err
	}
	options := resolveOptions(opts)
	return assemble(c, &options, nil, nil)
}

// ParseEmbeddedWith assembles a Result from a cursor already positioned on a
// field name. index and id are used unless the stream carries its own; an
// empty value means unknown.
func ParseEmbeddedWith(c token.Cursor, index, id string, opts ...Option) (*Result, error) {
	if err := token.Expect(c, c.Current(), token.FieldName); err != nil {
		return nil, err
	}
	options := resolveOptions(opts)
	return assemble(c, &options, optional(index), optional(id))
}

// Unmarshal assembles a Result from a JSON document.
func Unmarshal(data []byte, opts ...Option) (*Result, error) {
	options := resolveOptions(opts)
	return parseDocument(token.NewScanner(data, options.ScannerOptions...), &options)
}

// Decode reads r fully and assembles a Result from its JSON content.
func Decode(r io.Reader, opts ...Option) (*Result, error) {
	options := resolveOptions(opts)
	scanner, err := token.ReadScanner(r, options.ScannerOptions...)
	if err != nil {
		return nil, err
	}
	return parseDocument(scanner, &options)
}

func parseDocument(scanner *token.Scanner, options *Options) (*Result, error) {
	kind, err := scanner.Next()
	if err != nil {
		return nil, err
	}
	if err = token.Expect(scanner, kind, token.StartObject); err != nil {
		return nil, err
	}
	if kind, err = scanner.Next(); err != nil {
		return nil, err
	}
	if err = token.Expect(scanner, kind, token.FieldName); err != nil {
		return nil, err
	}
	result, err := assemble(scanner, options, nil, nil)
	if err != nil {
		return nil, err
	}
	if err = scanner.Done(); err != nil {
		return nil, err
	}
	return result, nil
}

func assemble(c token.Cursor, options *Options, index, id *string) (*Result, error) {
	result, err := newAssembler(c, options, index, id).assemble()
	if err != nil {
		return nil, err
	}
	options.Logger.LogAssembled(result)
	return result, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
