package token

import (
	"bytes"
	"strconv"
)

// Copy writes the object or array at the cursor to dst as compact JSON and
// leaves the cursor on the container's end token. Formatting of the input is
// not preserved. Nothing is written to dst when the copy fails.
func Copy(dst *bytes.Buffer, c Cursor) error {
	if err := Expect(c, c.Current(), StartObject, StartArray); err != nil {
		return err
	}
	out, err := appendCurrent(dst.AvailableBuffer(), c)
	if err != nil {
		return err
	}
	dst.Write(out)
	return nil
}

func appendCurrent(dst []byte, c Cursor) ([]byte, error) {
	switch kind := c.Current(); kind {
	case StartObject:
		return appendObject(dst, c)
	case StartArray:
		return appendArray(dst, c)
	case String:
		text, err := c.Text()
		if err != nil {
			return dst, err
		}
		return appendQuoted(dst, text), nil
	case Number:
		if _, err := c.Value(); err != nil {
			return dst, err
		}
		text, err := c.Text()
		if err != nil {
			return dst, err
		}
		return append(dst, text...), nil
	case Bool:
		v, err := c.Bool()
		if err != nil {
			return dst, err
		}
		return strconv.AppendBool(dst, v), nil
	case Null:
		return append(dst, "null"...), nil
	default:
		return dst, Unexpected(c, kind, StartObject, StartArray, String, Number, Bool, Null)
	}
}

func appendObject(dst []byte, c Cursor) ([]byte, error) {
	dst = append(dst, '{')
	for i := 0; ; i++ {
		kind, err := c.Next()
		if err != nil {
			return dst, err
		}
		if kind == EndObject {
			return append(dst, '}'), nil
		}
		if err = Expect(c, kind, FieldName); err != nil {
			return dst, err
		}
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendQuoted(dst, c.Name())
		dst = append(dst, ':')
		if _, err = c.Next(); err != nil {
			return dst, err
		}
		if dst, err = appendCurrent(dst, c); err != nil {
			return dst, err
		}
	}
}

func appendArray(dst []byte, c Cursor) ([]byte, error) {
	dst = append(dst, '[')
	for i := 0; ; i++ {
		kind, err := c.Next()
		if err != nil {
			return dst, err
		}
		if kind == EndArray {
			return append(dst, ']'), nil
		}
		if i > 0 {
			dst = append(dst, ',')
		}
		if dst, err = appendCurrent(dst, c); err != nil {
			return dst, err
		}
	}
}
