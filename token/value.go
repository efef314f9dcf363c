package token

// ReadValue materializes the value at the cursor: scalars via Cursor.Value,
// objects as map[string]interface{} and arrays as []interface{}.
func ReadValue(c Cursor) (interface{}, error) {
	switch kind := c.Current(); kind {
	case StartObject:
		return ReadMap(c)
	case StartArray:
		return ReadList(c)
	default:
		if kind.IsScalar() {
			return c.Value()
		}
		return nil, Unexpected(c, kind, StartObject, StartArray, String, Number, Bool, Null)
	}
}

// ReadList materializes the array at the cursor, leaving the cursor on its end token.
func ReadList(c Cursor) ([]interface{}, error) {
	if err := Expect(c, c.Current(), StartArray); err != nil {
		return nil, err
	}
	list := make([]interface{}, 0)
	for {
		kind, err := c.Next()
		if err != nil {
			return nil, err
		}
		if kind == EndArray {
			return list, nil
		}
		item, err := ReadValue(c)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
}

// ReadMap materializes the object at the cursor, leaving the cursor on its end token.
// Duplicate keys keep the last value.
func ReadMap(c Cursor) (map[string]interface{}, error) {
	if err := Expect(c, c.Current(), StartObject); err != nil {
		return nil, err
	}
	result := make(map[string]interface{})
	for {
		kind, err := c.Next()
		if err != nil {
			return nil, err
		}
		if kind == EndObject {
			return result, nil
		}
		if err = Expect(c, kind, FieldName); err != nil {
			return nil, err
		}
		name := c.Name()
		if _, err = c.Next(); err != nil {
			return nil, err
		}
		item, err := ReadValue(c)
		if err != nil {
			return nil, err
		}
		result[name] = item
	}
}
