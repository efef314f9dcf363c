package token

// skipRawValue advances past the value at pos without producing tokens.
// depth is the number of containers already open around the value.
func (s *Scanner) skipRawValue(depth int) error {
	s.skipWS()
	if s.pos >= len(s.data) {
		return s.syntaxError(s.pos, "unexpected EOF")
	}
	switch c := s.data[s.pos]; c {
	case '{':
		return s.skipRawObject(depth + 1)
	case '[':
		return s.skipRawArray(depth + 1)
	case '"':
		return s.skipRawString()
	case 't':
		if s.match("true") {
			return nil
		}
	case 'f':
		if s.match("false") {
			return nil
		}
	case 'n':
		if s.match("null") {
			return nil
		}
	default:
		if c == '-' || (c >= '0' && c <= '9') {
			return s.scanNumber()
		}
	}
	return s.syntaxError(s.pos, "invalid token")
}

func (s *Scanner) skipRawObject(depth int) error {
	if depth > s.maxDepth {
		return s.syntaxError(s.pos, "maximum nesting depth exceeded")
	}
	s.pos++
	s.skipWS()
	if s.pos < len(s.data) && s.data[s.pos] == '}' {
		s.pos++
		return nil
	}
	for {
		if err := s.skipRawString(); err != nil {
			return err
		}
		s.skipWS()
		if s.pos >= len(s.data) || s.data[s.pos] != ':' {
			return s.syntaxError(s.pos, "expected ':'")
		}
		s.pos++
		if err := s.skipRawValue(depth); err != nil {
			return err
		}
		s.skipWS()
		if s.pos >= len(s.data) {
			return s.syntaxError(s.pos, "unexpected EOF in object")
		}
		if s.data[s.pos] == '}' {
			s.pos++
			return nil
		}
		if s.data[s.pos] != ',' {
			return s.syntaxError(s.pos, "expected ',' or '}'")
		}
		s.pos++
		s.skipWS()
		if s.policy == Tolerant && s.pos < len(s.data) && s.data[s.pos] == '}' {
			s.pos++
			return nil
		}
	}
}

func (s *Scanner) skipRawArray(depth int) error {
	if depth > s.maxDepth {
		return s.syntaxError(s.pos, "maximum nesting depth exceeded")
	}
	s.pos++
	s.skipWS()
	if s.pos < len(s.data) && s.data[s.pos] == ']' {
		s.pos++
		return nil
	}
	for {
		if err := s.skipRawValue(depth); err != nil {
			return err
		}
		s.skipWS()
		if s.pos >= len(s.data) {
			return s.syntaxError(s.pos, "unexpected EOF in array")
		}
		if s.data[s.pos] == ']' {
			s.pos++
			return nil
		}
		if s.data[s.pos] != ',' {
			return s.syntaxError(s.pos, "expected ',' or ']'")
		}
		s.pos++
		s.skipWS()
		if s.policy == Tolerant && s.pos < len(s.data) && s.data[s.pos] == ']' {
			s.pos++
			return nil
		}
	}
}

func (s *Scanner) skipRawString() error {
	if s.pos >= len(s.data) || s.data[s.pos] != '"' {
		return s.syntaxError(s.pos, "expected string")
	}
	start := s.pos
	s.pos++
	for s.pos < len(s.data) {
		switch c := s.data[s.pos]; {
		case c == '"':
			s.pos++
			return nil
		case c == '\\':
			_, n := decodeEscape(s.data[s.pos:])
			if n == 0 {
				return s.syntaxError(s.pos, "invalid escape sequence")
			}
			s.pos += n
			continue
		case c < 0x20:
			return s.syntaxError(s.pos, "invalid control character in string")
		}
		s.pos++
	}
	return s.syntaxError(start, "unterminated string")
}
