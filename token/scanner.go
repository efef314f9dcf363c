package token

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	stateOpen uint8 = iota
	stateName
	stateValue
)

type frame struct {
	kind  Kind
	state uint8
	name  string
}

// Scanner is a JSON Cursor over an in-memory document.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	data     []byte
	pos      int
	start    int
	end      int
	hooks    ScannerHooks
	policy   MalformedPolicy
	maxDepth int

	frames  []frame
	current Kind
	done    bool
	escaped bool
	boolean bool
	text    string
	decoded bool
}

// NewScanner creates a scanner over data. The scanner does not copy data;
// the caller must not modify it while scanning.
func NewScanner(data []byte, opts ...Option) *Scanner {
	s := &Scanner{
		data:     data,
		hooks:    byteHooks{},
		policy:   FailFast,
		maxDepth: DefaultMaxDepth,
		frames:   make([]frame, 0, 8),
	}
	Options(opts).Apply(s)
	return s
}

// ReadScanner reads r fully and creates a scanner over its content.
// Read errors are returned as is.
func ReadScanner(r io.Reader, opts ...Option) (*Scanner, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewScanner(data, opts...), nil
}

// Current returns the kind of the last token returned by Next.
func (s *Scanner) Current() Kind { return s.current }

// Offset returns the byte offset where the current token starts.
func (s *Scanner) Offset() int { return s.start }

// Depth returns the number of open containers.
func (s *Scanner) Depth() int { return len(s.frames) }

// Name returns the field name the current token belongs to. On a container
// start it is the name of the field holding the container; array elements
// report the name of the field holding the array.
func (s *Scanner) Name() string {
	n := len(s.frames)
	switch s.current {
	case StartObject, StartArray:
		if n >= 2 {
			return s.frames[n-2].name
		}
		return ""
	}
	if n > 0 {
		return s.frames[n-1].name
	}
	return ""
}

// Done verifies that the top level value is complete and only whitespace remains.
func (s *Scanner) Done() error {
	if len(s.frames) > 0 {
		return s.syntaxError(len(s.data), "unexpected EOF")
	}
	s.skipWS()
	if s.pos != len(s.data) {
		return s.syntaxError(s.pos, "unexpected trailing data")
	}
	return nil
}

// Next advances to the next token. It returns EOF once the top level value is
// complete; call Done to verify nothing but whitespace follows.
func (s *Scanner) Next() (Kind, error) {
	s.decoded = false
	s.skipWS()
	n := len(s.frames)
	if n == 0 {
		if s.done || s.pos >= len(s.data) {
			s.start = s.pos
			s.current = EOF
			return EOF, nil
		}
		return s.scanValue()
	}
	if s.pos >= len(s.data) {
		return s.current, s.syntaxError(s.pos, "unexpected EOF")
	}
	top := &s.frames[n-1]
	c := s.data[s.pos]
	if top.kind == StartObject {
		switch top.state {
		case stateOpen:
			if c == '}' {
				return s.closeFrame(EndObject)
			}
			return s.scanName(top)
		case stateName:
			if c != ':' {
				return s.current, s.syntaxError(s.pos, "expected ':'")
			}
			s.pos++
			s.skipWS()
			return s.scanValue()
		}
		if c == '}' {
			return s.closeFrame(EndObject)
		}
		if c != ',' {
			return s.current, s.syntaxError(s.pos, "expected ',' or '}'")
		}
		s.pos++
		s.skipWS()
		if s.policy == Tolerant && s.pos < len(s.data) && s.data[s.pos] == '}' {
			return s.closeFrame(EndObject)
		}
		return s.scanName(top)
	}
	if top.state == stateOpen {
		if c == ']' {
			return s.closeFrame(EndArray)
		}
		return s.scanValue()
	}
	if c == ']' {
		return s.closeFrame(EndArray)
	}
	if c != ',' {
		return s.current, s.syntaxError(s.pos, "expected ',' or ']'")
	}
	s.pos++
	s.skipWS()
	if s.policy == Tolerant && s.pos < len(s.data) && s.data[s.pos] == ']' {
		return s.closeFrame(EndArray)
	}
	return s.scanValue()
}

// Skip consumes the container the scanner is positioned at, leaving the
// scanner on its matching end token.
func (s *Scanner) Skip() error {
	var end Kind
	switch s.current {
	case StartObject:
		end = EndObject
	case StartArray:
		end = EndArray
	default:
		return nil
	}
	s.pos = s.start
	if err := s.skipRawValue(len(s.frames) - 1); err != nil {
		return err
	}
	s.start = s.pos - 1
	s.end = s.pos
	s.pop()
	s.current = end
	return nil
}

// Text returns the current string, or the literal text of a number or boolean.
func (s *Scanner) Text() (string, error) {
	switch s.current {
	case String:
		return s.stringValue()
	case Number:
		return string(s.data[s.start:s.end]), nil
	case Bool:
		return strconv.FormatBool(s.boolean), nil
	}
	return "", Unexpected(s, s.current, String, Number, Bool)
}

// Int64 returns the current number or numeric string as int64. Floats are
// truncated when they fit; anything else is a *NumberError.
func (s *Scanner) Int64() (int64, error) {
	var raw string
	switch s.current {
	case Number:
		raw = string(s.data[s.start:s.end])
	case String:
		text, err := s.stringValue()
		if err != nil {
			return 0, err
		}
		raw = text
	default:
		return 0, Unexpected(s, s.current, Number, String)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return v, nil
	}
	if strings.ContainsAny(raw, ".eE") {
		if f, ferr := strconv.ParseFloat(raw, 64); ferr == nil && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), nil
		}
	}
	return 0, &NumberError{Field: s.Name(), Text: raw, Offset: s.start, cause: err}
}

// Bool returns the current boolean; the strings "true" and "false" are accepted too.
func (s *Scanner) Bool() (bool, error) {
	switch s.current {
	case Bool:
		return s.boolean, nil
	case String:
		text, err := s.stringValue()
		if err != nil {
			return false, err
		}
		switch text {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, Unexpected(s, s.current, Bool)
}

// Value returns the current scalar as int64, uint64, float64, string, bool or nil.
func (s *Scanner) Value() (interface{}, error) {
	switch s.current {
	case String:
		return s.stringValue()
	case Number:
		return s.numberValue()
	case Bool:
		return s.boolean, nil
	case Null:
		return nil, nil
	}
	return nil, Unexpected(s, s.current, String, Number, Bool, Null)
}

func (s *Scanner) numberValue() (interface{}, error) {
	raw := string(s.data[s.start:s.end])
	if strings.ContainsAny(raw, ".eE") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &NumberError{Field: s.Name(), Text: raw, Offset: s.start, cause: err}
		}
		return f, nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i, nil
	}
	u, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, &NumberError{Field: s.Name(), Text: raw, Offset: s.start, cause: err}
	}
	return u, nil
}

func (s *Scanner) stringValue() (string, error) {
	if s.decoded {
		return s.text, nil
	}
	raw := s.data[s.start+1 : s.end-1]
	if !s.escaped {
		s.text = string(raw)
	} else {
		text, err := unescapeString(raw, s.start+1)
		if err != nil {
			return "", err
		}
		s.text = text
	}
	s.decoded = true
	return s.text, nil
}

func (s *Scanner) scanName(top *frame) (Kind, error) {
	if s.pos >= len(s.data) || s.data[s.pos] != '"' {
		return s.current, s.syntaxError(s.pos, "expected string key")
	}
	s.start = s.pos
	if err := s.scanString(); err != nil {
		return s.current, err
	}
	s.current = FieldName
	name, err := s.stringValue()
	if err != nil {
		return s.current, err
	}
	top.name = name
	top.state = stateName
	return FieldName, nil
}

func (s *Scanner) scanValue() (Kind, error) {
	if s.pos >= len(s.data) {
		return s.current, s.syntaxError(s.pos, "unexpected EOF")
	}
	s.start = s.pos
	if n := len(s.frames); n > 0 {
		s.frames[n-1].state = stateValue
	}
	var kind Kind
	switch c := s.data[s.pos]; c {
	case '{':
		return s.openFrame(StartObject)
	case '[':
		return s.openFrame(StartArray)
	case '"':
		if err := s.scanString(); err != nil {
			return s.current, err
		}
		kind = String
	case 't':
		if !s.match("true") {
			return s.current, s.syntaxError(s.pos, "invalid literal")
		}
		s.boolean = true
		kind = Bool
	case 'f':
		if !s.match("false") {
			return s.current, s.syntaxError(s.pos, "invalid literal")
		}
		s.boolean = false
		kind = Bool
	case 'n':
		if !s.match("null") {
			return s.current, s.syntaxError(s.pos, "invalid literal")
		}
		kind = Null
	default:
		if c != '-' && (c < '0' || c > '9') {
			return s.current, s.syntaxError(s.pos, fmt.Sprintf("invalid character %q", c))
		}
		if err := s.scanNumber(); err != nil {
			return s.current, err
		}
		kind = Number
	}
	s.end = s.pos
	if len(s.frames) == 0 {
		s.done = true
	}
	s.current = kind
	return kind, nil
}

func (s *Scanner) openFrame(kind Kind) (Kind, error) {
	if len(s.frames) >= s.maxDepth {
		return s.current, s.syntaxError(s.pos, "maximum nesting depth exceeded")
	}
	name := ""
	if n := len(s.frames); kind == StartArray && n > 0 {
		name = s.frames[n-1].name
	}
	s.pos++
	s.end = s.pos
	s.frames = append(s.frames, frame{kind: kind, state: stateOpen, name: name})
	s.current = kind
	return kind, nil
}

func (s *Scanner) closeFrame(kind Kind) (Kind, error) {
	s.start = s.pos
	s.pos++
	s.end = s.pos
	s.pop()
	s.current = kind
	return kind, nil
}

func (s *Scanner) pop() {
	s.frames = s.frames[:len(s.frames)-1]
	if len(s.frames) == 0 {
		s.done = true
	}
}

func (s *Scanner) scanString() error {
	s.pos++
	quote, escape := s.hooks.FindQuoteOrEscape(s.data, s.pos)
	if quote >= 0 && escape < 0 {
		if i := indexControl(s.data[s.pos:quote]); i >= 0 {
			return s.syntaxError(s.pos+i, "invalid control character in string")
		}
		s.pos = quote + 1
		s.end = s.pos
		s.escaped = false
		return nil
	}
	s.escaped = true
	escaped := false
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c == '"' && !escaped {
			s.pos++
			s.end = s.pos
			return nil
		}
		if c == '\\' {
			escaped = !escaped
		} else {
			if c < 0x20 {
				return s.syntaxError(s.pos, "invalid control character in string")
			}
			escaped = false
		}
		s.pos++
	}
	return s.syntaxError(s.start, "unterminated string")
}

// scanNumber consumes -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)? and
// requires a delimiter right after it.
func (s *Scanner) scanNumber() error {
	start := s.pos
	if s.peek() == '-' {
		s.pos++
	}
	switch c := s.peek(); {
	case c == '0':
		s.pos++
	case c >= '1' && c <= '9':
		s.skipDigits()
	default:
		return s.syntaxError(start, "invalid number")
	}
	if s.peek() == '.' {
		s.pos++
		if !s.skipDigits() {
			return s.syntaxError(start, "invalid number fraction")
		}
	}
	if c := s.peek(); c == 'e' || c == 'E' {
		s.pos++
		if c = s.peek(); c == '+' || c == '-' {
			s.pos++
		}
		if !s.skipDigits() {
			return s.syntaxError(start, "invalid number exponent")
		}
	}
	switch s.peek() {
	case 0, ' ', '\t', '\n', '\r', ',', ']', '}':
		return nil
	}
	return s.syntaxError(s.pos, "invalid character after number")
}

// skipDigits consumes a run of decimal digits and reports whether it was non-empty.
func (s *Scanner) skipDigits() bool {
	start := s.pos
	for s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '9' {
		s.pos++
	}
	return s.pos > start
}

// peek returns the byte at pos, 0 at the end of data.
func (s *Scanner) peek() byte {
	if s.pos >= len(s.data) {
		return 0
	}
	return s.data[s.pos]
}

func (s *Scanner) match(literal string) bool {
	end := s.pos + len(literal)
	if end > len(s.data) || string(s.data[s.pos:end]) != literal {
		return false
	}
	s.pos = end
	return true
}

func (s *Scanner) skipWS() { s.pos = s.hooks.SkipWhitespace(s.data, s.pos) }

func (s *Scanner) syntaxError(offset int, msg string) error {
	return &SyntaxError{Msg: msg, Offset: offset}
}
