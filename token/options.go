package token

// MalformedPolicy controls tolerance of malformed separators.
type MalformedPolicy int

const (
	// FailFast rejects any deviation from the JSON grammar.
	FailFast MalformedPolicy = iota
	// Tolerant accepts a trailing comma before a closing bracket.
	Tolerant
)

// DefaultMaxDepth bounds container nesting when no explicit limit is set.
const DefaultMaxDepth = 512

//Option scanner option
type Option func(s *Scanner)

//Options represents scanner options
type Options []Option

//Apply applies options
func (o Options) Apply(s *Scanner) {
	for _, opt := range o {
		if opt != nil {
			opt(s)
		}
	}
}

//WithHooks replaces whitespace and string scan hooks
func WithHooks(hooks ScannerHooks) Option {
	return func(s *Scanner) {
		if hooks != nil {
			s.hooks = hooks
		}
	}
}

//WithMalformedPolicy sets separator tolerance
func WithMalformedPolicy(policy MalformedPolicy) Option {
	return func(s *Scanner) {
		s.policy = policy
	}
}

//WithMaxDepth sets maximum container nesting, non positive values keep the default
func WithMaxDepth(depth int) Option {
	return func(s *Scanner) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}
