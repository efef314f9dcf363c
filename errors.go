package getresult

import "github.com/viant/getresult/token"

// Sentinels for errors.Is, shared with the token package.
var (
	ErrUnexpectedToken = token.ErrUnexpectedToken
	ErrMalformedNumber = token.ErrMalformedNumber
	ErrSyntax          = token.ErrSyntax
)
