package getresult

import "github.com/viant/getresult/token"

// Recognized top level field names.
const (
	IndexField         = "_index"
	IDField            = "_id"
	VersionField       = "_version"
	SeqNoField         = "_seq_no"
	PrimaryTermField   = "_primary_term"
	FoundField         = "found"
	SourceField        = "_source"
	FieldsField        = "fields"
	IgnoredField       = "_ignored"
	IgnoredSourceField = "_ignored_source"
)

type key uint8

const (
	keyUnknown key = iota
	keyIndex
	keyID
	keyVersion
	keySeqNo
	keyPrimaryTerm
	keyFound
	keySource
	keyFields
	keyIgnored
	keyIgnoredSource
)

var keys = map[string]key{
	IndexField:         keyIndex,
	IDField:            keyID,
	VersionField:       keyVersion,
	SeqNoField:         keySeqNo,
	PrimaryTermField:   keyPrimaryTerm,
	FoundField:         keyFound,
	SourceField:        keySource,
	FieldsField:        keyFields,
	IgnoredField:       keyIgnored,
	IgnoredSourceField: keyIgnoredSource,
}

func lookupKey(name string) key {
	return keys[name]
}

// expected returns token kinds accepted for the key value.
func (k key) expected() []token.Kind {
	switch k {
	case keyIndex, keyID:
		return []token.Kind{token.String}
	case keyVersion, keySeqNo, keyPrimaryTerm:
		return []token.Kind{token.Number}
	case keyFound:
		return []token.Kind{token.Bool}
	case keySource, keyFields:
		return []token.Kind{token.StartObject}
	case keyIgnored, keyIgnoredSource:
		return []token.Kind{token.StartArray}
	}
	return nil
}
