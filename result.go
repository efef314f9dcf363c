package getresult

import (
	"bytes"

	"github.com/viant/getresult/internal/compress"
	"github.com/viant/getresult/token"
)

// Sentinels for numeric attributes absent from the stream. Producers never
// emit them for an existing document: sequence numbers start at 0, primary
// terms at 1 and versions at 0.
const (
	UnassignedSeqNo       int64 = -2
	UnassignedPrimaryTerm int64 = 0
	NotFoundVersion       int64 = -1
)

// Result is an assembled document retrieval result. It is immutable and safe
// for concurrent reads.
type Result struct {
	index          *string
	id             *string
	seqNo          int64
	primaryTerm    int64
	version        int64
	found          *bool
	source         []byte
	documentFields map[string]*Field
	metaFields     map[string]*Field
}

// Index returns the index name or "" when unset.
func (r *Result) Index() string {
	if r.index == nil {
		return ""
	}
	return *r.index
}

// HasIndex reports whether the index name was set by the stream or the caller.
func (r *Result) HasIndex() bool { return r.index != nil }

// ID returns the document id or "" when unset.
func (r *Result) ID() string {
	if r.id == nil {
		return ""
	}
	return *r.id
}

// HasID reports whether the document id was set by the stream or the caller.
func (r *Result) HasID() bool { return r.id != nil }

// SeqNo returns the sequence number, UnassignedSeqNo when absent.
func (r *Result) SeqNo() int64 { return r.seqNo }

// PrimaryTerm returns the primary term, UnassignedPrimaryTerm when absent.
func (r *Result) PrimaryTerm() int64 { return r.primaryTerm }

// Version returns the document version, NotFoundVersion when absent.
func (r *Result) Version() int64 { return r.version }

// Found returns the found flag; ok is false when the stream did not carry it.
func (r *Result) Found() (found bool, ok bool) {
	if r.found == nil {
		return false, false
	}
	return *r.found, true
}

// Exists reports whether the document was found.
func (r *Result) Exists() bool {
	found, ok := r.Found()
	return ok && found
}

// SourceRef returns a copy of the stored source bytes, compressed when the
// result was assembled with source compression.
func (r *Result) SourceRef() []byte {
	return bytes.Clone(r.source)
}

// IsSourceEmpty reports whether no source was captured.
func (r *Result) IsSourceEmpty() bool { return len(r.source) == 0 }

// Source returns the uncompressed source bytes or nil when no source was captured.
func (r *Result) Source() ([]byte, error) {
	if r.source == nil {
		return nil, nil
	}
	if !compress.IsCompressed(r.source) {
		return bytes.Clone(r.source), nil
	}
	return compress.Decode(r.source)
}

// SourceAsString returns the source as text.
func (r *Result) SourceAsString() (string, error) {
	source, err := r.Source()
	if err != nil {
		return "", err
	}
	return string(source), nil
}

// SourceAsMap parses the source into a map, nil when no source was captured.
func (r *Result) SourceAsMap() (map[string]interface{}, error) {
	source, err := r.Source()
	if err != nil || source == nil {
		return nil, err
	}
	scanner := token.NewScanner(source)
	kind, err := scanner.Next()
	if err != nil {
		return nil, err
	}
	if err = token.Expect(scanner, kind, token.StartObject); err != nil {
		return nil, err
	}
	result, err := token.ReadMap(scanner)
	if err != nil {
		return nil, err
	}
	if err = scanner.Done(); err != nil {
		return nil, err
	}
	return result, nil
}

// Field returns the named document field, falling back to meta fields.
func (r *Result) Field(name string) *Field {
	if field, ok := r.documentFields[name]; ok {
		return field
	}
	return r.metaFields[name]
}

// Fields returns document and meta fields merged, document fields win on clash.
func (r *Result) Fields() map[string]*Field {
	result := make(map[string]*Field, len(r.documentFields)+len(r.metaFields))
	for name, field := range r.metaFields {
		result[name] = field
	}
	for name, field := range r.documentFields {
		result[name] = field
	}
	return result
}

// DocumentFields returns a copy of fields read from the fields object.
func (r *Result) DocumentFields() map[string]*Field { return copyFields(r.documentFields) }

// MetadataFields returns a copy of meta fields.
func (r *Result) MetadataFields() map[string]*Field { return copyFields(r.metaFields) }

func copyFields(fields map[string]*Field) map[string]*Field {
	result := make(map[string]*Field, len(fields))
	for name, field := range fields {
		result[name] = field
	}
	return result
}
