// Package getresult assembles a document retrieval ("get") result from a
// stream of JSON tokens.
//
// The assembler dispatches on a fixed vocabulary of top level keys (_index,
// _id, _version, _seq_no, _primary_term, found, _source, fields, _ignored,
// _ignored_source). The _source object is captured as compact JSON bytes
// without interpretation, the fields object is read as named field records,
// any other scalar becomes a meta field and unknown objects or arrays are
// skipped.
//
//	result, err := getresult.Unmarshal([]byte(`{"_index":"i","_id":"1","found":true,"_source":{"a":1}}`))
//
// Callers embedding a get result in a larger document drive a token.Cursor
// themselves and use Parse, ParseEmbedded or ParseEmbeddedWith.
package getresult
