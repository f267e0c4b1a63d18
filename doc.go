// Package dripjson decodes JSON lazily from a byte stream.
//
// The package is organized into several sub-packages:
//
// - encoding/json: pull-based JSON tokenizer
// - token: token types and the pull stream interface
// - value: parser and the lazy Object / Array container types
// - internal/scanner: the buffered read cursor over the byte source
// - internal/escape: JSON string escape decoding
//
// The decoding pipeline is
//
//	io.Reader -> scanner -> tokenizer -> parser -> lazy values
//
// and every stage is pull-based: nothing is read from the source before the
// caller asks to see it.  This provides several advantages:
//
// - Peak memory use is bounded by the nesting depth of the document, not by
// its size, so arbitrarily large documents can be navigated on small
// machines
// - Data arriving slowly (sockets, chunked HTTP bodies) can be consumed as
// it arrives, without waiting for the whole document
//
// The price is a strict forward-only access discipline: object members and
// array elements can only be visited in document order, and an entry that
// has been passed over is permanently gone.  Out-of-order lookups skip (and
// lose) everything between the current position and the match.
//
// The CLI utility in cmd/jget extracts a single path from a JSON stream
// using this discipline.  You can install it with:
//
//	go install github.com/dripjson/dripjson/cmd/jget
package dripjson
