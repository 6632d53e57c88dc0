package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ardnew/blockconf/lang"
)

// maxJSONDepth bounds the nesting of objects and arrays, matching the limit
// of [json.Unmarshal].
const maxJSONDepth = 10000

// DecodeJSON reads a single JSON value from r.
//
// Nesting deeper than maxJSONDepth is rejected with [ErrDecode].
// Objects keep their member order; a repeated member keeps its first
// position and its last value. Numbers written without a fraction or
// exponent become int64 when they fit, all others float64.
func DecodeJSON(r io.Reader) (*lang.Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return lang.NewDocument(), nil
	}

	if err != nil {
		return nil, decodeError(FormatJSON, err)
	}

	top, err := jsonFrom(dec, tok, 0)
	if err != nil {
		return nil, decodeError(FormatJSON, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, decodeError(FormatJSON,
			fmt.Errorf("unexpected data after top-level value at offset %d",
				dec.InputOffset()))
	}

	doc, ok := top.(*lang.Document)
	if !ok {
		return nil, notTable(FormatJSON, top)
	}

	return doc, nil
}

// next reads a token that must exist.
func next(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}

	return tok, err
}

func jsonValue(dec *json.Decoder, depth int) (any, error) {
	tok, err := next(dec)
	if err != nil {
		return nil, err
	}

	return jsonFrom(dec, tok, depth)
}

// jsonFrom decodes the value that begins with tok. depth counts the
// objects and arrays enclosing it.
func jsonFrom(dec *json.Decoder, tok json.Token, depth int) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		if depth >= maxJSONDepth {
			return nil, fmt.Errorf(
				"exceeded max depth of %d at offset %d",
				maxJSONDepth, dec.InputOffset())
		}

		switch t {
		case '{':
			return jsonObject(dec, depth+1)
		case '[':
			return jsonArray(dec, depth+1)
		}

		return nil, fmt.Errorf("unexpected delimiter %q", t)

	case json.Number:
		return jsonNumber(t)

	default:
		// string, bool, or nil
		return t, nil
	}
}

func jsonObject(dec *json.Decoder, depth int) (*lang.Document, error) {
	doc := lang.NewDocument()

	for dec.More() {
		tok, err := next(dec)
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", tok)
		}

		value, err := jsonValue(dec, depth)
		if err != nil {
			return nil, err
		}

		doc.Set(key, value)
	}

	// closing '}'
	if _, err := next(dec); err != nil {
		return nil, err
	}

	return doc, nil
}

func jsonArray(dec *json.Decoder, depth int) ([]any, error) {
	list := []any{}

	for dec.More() {
		value, err := jsonValue(dec, depth)
		if err != nil {
			return nil, err
		}

		list = append(list, value)
	}

	// closing ']'
	if _, err := next(dec); err != nil {
		return nil, err
	}

	return list, nil
}

func jsonNumber(n json.Number) (any, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}

	return n.Float64()
}
