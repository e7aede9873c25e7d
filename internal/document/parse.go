package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrParse wraps any syntax failure while building the tree.
var ErrParse = errors.New("document: invalid JSON")

// Parse builds a tree from JSON text. Object key order is taken from the
// input. Numbers are kept as their source text.
func Parse(text string) (*Node, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	root, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	// Reject trailing garbage after the first value.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return root, nil
}

func parseValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", v)
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(v), nil
	case string:
		return NewString(v), nil
	case json.Number:
		return &Node{kind: Number, num: v}, nil
	}
	return nil, fmt.Errorf("unexpected token %T", tok)
}

func parseObject(dec *json.Decoder) (*Node, error) {
	obj := NewObject()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", tok)
		}
		child, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.SetField(key, child)
	}
}

func parseArray(dec *json.Decoder) (*Node, error) {
	arr := NewArray()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}
		child, err := parseToken(dec, tok)
		if err != nil {
			return nil, err
		}
		arr.Append(child)
	}
}
