// Package document holds the decrypted save as a generic JSON tree that
// preserves object key order, plus dot-path get/set over it.
//
// The game writes its JSON with a stable key order; keeping that order on
// re-serialization keeps diffs between an edited save and the original
// limited to the fields actually touched.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the JSON value held by a Node.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Object
	Array
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Object:
		return "object"
	case Array:
		return "array"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is one JSON value. Objects remember insertion order of their keys.
// Numbers keep their source text so untouched values re-serialize verbatim.
type Node struct {
	kind   Kind
	b      bool
	num    json.Number
	str    string
	keys   []string
	fields map[string]*Node
	elems  []*Node
}

// Constructors.

func NewNull() *Node   { return &Node{kind: Null} }
func NewObject() *Node { return &Node{kind: Object, fields: map[string]*Node{}} }
func NewArray() *Node  { return &Node{kind: Array} }

func NewBool(v bool) *Node     { return &Node{kind: Bool, b: v} }
func NewString(v string) *Node { return &Node{kind: String, str: v} }

// NewInt builds an integer number node.
func NewInt(v int64) *Node {
	return &Node{kind: Number, num: json.Number(strconv.FormatInt(v, 10))}
}

// NewFloat builds a number node. Integral values render without a decimal
// point, matching how the game writes whole amounts.
func NewFloat(v float64) *Node {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return NewInt(int64(v))
	}
	return &Node{kind: Number, num: json.Number(strconv.FormatFloat(v, 'g', -1, 64))}
}

// Kind reports the JSON kind of the node. A nil node reads as null.
func (n *Node) Kind() Kind {
	if n == nil {
		return Null
	}
	return n.kind
}

// Value accessors. The bool result reports whether the node has that kind.

func (n *Node) BoolVal() (bool, bool) {
	if n == nil || n.kind != Bool {
		return false, false
	}
	return n.b, true
}

func (n *Node) StringVal() (string, bool) {
	if n == nil || n.kind != String {
		return "", false
	}
	return n.str, true
}

func (n *Node) Float() (float64, bool) {
	if n == nil || n.kind != Number {
		return 0, false
	}
	f, err := n.num.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

func (n *Node) Int() (int64, bool) {
	if n == nil || n.kind != Number {
		return 0, false
	}
	i, err := n.num.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// Keys returns the object's keys in insertion order. Nil for non-objects.
func (n *Node) Keys() []string {
	if n == nil || n.kind != Object {
		return nil
	}
	return append([]string(nil), n.keys...)
}

// Field returns the named child of an object node.
func (n *Node) Field(key string) (*Node, bool) {
	if n == nil || n.kind != Object {
		return nil, false
	}
	child, ok := n.fields[key]
	return child, ok
}

// SetField writes key on an object node, appending to the key order when the
// key is new. It is a no-op on non-objects.
func (n *Node) SetField(key string, child *Node) {
	if n == nil || n.kind != Object {
		return
	}
	if _, exists := n.fields[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = child
}

// Elems returns the elements of an array node. Nil for non-arrays.
func (n *Node) Elems() []*Node {
	if n == nil || n.kind != Array {
		return nil
	}
	return n.elems
}

// Len returns the element count of an array or the key count of an object.
func (n *Node) Len() int {
	switch {
	case n == nil:
		return 0
	case n.kind == Array:
		return len(n.elems)
	case n.kind == Object:
		return len(n.keys)
	}
	return 0
}

// Append adds an element to an array node.
func (n *Node) Append(child *Node) {
	if n == nil || n.kind != Array {
		return
	}
	n.elems = append(n.elems, child)
}

// ErrNotFound is returned by Get when the path does not resolve.
var ErrNotFound = errors.New("document: path not found")

// Get walks a dot-separated path of object keys and returns the addressed
// node. Only object-key segments are supported; arrays terminate the walk.
func (n *Node) Get(path string) (*Node, error) {
	cur := n
	for _, seg := range strings.Split(path, ".") {
		child, ok := cur.Field(seg)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		cur = child
	}
	return cur, nil
}

// Set walks a dot-separated path of object keys and overwrites the final
// segment with value. Missing intermediates are created as empty objects;
// an intermediate holding a non-object value is replaced by an empty object,
// so Get after Set always yields the written value.
func (n *Node) Set(path string, value *Node) error {
	if n == nil || n.kind != Object {
		return fmt.Errorf("document: set on %s root", n.Kind())
	}
	segs := strings.Split(path, ".")
	for _, seg := range segs {
		if seg == "" {
			return fmt.Errorf("document: empty segment in path %q", path)
		}
	}

	cur := n
	for _, seg := range segs[:len(segs)-1] {
		child, ok := cur.Field(seg)
		if !ok || child.Kind() != Object {
			child = NewObject()
			cur.SetField(seg, child)
		}
		cur = child
	}
	cur.SetField(segs[len(segs)-1], value)
	return nil
}
