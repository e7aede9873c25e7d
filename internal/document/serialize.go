package document

import (
	"encoding/json"
	"strings"
)

// Serialize renders the tree back to compact JSON text with each object's
// key order intact. Purely textual; no values are transformed.
func Serialize(n *Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	if n == nil {
		b.WriteString("null")
		return
	}
	switch n.kind {
	case Null:
		b.WriteString("null")
	case Bool:
		if n.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(n.num.String())
	case String:
		writeString(b, n.str)
	case Object:
		b.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeString(b, key)
			b.WriteByte(':')
			writeNode(b, n.fields[key])
		}
		b.WriteByte('}')
	case Array:
		b.WriteByte('[')
		for i, el := range n.elems {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNode(b, el)
		}
		b.WriteByte(']')
	}
}

func writeString(b *strings.Builder, s string) {
	// encoding/json handles the escaping rules. HTML escaping is disabled:
	// the game does not write <-style escapes and the output should stay
	// as close to the original text as possible.
	var tmp strings.Builder
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // a bare string never fails
	b.WriteString(strings.TrimSuffix(tmp.String(), "\n"))
}
