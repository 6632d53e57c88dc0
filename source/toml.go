package source

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ardnew/blockconf/lang"
)

// DecodeTOML reads a TOML document from r.
//
// Keys keep the order of their first appearance in the source, which is
// recovered from [toml.MetaData.Keys]. Arrays of tables become lists of
// documents. Date and time values are kept as decoded.
func DecodeTOML(r io.Reader) (*lang.Document, error) {
	var raw map[string]any

	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, decodeError(FormatTOML, err)
	}

	return newKeyOrder(md.Keys()).table(raw, ""), nil
}

// keySep joins the components of a key path.
const keySep = "\x00"

// keyOrder maps a parent key path to its children in order of appearance.
// Array of tables elements share the path of the array.
type keyOrder map[string][]string

func newKeyOrder(keys []toml.Key) keyOrder {
	order := make(keyOrder)
	seen := make(map[string]struct{})

	for _, key := range keys {
		for i := range key {
			child := strings.Join(key[:i+1], keySep)
			if _, ok := seen[child]; ok {
				continue
			}

			seen[child] = struct{}{}

			parent := strings.Join(key[:i], keySep)
			order[parent] = append(order[parent], key[i])
		}
	}

	return order
}

// keys returns the keys of m at path in source order. Keys the metadata did
// not report follow in lexical order.
func (o keyOrder) keys(m map[string]any, path string) []string {
	keys := make([]string, 0, len(m))
	done := make(map[string]struct{}, len(m))

	for _, k := range o[path] {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
			done[k] = struct{}{}
		}
	}

	for _, k := range slices.Sorted(maps.Keys(m)) {
		if _, ok := done[k]; !ok {
			keys = append(keys, k)
		}
	}

	return keys
}

func (o keyOrder) table(m map[string]any, path string) *lang.Document {
	doc := lang.NewDocument()

	for _, k := range o.keys(m, path) {
		doc.Set(k, o.value(m[k], childPath(path, k)))
	}

	return doc
}

func (o keyOrder) value(v any, path string) any {
	switch val := v.(type) {
	case map[string]any:
		return o.table(val, path)

	case []map[string]any:
		list := make([]any, len(val))
		for i, m := range val {
			list[i] = o.table(m, path)
		}

		return list

	case []any:
		list := make([]any, len(val))
		for i, e := range val {
			list[i] = o.value(e, path)
		}

		return list

	default:
		return v
	}
}

func childPath(path, key string) string {
	if path == "" {
		return key
	}

	return path + keySep + key
}
