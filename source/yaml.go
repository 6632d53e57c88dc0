package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/blockconf/lang"
)

// DecodeYAML reads the first YAML document from r.
//
// Mappings keep their source order. Integers of any width become int64, or
// float64 if they do not fit. Non-string keys are converted with
// [fmt.Sprint]. A document that is empty or null yields an empty document.
func DecodeYAML(ctx context.Context, r io.Reader) (*lang.Document, error) {
	var raw any

	err := yaml.NewDecoder(r, yaml.UseOrderedMap()).DecodeContext(ctx, &raw)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, decodeError(FormatYAML, err)
	}

	switch top := raw.(type) {
	case nil:
		return lang.NewDocument(), nil
	case yaml.MapSlice:
		return yamlTable(top), nil
	default:
		return nil, notTable(FormatYAML, raw)
	}
}

func yamlTable(m yaml.MapSlice) *lang.Document {
	doc := lang.NewDocument()

	for _, item := range m {
		key, ok := item.Key.(string)
		if !ok {
			key = fmt.Sprint(item.Key)
		}

		doc.Set(key, yamlValue(item.Value))
	}

	return doc
}

func yamlValue(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		return yamlTable(val)

	case map[string]any:
		return yamlTable(sortedMapSlice(val))

	case []any:
		list := make([]any, len(val))
		for i, e := range val {
			list[i] = yamlValue(e)
		}

		return list

	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint:
		return unsigned(uint64(val))
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case uint64:
		return unsigned(val)
	case float32:
		return float64(val)

	default:
		return v
	}
}

// unsigned returns u as int64, or as float64 if it exceeds the int64 range.
func unsigned(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}

	return int64(u)
}

func sortedMapSlice(m map[string]any) yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		ms = append(ms, yaml.MapItem{Key: k, Value: m[k]})
	}

	return ms
}
