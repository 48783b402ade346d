package load

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a schema document.
type Format string

// Supported schema document formats.
const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ErrUnknownFormat is returned for files whose extension is not a
// supported schema document format.
var ErrUnknownFormat = errors.New("load: unknown schema format")

var extensions = map[string]Format{
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".json":    FormatJSON,
	".msgpack": FormatMsgpack,
	".mp":      FormatMsgpack,
}

// FormatOf returns the document format implied by the file extension.
func FormatOf(path string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Decode decodes a schema document of the given format.
func Decode(format Format, buf []byte) (*Schema, error) {
	s := &Schema{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(buf, s)
	case FormatJSON:
		err = json.Unmarshal(buf, s)
	case FormatMsgpack:
		err = msgpack.Unmarshal(buf, s)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Encode encodes a loaded schema in the given format. YAML and JSON output
// use the list form for fields and edges.
func Encode(format Format, s *Schema) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON:
		return json.MarshalIndent(s, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(s)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// File loads the schema document at path. When the document has no name,
// the file name without its extension is used.
func File(path string) (*Schema, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(format, buf)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	s.Pos = path
	return s, nil
}

// Dir loads every schema document in dir, ordered by file name.
// Files of other formats and sub-directories are skipped.
func Dir(dir string) ([]*Schema, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	var schemas []*Schema
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := FormatOf(e.Name()); !ok {
			continue
		}
		s, err := File(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}
