// Package report renders file statistics as canonical YAML: fixed key
// order, two-space indent, exactly one trailing newline.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Stats describes one inspected file.
type Stats struct {
	Path  string
	Bytes int64
	Lines int
	Words int
}

// Marshal returns canonical YAML bytes for the stats.
func Marshal(st Stats) ([]byte, error) {
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content,
		scalarNode("path"), scalarFrom(st.Path),
		scalarNode("bytes"), scalarFrom(st.Bytes),
		scalarNode("lines"), scalarFrom(st.Lines),
		scalarNode("words"), scalarFrom(st.Words),
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

// Write writes canonical YAML content to path, creating parent
// directories.
func Write(path string, st Stats) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Text renders the fixed four-line console form used by `finspect stats`.
func Text(st Stats) string {
	return fmt.Sprintf("Path: %s\nBytes: %d\nLines: %d\nWords: %d\n",
		st.Path, st.Bytes, st.Lines, st.Words)
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func scalarFrom(v any) *yaml.Node {
	n := &yaml.Node{}
	_ = n.Encode(v)
	return n
}
