package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmcgarr/netpath/pkg/topology"
)

// Format identifies a topology document encoding.
type Format int

const (
	// FormatYAML parses the document as YAML.
	FormatYAML Format = iota
	// FormatJSON parses the document as JSON.
	FormatJSON
)

// LoadFile reads, parses, and validates a topology file, choosing the
// format from the file extension (.json is JSON, everything else YAML).
func LoadFile(path string) ([]topology.Node, []topology.Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open topology file: %w", err)
	}
	defer f.Close()

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	return Load(f, format)
}

// Load parses and validates a topology document from a reader and converts
// it into the engine's node and link collections. Link indices are assigned
// from document position, which is the stable identity impact attribution
// reports against.
func Load(r io.Reader, format Format) ([]topology.Node, []topology.Link, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read topology document: %w", err)
	}

	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, nil, fmt.Errorf("parse topology JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, nil, fmt.Errorf("parse topology YAML: %w", err)
		}
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, nil, fmt.Errorf("invalid topology document: %w", err)
	}

	return Convert(&doc)
}

// Convert translates a validated document into engine collections.
func Convert(doc *Document) ([]topology.Node, []topology.Link, error) {
	nodes := make([]topology.Node, len(doc.Nodes))
	for i, n := range doc.Nodes {
		active := true
		if n.Active != nil {
			active = *n.Active
		}
		name := n.Name
		if name == "" {
			name = n.ID
		}
		nodes[i] = topology.Node{
			ID:      n.ID,
			Name:    name,
			Country: n.Country,
			Active:  active,
		}
	}

	links := make([]topology.Link, len(doc.Links))
	for i, l := range doc.Links {
		links[i] = topology.Link{
			Source:      l.Source,
			Target:      l.Target,
			ForwardCost: l.ForwardCost,
			ReverseCost: l.ReverseCost,
			Cost:        l.Cost,
			Up:          l.Status != "down",
			Index:       i,
		}
	}

	return nodes, links, nil
}
