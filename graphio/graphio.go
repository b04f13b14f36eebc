// Package graphio serializes a graph's forward adjacency structure to
// and from byte streams using an explicit, versioned schema.
//
// The on-disk document is deliberately decoupled from the in-memory
// representation:
//
//	{
//	    "version": 1,
//	    "adjacency": {"u": {"v": <payload>, ...}, ...}
//	}
//
// Only the forward adjacency is stored; the reverse index is derived
// state and is rebuilt on load. Nodes are string keys; payloads may be
// any value the chosen encoding can represent. Two encodings are
// supported, JSON and YAML, mirroring the usual fast-format/readable-
// format split; Save and Load guess the format from the file extension.
//
// Decoding rebuilds the graph with nodes and edges inserted in sorted
// key order, so a loaded graph produces reproducible tie-breaking in
// searches regardless of encoding map order.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/wylee/dijkstar/core"
)

// SchemaVersion is the current serialization schema version.
const SchemaVersion = 1

// Format selects the byte encoding of the schema document.
type Format string

const (
	// FormatJSON encodes the document as JSON.
	FormatJSON Format = "json"

	// FormatYAML encodes the document as YAML.
	FormatYAML Format = "yaml"
)

// Sentinel errors for serialization operations.
var (
	// ErrUnknownFormat indicates an unrecognized Format value or an
	// extension no format is registered for.
	ErrUnknownFormat = errors.New("graphio: unknown graph format")

	// ErrUnsupportedVersion indicates a document whose schema version
	// this package cannot read.
	ErrUnsupportedVersion = errors.New("graphio: unsupported schema version")
)

// document is the serialized form of a graph.
type document[E any] struct {
	Version   int                     `json:"version" yaml:"version"`
	Adjacency map[string]map[string]E `json:"adjacency" yaml:"adjacency"`
}

// Encode writes g's forward adjacency to w in the given format.
// Complexity: O(V + E).
func Encode[E any](w io.Writer, g *core.Graph[string, E], format Format) error {
	doc := document[E]{
		Version:   SchemaVersion,
		Adjacency: make(map[string]map[string]E, g.NodeCount()),
	}
	for _, u := range g.Nodes() {
		neighbors, err := g.GetNode(u)
		if err != nil {
			return fmt.Errorf("graphio: encode node %q: %w", u, err)
		}
		doc.Adjacency[u] = neighbors
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode reads a schema document from r and rebuilds the graph.
// Returns ErrUnsupportedVersion for documents written by a newer
// schema. Complexity: O(V log V + E log E) due to key sorting.
func Decode[E any](r io.Reader, format Format) (*core.Graph[string, E], error) {
	var doc document[E]
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("graphio: decode: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("graphio: decode: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if doc.Version != SchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	g := core.New[string, E]()
	nodes := make([]string, 0, len(doc.Adjacency))
	for u := range doc.Adjacency {
		nodes = append(nodes, u)
	}
	sort.Strings(nodes)

	for _, u := range nodes {
		g.AddNode(u)
		neighbors := doc.Adjacency[u]
		targets := make([]string, 0, len(neighbors))
		for v := range neighbors {
			targets = append(targets, v)
		}
		sort.Strings(targets)
		for _, v := range targets {
			g.AddEdge(u, v, neighbors[v])
		}
	}

	return g, nil
}

// Save writes g to path, guessing the format from the file extension.
func Save[E any](path string, g *core.Graph[string, E]) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: save: %w", err)
	}
	defer file.Close()

	if err := Encode(file, g, format); err != nil {
		return err
	}

	return file.Close()
}

// Load reads a graph from path, guessing the format from the file
// extension.
func Load[E any](path string) (*core.Graph[string, E], error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	return LoadAs[E](path, format)
}

// LoadAs reads a graph from path using an explicit format, for files
// whose extension does not identify one.
func LoadAs[E any](path string, format Format) (*core.Graph[string, E], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: load: %w", err)
	}
	defer file.Close()

	return Decode[E](file, format)
}

// DetectFormat maps a file extension to its Format.
// Recognized: .json, .yaml, .yml.
func DetectFormat(path string) (Format, error) {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatYAML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}
