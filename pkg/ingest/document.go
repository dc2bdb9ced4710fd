// Package ingest parses and validates topology documents and hands the
// resulting node and link collections to the analysis engine. The engine
// assumes ids are unique and references resolve; this package is where that
// is enforced.
package ingest

// NodeRecord is one node entry in a topology document.
type NodeRecord struct {
	ID      string `json:"id" yaml:"id" validate:"required,max=64"`
	Name    string `json:"name" yaml:"name" validate:"max=128"`
	Country string `json:"country" yaml:"country" validate:"required,max=64"`
	Active  *bool  `json:"active,omitempty" yaml:"active,omitempty"`
}

// LinkRecord is one link entry in a topology document. Cost fields are
// optional; the engine resolves forwardCost ?? cost ?? 1 and
// reverseCost ?? forwardCost. Status defaults to "up".
type LinkRecord struct {
	Source      string   `json:"source" yaml:"source" validate:"required"`
	Target      string   `json:"target" yaml:"target" validate:"required"`
	ForwardCost *float64 `json:"forwardCost,omitempty" yaml:"forwardCost,omitempty"`
	ReverseCost *float64 `json:"reverseCost,omitempty" yaml:"reverseCost,omitempty"`
	Cost        *float64 `json:"cost,omitempty" yaml:"cost,omitempty"`
	Status      string   `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,oneof=up down"`
}

// Document is a complete topology file.
type Document struct {
	Nodes []NodeRecord `json:"nodes" yaml:"nodes" validate:"required,min=1,dive"`
	Links []LinkRecord `json:"links" yaml:"links" validate:"dive"`
}
