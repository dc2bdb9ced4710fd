package ingest

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// ErrDuplicateNodeID marks a document with two nodes sharing an id.
var ErrDuplicateNodeID = errors.New("duplicate node id")

// ErrDanglingLink marks a link referencing a node the document does not define.
var ErrDanglingLink = errors.New("link references unknown node")

// ErrSelfLoop marks a link whose source and target are the same node.
var ErrSelfLoop = errors.New("link connects a node to itself")

// ValidateDocument checks a parsed topology document: struct tags first,
// then the cross-record rules the engine relies on (unique ids, resolvable
// link endpoints, no self-loops). Negative costs are accepted here — the
// engine treats such edges as absent — but ingestion is the right place for
// operators to catch them, so they are reported through the warning list.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return errors.New("topology document cannot be nil")
	}

	if err := validate.Struct(doc); err != nil {
		return formatValidationError(err)
	}

	seen := make(map[string]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if seen[n.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		seen[n.ID] = true
	}

	for i, l := range doc.Links {
		if l.Source == l.Target {
			return fmt.Errorf("%w: link %d (%q)", ErrSelfLoop, i, l.Source)
		}
		if !seen[l.Source] {
			return fmt.Errorf("%w: link %d source %q", ErrDanglingLink, i, l.Source)
		}
		if !seen[l.Target] {
			return fmt.Errorf("%w: link %d target %q", ErrDanglingLink, i, l.Target)
		}
	}

	return nil
}

// CostWarnings returns a human-readable note for every negative cost in the
// document. These are data-quality signals, not load failures.
func CostWarnings(doc *Document) []string {
	var warnings []string
	for i, l := range doc.Links {
		fields := []struct {
			name string
			cost *float64
		}{
			{"forwardCost", l.ForwardCost},
			{"reverseCost", l.ReverseCost},
			{"cost", l.Cost},
		}
		for _, f := range fields {
			if f.cost != nil && *f.cost < 0 {
				warnings = append(warnings,
					fmt.Sprintf("link %d (%s->%s): negative %s %v will be treated as no edge",
						i, l.Source, l.Target, f.name, *f.cost))
			}
		}
	}
	return warnings
}

// formatValidationError rewrites the first validator error into a message
// that names the field and the violated rule.
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", e.Field())
		case "min":
			return fmt.Errorf("%s: must have at least %s entries", e.Field(), e.Param())
		case "max":
			return fmt.Errorf("%s: must not exceed %s", e.Field(), e.Param())
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", e.Field(), e.Param())
		default:
			return fmt.Errorf("%s: fails %q constraint", e.Field(), e.Tag())
		}
	}

	return err
}
