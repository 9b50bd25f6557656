package remittance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/radhian/remittance-docgen/entity"
)

// RenderPlan holds the value of every placeholder a template declares.
type RenderPlan struct {
	Context entity.FlatContext
	Values  map[string]entity.ContextValue
}

// MissingPlaceholdersError lists declared placeholders with no value, sorted.
type MissingPlaceholdersError struct {
	Missing []string
}

func (e *MissingPlaceholdersError) Error() string {
	return fmt.Sprintf("missing variables for template: %s", strings.Join(e.Missing, ", "))
}

// Reconciler compares declared placeholder names with the keys of a flat
// context. With CaseSensitive unset, names match ignoring case; an exact
// match is always preferred.
type Reconciler struct {
	CaseSensitive bool
}

func (r Reconciler) Reconcile(declared []string, fc entity.FlatContext) (*RenderPlan, error) {
	var folded map[string]entity.ContextValue
	if !r.CaseSensitive {
		folded = make(map[string]entity.ContextValue, len(fc))
		for _, k := range fc.Keys() {
			fk := strings.ToUpper(k)
			if _, ok := folded[fk]; !ok {
				folded[fk] = fc[k]
			}
		}
	}

	values := make(map[string]entity.ContextValue, len(declared))
	missingSet := make(map[string]struct{})
	for _, name := range declared {
		if v, ok := fc[name]; ok {
			values[name] = v
			continue
		}
		if folded != nil {
			if v, ok := folded[strings.ToUpper(name)]; ok {
				values[name] = v
				continue
			}
		}
		missingSet[name] = struct{}{}
	}

	if len(missingSet) > 0 {
		missing := make([]string, 0, len(missingSet))
		for name := range missingSet {
			missing = append(missing, name)
		}
		sort.Strings(missing)
		return nil, &MissingPlaceholdersError{Missing: missing}
	}

	return &RenderPlan{Context: fc, Values: values}, nil
}
