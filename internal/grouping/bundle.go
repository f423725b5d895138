package grouping

import (
	"sort"

	"github.com/sahokun/txhistory/internal/domain"
	"github.com/sahokun/txhistory/internal/ledger"
)

// Deps carries the collaborators grouping needs to manufacture and
// re-evaluate records.
type Deps struct {
	Parser  *ledger.Parser
	Wrapped domain.WrappedTokenTable
}

// Bundle partitions records by transaction hash, runs synthesis and
// classification on every group, and returns the groups ordered by block
// time. The input order of records sharing a hash is preserved.
func Bundle(records []ledger.Record, deps Deps) ([]*Group, error) {
	sorted := make([]ledger.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Common().TxHash < sorted[j].Common().TxHash
	})

	var groups []*Group
	var current *Group
	for _, rec := range sorted {
		hash := rec.Common().TxHash
		if current == nil || current.TxHash != hash {
			current = &Group{}
			groups = append(groups, current)
		}
		if err := current.add(rec); err != nil {
			return nil, err
		}
	}

	for _, g := range groups {
		if err := g.synthesize(deps); err != nil {
			return nil, err
		}
		if err := g.classifyAll(); err != nil {
			return nil, err
		}
		if err := g.validate(); err != nil {
			return nil, err
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Timestamp < groups[j].Timestamp
	})
	return groups, nil
}
