package storage

import (
	"sync"

	"github.com/apopiak/hyrise/pkg/types"
)

// MvccColumns is the transaction-visibility side-table of a chunk: one
// transaction id and one begin/end commit id per row. The slices grow with
// headroom while rows are appended; Shrink releases the excess once the
// chunk's row count is final.
type MvccColumns struct {
	mu sync.RWMutex

	Tids      []types.TransactionID
	BeginCids []types.CommitID
	EndCids   []types.CommitID
}

// NewMvccColumns creates an empty side-table.
func NewMvccColumns() *MvccColumns {
	return &MvccColumns{}
}

// Size returns the number of row entries.
func (m *MvccColumns) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Tids)
}

// Grow appends entries for rows new rows, initialized to an unowned,
// never-committed version.
func (m *MvccColumns) Grow(rows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < rows; i++ {
		m.Tids = append(m.Tids, 0)
		m.BeginCids = append(m.BeginCids, types.MaxCommitID)
		m.EndCids = append(m.EndCids, types.MaxCommitID)
	}
}

// Shrink copies all three columns into exactly sized slices, releasing the
// append headroom.
func (m *MvccColumns) Shrink() {
	m.mu.Lock()
	defer m.mu.Unlock()

	tids := make([]types.TransactionID, len(m.Tids))
	copy(tids, m.Tids)
	m.Tids = tids

	beginCids := make([]types.CommitID, len(m.BeginCids))
	copy(beginCids, m.BeginCids)
	m.BeginCids = beginCids

	endCids := make([]types.CommitID, len(m.EndCids))
	copy(endCids, m.EndCids)
	m.EndCids = endCids
}
