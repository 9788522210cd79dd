package kharchi

import (
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
)

// Merge folds a batch of incoming payouts into the existing ledger.
// An incoming entry replaces the existing entry for the same
// (worker, date) in place; otherwise it is appended. Entries with a
// zero or negative amount are dropped, so re-submitting a sheet that
// was already saved leaves the ledger unchanged.
func Merge(existing, incoming []kharchi.Entry) []kharchi.Entry {
	merged := make([]kharchi.Entry, len(existing))
	copy(merged, existing)

	index := make(map[[2]string]int, len(merged))
	for i, e := range merged {
		index[[2]string{e.WorkerID, e.Date}] = i
	}

	for _, e := range incoming {
		if !e.Amount.IsPositive() {
			continue
		}
		key := [2]string{e.WorkerID, e.Date}
		if i, ok := index[key]; ok {
			id := merged[i].ID
			merged[i] = e
			if e.ID == "" {
				merged[i].ID = id
			}
		} else {
			index[key] = len(merged)
			merged = append(merged, e)
		}
	}

	return merged
}
