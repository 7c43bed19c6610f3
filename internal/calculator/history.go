package calculator

// HistoryLimit is the maximum number of entries kept in the history log
const HistoryLimit = 10

// HistoryEntry records one completed calculation
type HistoryEntry struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// history is a most-recent-first log that evicts the oldest entry on overflow
type history struct {
	entries []HistoryEntry
}

func (h *history) push(entry HistoryEntry) {
	h.entries = append(h.entries, HistoryEntry{})
	copy(h.entries[1:], h.entries)
	h.entries[0] = entry
	if len(h.entries) > HistoryLimit {
		h.entries = h.entries[:HistoryLimit]
	}
}

func (h *history) list() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *history) reset() {
	h.entries = nil
}
