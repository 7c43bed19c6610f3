package results

import (
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// HistoryResult represents the result of the get_history and clear_history tools
type HistoryResult struct {
	Count   int                  `json:"count"`
	Message string               `json:"message"`
	Entries []HistoryEntryResult `json:"entries"`
}

// HistoryEntryResult represents one completed calculation
type HistoryEntryResult struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// NewHistoryResult builds a history result, most recent calculation first
func NewHistoryResult(entries []calculator.HistoryEntry) HistoryResult {
	result := HistoryResult{
		Count:   len(entries),
		Entries: make([]HistoryEntryResult, 0, len(entries)),
	}
	for _, entry := range entries {
		result.Entries = append(result.Entries, HistoryEntryResult{
			Expression: entry.Expression,
			Result:     entry.Result,
		})
	}

	if len(entries) == 0 {
		result.Message = "No calculations in history."
	} else {
		result.Message = fmt.Sprintf("Found %d calculations in history, most recent first.", len(entries))
	}

	return result
}
