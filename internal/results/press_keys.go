package results

// PressKeysResult represents the result of the press_keys tool
type PressKeysResult struct {
	Keys    string                `json:"keys"`
	Count   int                   `json:"count"`
	State   CalculatorStateResult `json:"state"`
	History HistoryResult         `json:"history"`
}
