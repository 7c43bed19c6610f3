package session

import (
	"log/slog"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// Manager owns the calculator engine for the lifetime of the server and
// serializes access to it, since tool calls may arrive concurrently
type Manager struct {
	engine *calculator.Engine
	mu     sync.Mutex
}

// NewManager creates a manager with a fresh engine
func NewManager() *Manager {
	slog.Debug("Creating calculator session")

	return &Manager{
		engine: calculator.New(),
	}
}

// Do runs an operation against the engine and returns the state it left behind.
// The operation and the snapshot happen under the same lock.
func (m *Manager) Do(operation string, fn func(e *calculator.Engine) error) (calculator.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := fn(m.engine); err != nil {
		slog.Debug("Calculator operation rejected", "operation", operation, "error", err)
		return m.engine.Snapshot(), err
	}

	state := m.engine.Snapshot()
	if state.Err != nil {
		slog.Warn("Calculator evaluation failed", "operation", operation, "error", state.Err)
	}
	slog.Debug("Calculator operation applied",
		"operation", operation,
		"display", state.Display,
		"expression", state.Expression,
		"history_count", len(state.History))

	return state, nil
}

// Snapshot returns the current engine state
func (m *Manager) Snapshot() calculator.State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.engine.Snapshot()
}

// Reset replaces the engine with a fresh one, dropping history
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	slog.Debug("Resetting calculator session")
	m.engine = calculator.New()
}
