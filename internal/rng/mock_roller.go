package rng

import "sync"

// MockRoller implements Roller for testing with predetermined results
type MockRoller struct {
	mu         sync.Mutex
	ints       []int
	intIndex   int
	percents   []float64
	pctIndex   int
	defaultInt int
	defaultPct float64
}

// NewMockRoller creates a new mock roller
func NewMockRoller() *MockRoller {
	return &MockRoller{}
}

// SetInts sets the sequence of results returned by Intn
func (m *MockRoller) SetInts(values []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = values
	m.intIndex = 0
}

// SetPercents sets the sequence of results returned by Percent
func (m *MockRoller) SetPercents(values []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.percents = values
	m.pctIndex = 0
}

// Reset clears all predetermined results
func (m *MockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = nil
	m.intIndex = 0
	m.percents = nil
	m.pctIndex = 0
}

// Intn implements Roller.Intn. When the predetermined values run out it
// returns the default (zero), which keeps callers in-range.
func (m *MockRoller) Intn(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.intIndex >= len(m.ints) {
		return m.defaultInt
	}

	v := m.ints[m.intIndex]
	m.intIndex++
	if v < 0 || v >= n {
		// Clamp rather than panic so a misconfigured test fails on
		// assertion output instead of a crash.
		return m.defaultInt
	}
	return v
}

// Percent implements Roller.Percent
func (m *MockRoller) Percent() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pctIndex >= len(m.percents) {
		return m.defaultPct
	}

	v := m.percents[m.pctIndex]
	m.pctIndex++
	return v
}
