package models

import (
	"sync"
	"time"

	"number-converter/internal/converter"
)

// ConversionState holds what the form currently shows: the selected
// mode, the input buffer and the last successful result.
type ConversionState struct {
	mu          sync.RWMutex
	mode        converter.Mode
	input       string
	lastResult  *converter.Result
	convertedAt time.Time
	conversions int
}

// NewConversionState creates a state with the given initial mode
func NewConversionState(mode converter.Mode) *ConversionState {
	return &ConversionState{mode: mode}
}

// Mode returns the selected conversion mode
func (s *ConversionState) Mode() converter.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches mode and clears the input buffer. It reports whether the mode changed.
func (s *ConversionState) SetMode(mode converter.Mode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.mode != mode
	s.mode = mode
	s.input = ""
	return changed
}

// Input returns the current input buffer
func (s *ConversionState) Input() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input
}

// SetInput replaces the input buffer
func (s *ConversionState) SetInput(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = input
}

// Request returns mode and input as one consistent pair
func (s *ConversionState) Request() (converter.Mode, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode, s.input
}

// RecordResult stores the outcome of a successful conversion
func (s *ConversionState) RecordResult(result converter.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastResult = &result
	s.convertedAt = time.Now()
	s.conversions++
}

// LastResult returns the most recent result, if any
func (s *ConversionState) LastResult() (converter.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastResult == nil {
		return converter.Result{}, false
	}
	return *s.lastResult, true
}

// Stats summarises activity for logging
type Stats struct {
	Conversions    int
	LastConversion time.Time
	CurrentMode    string
	InputLength    int
}

// GetStats returns a snapshot of the state
func (s *ConversionState) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Conversions:    s.conversions,
		LastConversion: s.convertedAt,
		CurrentMode:    s.mode.String(),
		InputLength:    len(s.input),
	}
}
