package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Round count defaults
const (
	DefaultTotalRounds = 3
	DefaultMaxRounds   = 10
)

// RoundsPolicy bounds the round count a match may be configured with.
// The lower bound of 1 always applies; Max of 0 means no upper bound.
type RoundsPolicy struct {
	Max     int
	Default int // 0 means DefaultTotalRounds
}

// DefaultRoundsPolicy returns the 1..10 policy used by the round stepper
func DefaultRoundsPolicy() RoundsPolicy {
	return RoundsPolicy{Max: DefaultMaxRounds, Default: DefaultTotalRounds}
}

// DefaultRounds is the round count used when none is given
func (p RoundsPolicy) DefaultRounds() int {
	if p.Default > 0 {
		return p.Default
	}
	return DefaultTotalRounds
}

// Parse is ParseTotalRounds with the policy's default for empty input
func (p RoundsPolicy) Parse(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return p.DefaultRounds(), nil
	}
	return ParseTotalRounds(s)
}

// Validate checks a round count against the policy
func (p RoundsPolicy) Validate(totalRounds int) error {
	if totalRounds < 1 {
		return fmt.Errorf("%w: total rounds must be at least 1, got %d", ErrInvalidConfig, totalRounds)
	}
	if p.Max > 0 && totalRounds > p.Max {
		return fmt.Errorf("%w: total rounds must be at most %d, got %d", ErrInvalidConfig, p.Max, totalRounds)
	}
	return nil
}

// Check reports whether the policy's own default satisfies its bounds
func (p RoundsPolicy) Check() error {
	if err := p.Validate(p.DefaultRounds()); err != nil {
		return fmt.Errorf("default rounds: %w", err)
	}
	return nil
}

// Clamp pulls a round count into the policy range
func (p RoundsPolicy) Clamp(totalRounds int) int {
	if totalRounds < 1 {
		return 1
	}
	if p.Max > 0 && totalRounds > p.Max {
		return p.Max
	}
	return totalRounds
}

// ParseTotalRounds parses an untrusted round count such as a query parameter.
// Empty input yields DefaultTotalRounds; anything that is not an integer is invalid.
func ParseTotalRounds(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTotalRounds, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: total rounds %q is not an integer", ErrInvalidConfig, s)
	}
	return n, nil
}

// MatchPreset is a named round count offered on the home screen
type MatchPreset struct {
	Name        string
	Label       string
	Description string
	TotalRounds int
}

// MatchPresets returns the built-in presets
func MatchPresets() []MatchPreset {
	return []MatchPreset{
		{Name: "quick", Label: "Quick Play", Description: "Best of 3 rounds", TotalRounds: 3},
		{Name: "standard", Label: "Standard", Description: "Best of 5 rounds", TotalRounds: 5},
		{Name: "marathon", Label: "Marathon", Description: "Best of 7 rounds", TotalRounds: 7},
	}
}

// PresetByName looks up a preset by its name
func PresetByName(name string) (MatchPreset, error) {
	for _, p := range MatchPresets() {
		if p.Name == strings.ToLower(name) {
			return p, nil
		}
	}
	return MatchPreset{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, name)
}
