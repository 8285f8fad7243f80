package stats

import (
	"fmt"

	"github.com/shamadac/pokertracker/internal/hand"
)

// InsufficientDataError is returned only when the caller explicitly
// requires a minimum sample; otherwise empty inputs yield zero values.
type InsufficientDataError struct {
	Required int
	Actual   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %d hands required, %d available", e.Required, e.Actual)
}

// Options tunes the filtered-statistics aggregate.
type Options struct {
	// MinSample, when positive, makes the call fail with
	// *InsufficientDataError if the filtered sample is smaller.
	MinSample int
	// MinPositionSample overrides the positional qualifying threshold.
	MinPositionSample int
	Tournament        TournamentOptions
}

// FilteredStatistics bundles every calculator's output for one filtered
// view of a hand collection.
type FilteredStatistics struct {
	Basic      BasicStatistics        `json:"basic"`
	Advanced   AdvancedStatistics     `json:"advanced"`
	Positional []PositionalStatistics `json:"positional"`
	// Tournament is nil when the filtered collection holds no
	// tournament hands.
	Tournament *TournamentStatistics `json:"tournament,omitempty"`

	SampleSize     int     `json:"sample_size"`
	FiltersApplied Filters `json:"filters_applied"`
}

// CalculateFilteredStatistics narrows the collection with the filters and
// runs every calculator over the result. The calculators are pure and the
// input is read-only, so calls are referentially transparent and safe to
// run concurrently over the same collection.
func CalculateFilteredStatistics(hands []*hand.Hand, filters Filters, opts Options) (*FilteredStatistics, error) {
	filtered := filters.Apply(hands)
	if opts.MinSample > 0 && len(filtered) < opts.MinSample {
		return nil, &InsufficientDataError{Required: opts.MinSample, Actual: len(filtered)}
	}

	tournamentOpts := opts.Tournament
	if tournamentOpts == (TournamentOptions{}) {
		tournamentOpts = DefaultTournamentOptions()
	}

	return &FilteredStatistics{
		Basic:          Basic(filtered),
		Advanced:       Advanced(filtered),
		Positional:     Positional(filtered, opts.MinPositionSample),
		Tournament:     Tournament(filtered, tournamentOpts),
		SampleSize:     len(filtered),
		FiltersApplied: filters,
	}, nil
}
