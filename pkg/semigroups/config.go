package semigroups

import (
	"time"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
)

// KnuthBendixConfig is the configuration surface of spec.md §6 for the
// Knuth-Bendix engine.
type KnuthBendixConfig struct {
	MaxPendingRules int
	MaxRules        int
	ReductionOrder  alphabet.Order
	RewriterBackend RewriterBackend
	// MaxRuntime, zero meaning unbounded, bounds a single Run call's wall
	// clock the way RunFor does explicitly; Run itself honours it too so
	// that a caller who forgets RunFor still gets a cooperative engine.
	MaxRuntime time.Duration
}

// NewKnuthBendixConfig returns the defaults this port picked for the two
// Open Questions spec.md §9 leaves to the implementer: one shared
// max_pending_rules default (4096) regardless of back-end, and the trie
// back-end as default (the asymptotically better choice once a
// presentation has more than a handful of rules).
func NewKnuthBendixConfig() KnuthBendixConfig {
	return KnuthBendixConfig{
		MaxPendingRules: 4096,
		MaxRules:        1 << 20,
		ReductionOrder:  alphabet.Shortlex,
		RewriterBackend: BackendTrie,
	}
}

// ToddCoxeterStrategy selects which inference strategy (or combination)
// drives coset enumeration.
type ToddCoxeterStrategy int

const (
	StrategyHLT ToddCoxeterStrategy = iota
	StrategyFelsch
	// StrategyCR runs a Felsch pass then an HLT pass ("C" then "R");
	// StrategyROverC, StrategyRC and StrategyCRPrime are the other named
	// interleavings from spec.md §6's configuration surface, each run as a
	// fixed sequence of the same two passes (see strategyPasses in
	// toddcoxeter.go and DESIGN.md).
	StrategyCR
	StrategyROverC
	StrategyRC
	StrategyCRPrime
)

// LookaheadStyle selects which inference style a lookahead pass uses.
type LookaheadStyle int

const (
	LookaheadHLT LookaheadStyle = iota
	LookaheadFelsch
)

// LookaheadExtent selects how much of the word graph a lookahead pass
// scans.
type LookaheadExtent int

const (
	LookaheadPartial LookaheadExtent = iota
	LookaheadFull
)

// StandardizationOrder selects the word order standardisation relabels
// nodes under, or None to skip standardisation entirely.
type StandardizationOrder int

const (
	StandardizeShortlex StandardizationOrder = iota
	StandardizeLex
	StandardizeRecursive
	StandardizeNone
)

// DefPolicy controls which nodes Felsch is allowed to define when node
// space runs short. Per the Open-Question decision in SPEC_FULL.md §9,
// the source's overlapping PurgeFromTop/PurgeAll pair is coalesced: only
// PurgeFromTop appears here (with threshold 0 reproducing PurgeAll's
// behaviour).
type DefPolicy int

const (
	DefUnlimited DefPolicy = iota
	DefPurgeFromTop
	DefDiscardAllIfNoSpace
	DefNoStackIfNoSpace
)

// DefVersion selects between the two definition-processing code paths
// named in spec.md §6's configuration surface.
type DefVersion int

const (
	DefV1 DefVersion = iota
	DefV2
)

// ToddCoxeterConfig is the configuration surface of spec.md §6 for the
// Todd-Coxeter engine, field for field.
type ToddCoxeterConfig struct {
	Strategy                 ToddCoxeterStrategy
	LookaheadStyle           LookaheadStyle
	LookaheadExtent          LookaheadExtent
	LookaheadNext            int
	LookaheadMin             int
	LookaheadGrowthFactor    float64
	LookaheadGrowthThreshold int
	LookaheadStopEarlyRatio  float64
	Save                     bool
	StandardizationOrder     StandardizationOrder
	DefPolicy                DefPolicy
	DefVersion               DefVersion
	DefMax                   int
	HLTDefs                  int
	FDefs                    int
	// LargeCollapse: per the Open-Question decision in SPEC_FULL.md §9,
	// interpreted uniformly under both HLT and Felsch as an upper bound on
	// the number of nodes collapsed while draining the coincidence queue
	// once before the engine pauses to let definitions/lookahead catch up.
	LargeCollapse int
	LowerBound    int
	MaxRuntime    time.Duration
}

// NewToddCoxeterConfig returns sane defaults.
func NewToddCoxeterConfig() ToddCoxeterConfig {
	return ToddCoxeterConfig{
		Strategy:                 StrategyHLT,
		LookaheadStyle:           LookaheadHLT,
		LookaheadExtent:          LookaheadPartial,
		LookaheadNext:            5000000,
		LookaheadMin:             10000,
		LookaheadGrowthFactor:    2.0,
		LookaheadGrowthThreshold: 4,
		LookaheadStopEarlyRatio:  0.01,
		Save:                     false,
		StandardizationOrder:     StandardizeShortlex,
		DefPolicy:                DefUnlimited,
		DefVersion:               DefV2,
		DefMax:                   1 << 20,
		HLTDefs:                  200000,
		FDefs:                    200000,
		LargeCollapse:            1 << 30,
		LowerBound:               0,
	}
}

// FroidurePinConfig is the configuration surface of spec.md §6 for the
// Froidure-Pin engine.
type FroidurePinConfig struct {
	BatchSize            int
	ConcurrencyThreshold int
	Immutable            bool
	// LeftCayleyGraph requests the left Cayley graph be built alongside
	// the right one; spec.md §4.5 mentions this as conditional ("if left
	// Cayley graph is requested").
	LeftCayleyGraph bool
}

// NewFroidurePinConfig returns sane defaults.
func NewFroidurePinConfig() FroidurePinConfig {
	return FroidurePinConfig{
		BatchSize:            8192,
		ConcurrencyThreshold: 1 << 18,
		Immutable:            false,
	}
}
