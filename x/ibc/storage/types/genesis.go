package types

import (
	"cosmossdk.io/math"
)

// TokenLimit is a per-token limit override.
type TokenLimit struct {
	Token string   `json:"token"`
	Limit math.Int `json:"limit"`
}

// IbcTrace is a denom trace stored under ibc_trace/<owner>/<hash>.
type IbcTrace struct {
	Owner string `json:"owner"`
	Hash  string `json:"hash"`
	Trace string `json:"trace"`
}

// NewIbcTrace creates a trace entry keyed by the hash of the trace.
func NewIbcTrace(owner, trace string) IbcTrace {
	return IbcTrace{
		Owner: owner,
		Hash:  CalcHash(trace),
		Trace: trace,
	}
}

// Key returns the storage key of the trace.
func (t IbcTrace) Key() Key {
	return IbcTraceKey(t.Owner, t.Hash)
}

// Validate checks that the trace is storable and keyed by its own hash.
func (t IbcTrace) Validate() error {
	if err := ValidateKeySeg(t.Owner); err != nil {
		return ErrInvalidGenesis.Wrapf("invalid trace owner: %s", err)
	}
	if t.Trace == "" {
		return ErrInvalidGenesis.Wrap("empty trace")
	}
	if expected := CalcHash(t.Trace); t.Hash != expected {
		return ErrInvalidGenesis.Wrapf("trace %s has hash %s, expected %s", t.Trace, t.Hash, expected)
	}
	return nil
}

// GenesisState defines the ibc storage genesis state.
type GenesisState struct {
	Params           Params       `json:"params"`
	MintLimits       []TokenLimit `json:"mint_limits"`
	ThroughputLimits []TokenLimit `json:"throughput_limits"`
	Traces           []IbcTrace   `json:"traces"`
}

// NewGenesisState creates a new ibc storage GenesisState instance.
func NewGenesisState(params Params, mintLimits, throughputLimits []TokenLimit, traces []IbcTrace) *GenesisState {
	return &GenesisState{
		Params:           params,
		MintLimits:       mintLimits,
		ThroughputLimits: throughputLimits,
		Traces:           traces,
	}
}

// DefaultGenesisState returns a GenesisState with default params and no overrides.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if err := validateTokenLimits(gs.MintLimits); err != nil {
		return ErrInvalidGenesis.Wrapf("mint limits: %s", err)
	}
	if err := validateTokenLimits(gs.ThroughputLimits); err != nil {
		return ErrInvalidGenesis.Wrapf("throughput limits: %s", err)
	}

	seen := make(map[string]bool, len(gs.Traces))
	for _, trace := range gs.Traces {
		if err := trace.Validate(); err != nil {
			return err
		}

		key := trace.Key().String()
		if seen[key] {
			return ErrInvalidGenesis.Wrapf("duplicated trace %s", key)
		}
		seen[key] = true
	}

	return nil
}

func validateTokenLimits(limits []TokenLimit) error {
	seen := make(map[string]bool, len(limits))
	for _, limit := range limits {
		if _, err := ParseAddress(limit.Token); err != nil {
			return err
		}
		if seen[limit.Token] {
			return ErrInvalidGenesis.Wrapf("duplicated token %s", limit.Token)
		}
		seen[limit.Token] = true

		if err := validateLimit(limit.Limit); err != nil {
			return err
		}
	}
	return nil
}
