package types

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"cosmossdk.io/collections/codec"
	"cosmossdk.io/math"
)

// Params are the module-wide defaults of the IBC token limits.
type Params struct {
	DefaultMintLimit               math.Int `json:"default_mint_limit"`
	DefaultPerEpochThroughputLimit math.Int `json:"default_per_epoch_throughput_limit"`
}

// NewParams creates a new parameter configuration for the ibc storage module
func NewParams(defaultMintLimit, defaultPerEpochThroughputLimit math.Int) Params {
	return Params{
		DefaultMintLimit:               defaultMintLimit,
		DefaultPerEpochThroughputLimit: defaultPerEpochThroughputLimit,
	}
}

// DefaultParams is the default parameter configuration for the ibc storage module
func DefaultParams() Params {
	return NewParams(math.ZeroInt(), math.ZeroInt())
}

func (p Params) String() string {
	out, err := yaml.Marshal(map[string]string{
		"default_mint_limit":                 p.DefaultMintLimit.String(),
		"default_per_epoch_throughput_limit": p.DefaultPerEpochThroughputLimit.String(),
	})
	if err != nil {
		panic(err)
	}
	return string(out)
}

func (p Params) Validate() error {
	if err := validateLimit(p.DefaultMintLimit); err != nil {
		return ErrInvalidParams.Wrapf("default mint limit: %s", err)
	}
	if err := validateLimit(p.DefaultPerEpochThroughputLimit); err != nil {
		return ErrInvalidParams.Wrapf("default per-epoch throughput limit: %s", err)
	}

	return nil
}

func validateLimit(limit math.Int) error {
	switch {
	case limit.IsNil():
		return ErrInvalidParams.Wrap("limit cannot be nil")
	case limit.IsNegative():
		return ErrInvalidParams.Wrapf("limit cannot be negative: %s", limit)
	}
	return nil
}

// ParamsValue encodes Params stored under ParamsKey.
var ParamsValue codec.ValueCodec[Params] = paramsValueCodec{}

type paramsValueCodec struct{}

func (paramsValueCodec) Encode(value Params) ([]byte, error) {
	return json.Marshal(value)
}

func (paramsValueCodec) Decode(b []byte) (Params, error) {
	var params Params
	if err := json.Unmarshal(b, &params); err != nil {
		return Params{}, err
	}
	return params, nil
}

func (c paramsValueCodec) EncodeJSON(value Params) ([]byte, error) {
	return c.Encode(value)
}

func (c paramsValueCodec) DecodeJSON(b []byte) (Params, error) {
	return c.Decode(b)
}

func (paramsValueCodec) Stringify(value Params) string {
	return value.String()
}

func (paramsValueCodec) ValueType() string {
	return ModuleName + "/Params"
}
