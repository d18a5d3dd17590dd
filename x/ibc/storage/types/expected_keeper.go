package types

import (
	"context"

	"cosmossdk.io/math"
)

// TokenKeeper defines the token accounting the IBC module mints through.
type TokenKeeper interface {
	MintTokens(ctx context.Context, minter, token, target Address, amount math.Int) error
	GetBalance(ctx context.Context, token, owner Address) (math.Int, error)
}
