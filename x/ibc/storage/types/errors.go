package types

import (
	errorsmod "cosmossdk.io/errors"
)

// IBC storage sentinel errors
var (
	ErrStorageKey            = errorsmod.Register(ModuleName, 2, "storage key error")
	ErrInvalidKey            = errorsmod.Register(ModuleName, 3, "invalid key")
	ErrInvalidPortCapability = errorsmod.Register(ModuleName, 4, "port capability error")
	ErrInvalidParams         = errorsmod.Register(ModuleName, 5, "invalid params")
	ErrInvalidGenesis        = errorsmod.Register(ModuleName, 6, "invalid genesis")
	ErrInvalidAddress        = errorsmod.Register(ModuleName, 7, "invalid address")
	ErrInvalidEvent          = errorsmod.Register(ModuleName, 8, "invalid event")
)
