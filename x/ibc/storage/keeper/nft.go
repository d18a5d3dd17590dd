package keeper

import (
	"context"

	"cosmossdk.io/collections"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// SetNftClass stores the class data of the NFT class.
func (k Keeper) SetNftClass(ctx context.Context, classID, classData string) error {
	return Write(k.Storage(ctx), types.NftClassKey(classID), collections.StringValue, classData)
}

// GetNftClass returns the class data of the NFT class.
func (k Keeper) GetNftClass(ctx context.Context, classID string) (string, bool, error) {
	return Read(k.Storage(ctx), types.NftClassKey(classID), collections.StringValue)
}

// SetNftMetadata stores the token data of the NFT.
func (k Keeper) SetNftMetadata(ctx context.Context, classID, tokenID, tokenData string) error {
	return Write(k.Storage(ctx), types.NftMetadataKey(classID, tokenID), collections.StringValue, tokenData)
}

// GetNftMetadata returns the token data of the NFT.
func (k Keeper) GetNftMetadata(ctx context.Context, classID, tokenID string) (string, bool, error) {
	return Read(k.Storage(ctx), types.NftMetadataKey(classID, tokenID), collections.StringValue)
}
