package cli_test

import (
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
)

func clientHeight(revision, height uint64) clienttypes.Height {
	return clienttypes.NewHeight(revision, height)
}
