package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc is the legacy amino codec used for the channel record, genesis and
// legacy querier responses. None of these types are protobuf messages.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}

// RegisterLegacyAminoCodec registers the module types on the provided LegacyAmino codec.
// The module defines no interfaces or messages, so there is nothing to register and
// its types encode as plain JSON objects.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {}
