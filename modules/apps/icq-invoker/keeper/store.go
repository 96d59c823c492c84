package keeper

import (
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

// GetChannelInfo returns the record of the connected channel, if any.
func (k Keeper) GetChannelInfo(ctx sdk.Context) (types.ChannelInfo, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ChannelInfoKey)
	if bz == nil {
		return types.ChannelInfo{}, false
	}

	var info types.ChannelInfo
	types.ModuleCdc.MustUnmarshal(bz, &info)
	return info, true
}

// SetChannelInfo replaces the record of the connected channel.
func (k Keeper) SetChannelInfo(ctx sdk.Context, info types.ChannelInfo) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ChannelInfoKey, types.ModuleCdc.MustMarshal(info))
}

// DeleteChannelInfo removes the record of the connected channel.
func (k Keeper) DeleteChannelInfo(ctx sdk.Context) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.ChannelInfoKey)
}

// HasChannelInfo returns true if a channel to the interchain query host is connected.
func (k Keeper) HasChannelInfo(ctx sdk.Context) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.ChannelInfoKey)
}

// SetResult stores the balance returned for the query packet with the given sequence.
// An existing result for the same sequence is overwritten.
func (k Keeper) SetResult(ctx sdk.Context, sequence uint64, coin sdk.Coin) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ResultKey(sequence), k.cdc.MustMarshal(&coin))
}

// GetResult returns the balance stored for the given sequence.
func (k Keeper) GetResult(ctx sdk.Context, sequence uint64) (sdk.Coin, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ResultKey(sequence))
	if bz == nil {
		return sdk.Coin{}, false
	}

	var coin sdk.Coin
	k.cdc.MustUnmarshal(bz, &coin)
	return coin, true
}

// IterateResults iterates over all stored results in ascending sequence order.
// Iteration stops when cb returns true.
func (k Keeper) IterateResults(ctx sdk.Context, cb func(sequence uint64, coin sdk.Coin) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.ResultKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var coin sdk.Coin
		k.cdc.MustUnmarshal(iterator.Value(), &coin)

		if cb(types.ParseSequenceKey(iterator.Key()), coin) {
			break
		}
	}
}

// GetAllResults returns all stored results in ascending sequence order.
func (k Keeper) GetAllResults(ctx sdk.Context) []types.IcqResult {
	results := []types.IcqResult{}
	k.IterateResults(ctx, func(sequence uint64, coin sdk.Coin) bool {
		results = append(results, types.IcqResult{Sequence: sequence, Coin: coin})
		return false
	})

	return results
}

// SetError stores the error acknowledgement received for the query packet with the given sequence.
func (k Keeper) SetError(ctx sdk.Context, sequence uint64, msg string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ErrorKey(sequence), []byte(msg))
}

// GetError returns the error stored for the given sequence.
func (k Keeper) GetError(ctx sdk.Context, sequence uint64) (string, bool) {
	store := ctx.KVStore(k.storeKey)
	key := types.ErrorKey(sequence)
	if !store.Has(key) {
		return "", false
	}

	return string(store.Get(key)), true
}

// IterateErrors iterates over all stored errors in ascending sequence order.
func (k Keeper) IterateErrors(ctx sdk.Context, cb func(sequence uint64, msg string) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.ErrorKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		if cb(types.ParseSequenceKey(iterator.Key()), string(iterator.Value())) {
			break
		}
	}
}

// GetAllErrors returns all stored errors in ascending sequence order.
func (k Keeper) GetAllErrors(ctx sdk.Context) []types.IcqError {
	icqErrors := []types.IcqError{}
	k.IterateErrors(ctx, func(sequence uint64, msg string) bool {
		icqErrors = append(icqErrors, types.IcqError{Sequence: sequence, Error: msg})
		return false
	})

	return icqErrors
}
