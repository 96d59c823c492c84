package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	host "github.com/cosmos/ibc-go/v3/modules/core/24-host"
)

// IcqResult is a balance stored for the query packet with the given sequence
type IcqResult struct {
	Sequence uint64   `json:"sequence" yaml:"sequence"`
	Coin     sdk.Coin `json:"coin" yaml:"coin"`
}

// IcqError is an error acknowledgement stored for the query packet with the given sequence
type IcqError struct {
	Sequence uint64 `json:"sequence" yaml:"sequence"`
	Error    string `json:"error" yaml:"error"`
}

// GenesisState defines the interchain query invoker genesis state
type GenesisState struct {
	PortID      string       `json:"port_id" yaml:"port_id"`
	Params      Params       `json:"params" yaml:"params"`
	ChannelInfo *ChannelInfo `json:"channel_info,omitempty" yaml:"channel_info"`
	Results     []IcqResult  `json:"results" yaml:"results"`
	Errors      []IcqError   `json:"errors" yaml:"errors"`
}

// NewGenesisState creates a new GenesisState instance
func NewGenesisState(portID string, params Params, channelInfo *ChannelInfo, results []IcqResult, errors []IcqError) *GenesisState {
	return &GenesisState{
		PortID:      portID,
		Params:      params,
		ChannelInfo: channelInfo,
		Results:     results,
		Errors:      errors,
	}
}

// DefaultGenesis returns the default interchain query invoker genesis state
func DefaultGenesis() *GenesisState {
	return NewGenesisState(PortID, DefaultParams(), nil, []IcqResult{}, []IcqError{})
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	if err := host.PortIdentifierValidator(gs.PortID); err != nil {
		return err
	}

	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.ChannelInfo != nil {
		if err := gs.ChannelInfo.Validate(); err != nil {
			return sdkerrors.Wrap(ErrInvalidGenesis, err.Error())
		}
	}

	seenResults := make(map[uint64]bool)
	for _, result := range gs.Results {
		if seenResults[result.Sequence] {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "duplicate result for sequence %d", result.Sequence)
		}
		if err := result.Coin.Validate(); err != nil {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "invalid result for sequence %d: %s", result.Sequence, err)
		}
		seenResults[result.Sequence] = true
	}

	seenErrors := make(map[uint64]bool)
	for _, icqErr := range gs.Errors {
		if seenErrors[icqErr.Sequence] {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "duplicate error for sequence %d", icqErr.Sequence)
		}
		seenErrors[icqErr.Sequence] = true
	}

	return nil
}
