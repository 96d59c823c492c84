package types

import (
	"bytes"
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// QueryRequest is the caller input for a single balance query. It is never persisted.
type QueryRequest struct {
	ChainID string
	Addr    string
	Denom   string
}

// NewQueryRequest creates a new QueryRequest instance
func NewQueryRequest(chainID, addr, denom string) QueryRequest {
	return QueryRequest{
		ChainID: chainID,
		Addr:    addr,
		Denom:   denom,
	}
}

// BalanceQueryPacketData defines the packet data sent to the interchain query host.
// The fields are forwarded as given, the host is responsible for validating them.
type BalanceQueryPacketData struct {
	ChainID string `json:"chain_id"`
	Addr    string `json:"addr"`
	Denom   string `json:"denom"`
}

// NewBalanceQueryPacketData builds the packet data for the given request
func NewBalanceQueryPacketData(req QueryRequest) BalanceQueryPacketData {
	return BalanceQueryPacketData{
		ChainID: req.ChainID,
		Addr:    req.Addr,
		Denom:   req.Denom,
	}
}

// GetBytes returns the JSON encoding of the packet data in field declaration order.
func (pd BalanceQueryPacketData) GetBytes() []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(pd); err != nil {
		panic(err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}

// Balances wraps the coins returned by the host.
type Balances struct {
	Coins sdk.Coins `json:"coins"`
}

// BalanceResponse is the success payload returned by the interchain query host.
type BalanceResponse struct {
	Balances Balances `json:"balances"`
	// LastSubmittedLocalHeight is the host height at which the balance was read
	LastSubmittedLocalHeight uint64 `json:"last_submitted_local_height"`
}

// DecodeBalanceResponse decodes the JSON success payload. Unknown fields are ignored.
func DecodeBalanceResponse(bz []byte) (BalanceResponse, error) {
	var resp BalanceResponse
	if err := json.Unmarshal(bz, &resp); err != nil {
		return BalanceResponse{}, sdkerrors.Wrap(ErrInvalidBalanceResponse, err.Error())
	}

	return resp, nil
}

// FirstCoin returns the first coin of the response, which is the only one recorded.
// An empty coin list is rejected with ErrEmptyBalances.
func (br BalanceResponse) FirstCoin() (sdk.Coin, error) {
	if len(br.Balances.Coins) == 0 {
		return sdk.Coin{}, ErrEmptyBalances
	}

	coin := br.Balances.Coins[0]
	if coin.Amount.IsNil() {
		return sdk.Coin{}, sdkerrors.Wrapf(ErrInvalidBalanceResponse, "missing amount for denom %s", coin.Denom)
	}
	if err := coin.Validate(); err != nil {
		return sdk.Coin{}, sdkerrors.Wrap(ErrInvalidBalanceResponse, err.Error())
	}

	return coin, nil
}

// DecodeFirstCoin decodes a balance response and returns its first coin.
func DecodeFirstCoin(bz []byte) (sdk.Coin, error) {
	resp, err := DecodeBalanceResponse(bz)
	if err != nil {
		return sdk.Coin{}, err
	}

	return resp.FirstCoin()
}
