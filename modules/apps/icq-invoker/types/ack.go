package types

import (
	"encoding/json"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	channeltypes "github.com/cosmos/ibc-go/v3/modules/core/04-channel/types"
)

// Acknowledgement keys of the two response variants. Key matching is case sensitive.
const (
	ackResultKey = "result"
	ackErrorKey  = "error"
)

// NewErrorAcknowledgement returns an error acknowledgement carrying the given message verbatim.
func NewErrorAcknowledgement(msg string) channeltypes.Acknowledgement {
	return channeltypes.Acknowledgement{
		Response: &channeltypes.Acknowledgement_Error{
			Error: msg,
		},
	}
}

// EncodeResultAck returns the encoded success acknowledgement for the given payload.
func EncodeResultAck(payload []byte) []byte {
	return channeltypes.NewResultAcknowledgement(payload).Acknowledgement()
}

// EncodeErrorAck returns the encoded error acknowledgement for the given message.
func EncodeErrorAck(msg string) []byte {
	return NewErrorAcknowledgement(msg).Acknowledgement()
}

// DecodeAck decodes an acknowledgement that must carry exactly one of a non-empty
// result or an error message. Unknown keys are ignored. An error with an empty
// message is still an error acknowledgement.
func DecodeAck(bz []byte) (channeltypes.Acknowledgement, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bz, &fields); err != nil {
		return channeltypes.Acknowledgement{}, sdkerrors.Wrap(ErrMalformedAck, err.Error())
	}

	rawResult, hasResult := fields[ackResultKey]
	rawError, hasError := fields[ackErrorKey]

	switch {
	case hasResult && hasError:
		return channeltypes.Acknowledgement{}, sdkerrors.Wrap(ErrMalformedAck, "both result and error are set")
	case hasResult:
		var result []byte
		if err := json.Unmarshal(rawResult, &result); err != nil {
			return channeltypes.Acknowledgement{}, sdkerrors.Wrapf(ErrMalformedAck, "invalid result: %s", err)
		}
		if len(result) == 0 {
			return channeltypes.Acknowledgement{}, sdkerrors.Wrap(ErrMalformedAck, "result cannot be empty")
		}
		return channeltypes.NewResultAcknowledgement(result), nil
	case hasError:
		var msg *string
		if err := json.Unmarshal(rawError, &msg); err != nil {
			return channeltypes.Acknowledgement{}, sdkerrors.Wrapf(ErrMalformedAck, "invalid error: %s", err)
		}
		if msg == nil {
			return channeltypes.Acknowledgement{}, sdkerrors.Wrap(ErrMalformedAck, "error cannot be null")
		}
		return NewErrorAcknowledgement(*msg), nil
	default:
		return channeltypes.Acknowledgement{}, sdkerrors.Wrap(ErrMalformedAck, "neither result nor error is set")
	}
}
