package types

import (
	"fmt"

	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	yaml "gopkg.in/yaml.v2"
)

const (
	// DefaultSendEnabled is the default value for the send enabled param (set to true)
	DefaultSendEnabled = true
)

// KeySendEnabled is the store key for SendEnabled Params
var KeySendEnabled = []byte("SendEnabled")

// Params defines the governance controlled parameters of the interchain query invoker
type Params struct {
	SendEnabled bool `json:"send_enabled" yaml:"send_enabled"`
}

// ParamKeyTable type declaration for parameters
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new parameter configuration
func NewParams(sendEnabled bool) Params {
	return Params{
		SendEnabled: sendEnabled,
	}
}

// DefaultParams is the default parameter configuration
func DefaultParams() Params {
	return NewParams(DefaultSendEnabled)
}

// Validate validates all parameters
func (p Params) Validate() error {
	return validateEnabled(p.SendEnabled)
}

// ParamSetPairs implements params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeySendEnabled, &p.SendEnabled, validateEnabled),
	}
}

func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

func validateEnabled(i interface{}) error {
	_, ok := i.(bool)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	return nil
}
