package telemetry

import (
	metrics "github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	coretypes "github.com/cosmos/ibc-go/v3/modules/core/types"
	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

// ReportSendQuery counts an outgoing balance query.
func ReportSendQuery(sourcePort, sourceChannel, destinationPort, destinationChannel string) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "send"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coretypes.LabelSourcePort, sourcePort),
			telemetry.NewLabel(coretypes.LabelSourceChannel, sourceChannel),
			telemetry.NewLabel(coretypes.LabelDestinationPort, destinationPort),
			telemetry.NewLabel(coretypes.LabelDestinationChannel, destinationChannel),
		},
	)
}

// ReportResult counts a stored balance and records its amount when it fits a gauge.
func ReportResult(mode types.DeliveryMode, coin sdk.Coin) {
	if coin.Amount.IsInt64() {
		telemetry.SetGaugeWithLabels(
			[]string{"ibc", types.ModuleName, "balance"},
			float32(coin.Amount.Int64()),
			[]metrics.Label{telemetry.NewLabel(coretypes.LabelDenom, coin.Denom)},
		)
	}

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "result"},
		1,
		[]metrics.Label{telemetry.NewLabel("delivery_mode", mode.String())},
	)
}

// ReportError counts an error acknowledgement returned by the host.
func ReportError(sourceChannel string) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "error"},
		1,
		[]metrics.Label{telemetry.NewLabel(coretypes.LabelSourceChannel, sourceChannel)},
	)
}

// ReportRejectedPacket counts an inbound packet that could not be decoded.
func ReportRejectedPacket(sourcePort, sourceChannel string) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "packet", "rejected"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coretypes.LabelSourcePort, sourcePort),
			telemetry.NewLabel(coretypes.LabelSourceChannel, sourceChannel),
		},
	)
}

// ReportTimeout counts a query that expired without an answer.
func ReportTimeout(sourceChannel string) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "timeout"},
		1,
		[]metrics.Label{telemetry.NewLabel(coretypes.LabelSourceChannel, sourceChannel)},
	)
}
