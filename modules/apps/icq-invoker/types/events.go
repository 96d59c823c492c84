package types

// ICQ invoker events
const (
	EventTypeSendQueryBalance = "send_query_balance"
	EventTypePacket           = "icq_invoker_packet"
	EventTypeTimeout          = "icq_invoker_timeout"
	EventTypeChannelClose     = "icq_invoker_channel_close"

	AttributeKeyMethod   = "method"
	AttributeKeyChannel  = "channel"
	AttributeKeySequence = "sequence"
	AttributeKeyAckError = "error"
	AttributeKeyDenom    = "denom"
	AttributeKeyAmount   = "amount"
	AttributeKeySuccess  = "success"
)
