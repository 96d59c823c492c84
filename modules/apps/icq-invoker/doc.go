/*
Package icqinvoker implements an IBC application module that asks a remote
interchain query host for account balances and stores the answers.

The module binds its own port and accepts a single UNORDERED channel using
the icq-1 version. Balance queries are sent with Keeper.SendQueryBalance and
the first coin of every balance response is stored under the sequence of the
packet that produced it.

The host can answer in one of two ways, selected with the
icq-invoker.delivery-mode application option:

	ack      the balance response is carried in the result acknowledgement
	         of the query packet (default)
	receive  the host sends the balance response back as a new packet
*/
package icqinvoker
