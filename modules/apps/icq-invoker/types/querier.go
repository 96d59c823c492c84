package types

import "fmt"

// Legacy querier routes supported by the interchain query invoker
const (
	QueryResults = "results"
	QueryErrors  = "errors"
	QueryChannel = "channel"
	QueryParams  = "params"
)

// QueryPath returns the ABCI query path of the given legacy querier route
func QueryPath(route string) string {
	return fmt.Sprintf("custom/%s/%s", QuerierRoute, route)
}
