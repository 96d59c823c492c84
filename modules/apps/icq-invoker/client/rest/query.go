package rest

import (
	"fmt"
	"net/http"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/types/rest"
	"github.com/gorilla/mux"

	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

// RegisterRoutes registers the interchain query invoker REST routes
func RegisterRoutes(clientCtx client.Context, rtr *mux.Router) {
	for _, route := range []string{
		types.QueryResults,
		types.QueryErrors,
		types.QueryChannel,
		types.QueryParams,
	} {
		rtr.HandleFunc(
			fmt.Sprintf("/%s/%s", types.ModuleName, route),
			queryHandlerFn(clientCtx, route),
		).Methods("GET")
	}
}

func queryHandlerFn(clientCtx client.Context, route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, clientCtx, r)
		if !ok {
			return
		}

		res, height, err := clientCtx.QueryWithData(types.QueryPath(route), nil)
		if rest.CheckInternalServerError(w, err) {
			return
		}

		clientCtx = clientCtx.WithHeight(height)
		rest.PostProcessResponse(w, clientCtx, res)
	}
}
