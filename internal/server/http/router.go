package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter builds the handler serving the subset of the DLP v2 REST API
// used to manage job triggers.
func NewRouter(req *ServerReq) *chi.Mux {

	r := chi.NewRouter()
	r.Use(loggerMiddleware(req.Logger, req.HTTPAccessLogLevel))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpWriteResponseError(w, NewResponseError(
			fmt.Errorf("requested path %s was not found", r.URL.Path), http.StatusNotFound))
	})

	r.Route("/v2", func(r chi.Router) {
		r.Mount("/projects/{project}/jobTriggers", triggersEndpoint{
			state: req.State,
		}.routes())

		// Anything else under the API version is a resource name this server
		// does not understand.
		r.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
			httpWriteResponseError(w, NewResponseError(
				fmt.Errorf("invalid resource name %q", chi.URLParam(r, "*")), http.StatusBadRequest))
		})
	})

	return r
}
