package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"
	dlpapi "google.golang.org/api/dlp/v2"

	sharedstate "github.com/direkshan-digital/dlp-triggers/internal/pkg/state"
	"github.com/direkshan-digital/dlp-triggers/internal/server/state"
)

type triggersEndpoint struct {
	state state.State
}

func (t triggersEndpoint) routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", t.create)
	router.Get("/", t.list)
	router.Delete("/{trigger}", t.delete)
	router.Get("/{trigger}", t.get)

	return router
}

func (t triggersEndpoint) create(w http.ResponseWriter, r *http.Request) {

	var req dlpapi.GooglePrivacyDlpV2CreateJobTriggerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpWriteResponseError(w, NewResponseError(fmt.Errorf("failed to decode object: %w", err), http.StatusBadRequest))
		return
	}

	triggerID := req.TriggerId

	// An empty ID asks the service to generate one. ULIDs only contain
	// characters that are valid in trigger IDs.
	if triggerID == "" {
		triggerID = strings.ToLower(ulid.Make().String())
	} else if err := sharedstate.ValidateTriggerID(triggerID); err != nil {
		httpWriteResponseError(w, NewResponseError(err, http.StatusBadRequest))
		return
	}

	// Perform the static validation which is cheap and does not require state
	// access.
	if err := sharedstate.ValidateJobTrigger(req.JobTrigger); err != nil {
		httpWriteResponseError(w, NewResponseError(err, http.StatusBadRequest))
		return
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	trigger := req.JobTrigger
	trigger.Name = sharedstate.TriggerName(projectParam(r), triggerID)
	trigger.CreateTime = now
	trigger.UpdateTime = now
	trigger.Errors = nil

	stateResp, err := t.state.Triggers().Create(&state.TriggersCreateReq{Trigger: trigger})
	if err != nil {
		httpWriteResponseError(w, NewResponseError(err.Err(), err.StatusCode()))
		return
	}

	httpWriteResponse(w, http.StatusOK, stateResp.Trigger)
}

func (t triggersEndpoint) delete(w http.ResponseWriter, r *http.Request) {

	name, err := triggerNameParam(r)
	if err != nil {
		httpWriteResponseError(w, NewResponseError(err, http.StatusBadRequest))
		return
	}

	if _, err := t.state.Triggers().Delete(&state.TriggersDeleteReq{Name: name}); err != nil {
		httpWriteResponseError(w, NewResponseError(err.Err(), err.StatusCode()))
		return
	}

	httpWriteResponse(w, http.StatusOK, &dlpapi.GoogleProtobufEmpty{})
}

func (t triggersEndpoint) get(w http.ResponseWriter, r *http.Request) {

	name, err := triggerNameParam(r)
	if err != nil {
		httpWriteResponseError(w, NewResponseError(err, http.StatusBadRequest))
		return
	}

	stateResp, stateErr := t.state.Triggers().Get(&state.TriggersGetReq{Name: name})
	if stateErr != nil {
		httpWriteResponseError(w, NewResponseError(stateErr.Err(), stateErr.StatusCode()))
		return
	}

	httpWriteResponse(w, http.StatusOK, stateResp.Trigger)
}

func (t triggersEndpoint) list(w http.ResponseWriter, r *http.Request) {

	stateResp, err := t.state.Triggers().List(&state.TriggersListReq{
		Parent: sharedstate.ParentName(projectParam(r)),
	})
	if err != nil {
		httpWriteResponseError(w, NewResponseError(err.Err(), err.StatusCode()))
		return
	}

	httpWriteResponse(w, http.StatusOK, &dlpapi.GooglePrivacyDlpV2ListJobTriggersResponse{
		JobTriggers: stateResp.Triggers,
	})
}

func projectParam(r *http.Request) string { return chi.URLParam(r, "project") }

func triggerNameParam(r *http.Request) (string, error) {
	triggerID := chi.URLParam(r, "trigger")
	if err := sharedstate.ValidateTriggerID(triggerID); err != nil {
		return "", err
	}
	return sharedstate.TriggerName(projectParam(r), triggerID), nil
}
