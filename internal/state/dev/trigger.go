package dev

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"

	serverstate "github.com/direkshan-digital/dlp-triggers/internal/server/state"
)

func (s *State) Triggers() serverstate.Triggers {
	return &Triggers{s: s}
}

type Triggers struct {
	s *State
}

func (t *Triggers) Create(req *serverstate.TriggersCreateReq) (*serverstate.TriggersCreateResp, *serverstate.ErrorResp) {
	if req.Trigger == nil || req.Trigger.Name == "" {
		return nil, serverstate.NewErrorResp(errors.New("job trigger name cannot be empty"), http.StatusBadRequest)
	}

	t.s.triggersLock.Lock()
	defer t.s.triggersLock.Unlock()

	if _, ok := t.s.triggers[req.Trigger.Name]; ok {
		return nil, serverstate.NewErrorResp(
			fmt.Errorf("job trigger %s already exists", req.Trigger.Name), http.StatusConflict)
	}

	t.s.triggers[req.Trigger.Name] = req.Trigger
	t.s.logger.Debug("created job trigger", zap.String("name", req.Trigger.Name))

	return &serverstate.TriggersCreateResp{Trigger: req.Trigger}, nil
}

func (t *Triggers) Delete(req *serverstate.TriggersDeleteReq) (*serverstate.TriggersDeleteResp, *serverstate.ErrorResp) {
	t.s.triggersLock.Lock()
	defer t.s.triggersLock.Unlock()

	if _, ok := t.s.triggers[req.Name]; !ok {
		return nil, serverstate.NewErrorResp(
			fmt.Errorf("job trigger %s not found", req.Name), http.StatusNotFound)
	}

	delete(t.s.triggers, req.Name)
	t.s.logger.Debug("deleted job trigger", zap.String("name", req.Name))

	return &serverstate.TriggersDeleteResp{}, nil
}

func (t *Triggers) Get(req *serverstate.TriggersGetReq) (*serverstate.TriggersGetResp, *serverstate.ErrorResp) {
	t.s.triggersLock.RLock()
	defer t.s.triggersLock.RUnlock()

	if trigger, ok := t.s.triggers[req.Name]; !ok {
		return nil, serverstate.NewErrorResp(
			fmt.Errorf("job trigger %s not found", req.Name), http.StatusNotFound)
	} else {
		return &serverstate.TriggersGetResp{Trigger: trigger}, nil
	}
}

// List returns the triggers under the requested parent ordered by name, so
// that responses are stable across calls.
func (t *Triggers) List(req *serverstate.TriggersListReq) (*serverstate.TriggersListResp, *serverstate.ErrorResp) {
	t.s.triggersLock.RLock()
	defer t.s.triggersLock.RUnlock()

	resp := serverstate.TriggersListResp{}
	prefix := req.Parent + "/jobTriggers/"

	for name, trigger := range t.s.triggers {
		if strings.HasPrefix(name, prefix) {
			resp.Triggers = append(resp.Triggers, trigger)
		}
	}

	sort.Slice(resp.Triggers, func(i, j int) bool {
		return resp.Triggers[i].Name < resp.Triggers[j].Name
	})

	return &resp, nil
}
