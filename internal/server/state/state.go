package state

import (
	dlpapi "google.golang.org/api/dlp/v2"
)

type State interface {
	Triggers() Triggers
}

type Triggers interface {
	Create(*TriggersCreateReq) (*TriggersCreateResp, *ErrorResp)
	Delete(*TriggersDeleteReq) (*TriggersDeleteResp, *ErrorResp)
	Get(*TriggersGetReq) (*TriggersGetResp, *ErrorResp)
	List(*TriggersListReq) (*TriggersListResp, *ErrorResp)
}

type TriggersCreateReq struct {
	Trigger *dlpapi.GooglePrivacyDlpV2JobTrigger
}

type TriggersCreateResp struct {
	Trigger *dlpapi.GooglePrivacyDlpV2JobTrigger
}

type TriggersDeleteReq struct {
	Name string
}

type TriggersDeleteResp struct{}

type TriggersGetReq struct {
	Name string
}

type TriggersGetResp struct {
	Trigger *dlpapi.GooglePrivacyDlpV2JobTrigger
}

type TriggersListReq struct {
	Parent string
}

type TriggersListResp struct {
	Triggers []*dlpapi.GooglePrivacyDlpV2JobTrigger
}

type ErrorResp struct {
	ErrorBody `json:"error"`
}

type ErrorBody struct {
	Msg  string `json:"message"`
	Code int    `json:"code"`
	err  error
}

func NewErrorResp(e error, c int) *ErrorResp {
	return &ErrorResp{
		ErrorBody: ErrorBody{
			err:  e,
			Code: c,
			Msg:  e.Error(),
		},
	}
}

func (e *ErrorResp) Error() string { return e.Msg }

func (e *ErrorResp) Err() error { return e.err }

func (e *ErrorResp) StatusCode() int { return e.Code }

func (e *ErrorResp) String() string { return e.Msg }
