package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	dlpapi "google.golang.org/api/dlp/v2"

	sharedstate "github.com/direkshan-digital/dlp-triggers/internal/pkg/state"
	"github.com/direkshan-digital/dlp-triggers/internal/state/dev"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(NewRouter(&ServerReq{
		Logger:             zap.NewNop(),
		HTTPAccessLogLevel: zap.DebugLevel.String(),
		State:              dev.New(zap.NewNop()),
	}))
	t.Cleanup(srv.Close)

	return srv
}

func testCreateReq(triggerID string) *dlpapi.GooglePrivacyDlpV2CreateJobTriggerRequest {
	return &dlpapi.GooglePrivacyDlpV2CreateJobTriggerRequest{
		TriggerId: triggerID,
		JobTrigger: &dlpapi.GooglePrivacyDlpV2JobTrigger{
			DisplayName: "My Trigger",
			Description: "Scans my bucket",
			Status:      sharedstate.StatusHealthy,
			InspectJob: &dlpapi.GooglePrivacyDlpV2InspectJobConfig{
				InspectConfig: &dlpapi.GooglePrivacyDlpV2InspectConfig{
					InfoTypes:     []*dlpapi.GooglePrivacyDlpV2InfoType{{Name: "US_CENSUS_NAME"}},
					MinLikelihood: sharedstate.LikelihoodVeryLikely,
				},
				StorageConfig: &dlpapi.GooglePrivacyDlpV2StorageConfig{
					CloudStorageOptions: &dlpapi.GooglePrivacyDlpV2CloudStorageOptions{
						FileSet: &dlpapi.GooglePrivacyDlpV2FileSet{Url: "gs://bucket/*"},
					},
				},
			},
			Triggers: []*dlpapi.GooglePrivacyDlpV2Trigger{
				{Schedule: &dlpapi.GooglePrivacyDlpV2Schedule{RecurrencePeriodDuration: "86400s"}},
			},
		},
	}
}

func doRequest(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req, err := http.NewRequest(method, url, &reqBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)

	return resp, out.Bytes()
}

func decodeError(t *testing.T, body []byte) ErrorBody {
	t.Helper()
	var respErr ResponseError
	require.NoError(t, json.Unmarshal(body, &respErr))
	return respErr.ErrorBody
}

func TestTriggersEndpoint_Lifecycle(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/v2/projects/my-project/jobTriggers"

	resp, body := doRequest(t, http.MethodPost, base, testCreateReq("my-trigger"))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var created dlpapi.GooglePrivacyDlpV2JobTrigger
	require.NoError(t, json.Unmarshal(body, &created))
	require.Equal(t, "projects/my-project/jobTriggers/my-trigger", created.Name)
	require.Equal(t, "My Trigger", created.DisplayName)
	require.NotEmpty(t, created.CreateTime)
	require.Equal(t, created.CreateTime, created.UpdateTime)

	resp, body = doRequest(t, http.MethodPost, base, testCreateReq("my-trigger"))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "ALREADY_EXISTS", decodeError(t, body).Status)

	resp, body = doRequest(t, http.MethodGet, base+"/my-trigger", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doRequest(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list dlpapi.GooglePrivacyDlpV2ListJobTriggersResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.JobTriggers, 1)
	require.Equal(t, "Scans my bucket", list.JobTriggers[0].Description)

	resp, body = doRequest(t, http.MethodGet, srv.URL+"/v2/projects/other-project/jobTriggers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = dlpapi.GooglePrivacyDlpV2ListJobTriggersResponse{}
	require.NoError(t, json.Unmarshal(body, &list))
	require.Empty(t, list.JobTriggers)

	resp, _ = doRequest(t, http.MethodDelete, base+"/my-trigger", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doRequest(t, http.MethodDelete, base+"/my-trigger", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", decodeError(t, body).Status)
}

func TestTriggersEndpoint_CreateGeneratesID(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doRequest(t, http.MethodPost, srv.URL+"/v2/projects/p/jobTriggers", testCreateReq(""))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var created dlpapi.GooglePrivacyDlpV2JobTrigger
	require.NoError(t, json.Unmarshal(body, &created))

	project, id, err := sharedstate.ParseTriggerName(created.Name)
	require.NoError(t, err)
	require.Equal(t, "p", project)
	require.NotEmpty(t, id)
}

func TestTriggersEndpoint_CreateErrors(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/v2/projects/p/jobTriggers"

	resp, body := doRequest(t, http.MethodPost, base, testCreateReq("@@@@@"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeError(t, body)
	require.Equal(t, "INVALID_ARGUMENT", errBody.Status)
	require.Contains(t, errBody.Msg, "invalid trigger ID")

	invalid := testCreateReq("valid-id")
	invalid.JobTrigger.Status = ""
	resp, _ = doRequest(t, http.MethodPost, base, invalid)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	noTrigger := testCreateReq("valid-id")
	noTrigger.JobTrigger = nil
	resp, _ = doRequest(t, http.MethodPost, base, noTrigger)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, base, bytes.NewBufferString("{"))
	require.NoError(t, err)
	rawResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = rawResp.Body.Close()
	require.Equal(t, http.StatusBadRequest, rawResp.StatusCode)
}

func TestRouter_InvalidResourceNames(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doRequest(t, http.MethodDelete, srv.URL+"/v2/bad-trigger-path", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, decodeError(t, body).Msg, "bad-trigger-path")

	resp, _ = doRequest(t, http.MethodDelete, srv.URL+"/v2/projects/p/jobTriggers/@@@@@", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, http.MethodGet, srv.URL+"/healthz", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
