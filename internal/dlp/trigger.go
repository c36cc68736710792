package dlp

import (
	"context"
	"fmt"
	"strings"
	"time"

	dlpapi "google.golang.org/api/dlp/v2"

	"github.com/direkshan-digital/dlp-triggers/internal/pkg/state"
)

// Triggers is the set of job trigger operations the CLI relies on.
type Triggers interface {
	Create(context.Context, *TriggerCreateReq) (*TriggerCreateResp, error)
	Delete(context.Context, *TriggerDeleteReq) error
	List(context.Context, *TriggerListReq) (*TriggerListResp, error)
}

// JobTrigger is a flattened view of a DLP job trigger that scans a Cloud
// Storage bucket on a fixed schedule.
type JobTrigger struct {
	Name        string
	DisplayName string
	Description string
	Status      string
	CreateTime  time.Time
	UpdateTime  time.Time
	ErrorCount  int

	BucketName           string
	AutoPopulateTimespan bool
	RecurrencePeriodDays int

	InfoTypes          []string
	MinLikelihood      string
	MaxFindingsPerItem int64
}

type TriggerCreateReq struct {

	// TriggerID is the short name of the trigger. When empty, the service
	// generates one.
	TriggerID string
	Trigger   *JobTrigger
}

type TriggerCreateResp struct {
	Trigger *JobTrigger
}

type TriggerDeleteReq struct {

	// Name is the fully-qualified trigger name. It is sent as given, so
	// malformed names are rejected by the service.
	Name string
}

type TriggerListReq struct{}

type TriggerListResp struct {
	Triggers []*JobTrigger
}

type triggers struct {
	client *Client
}

func (t *triggers) Create(ctx context.Context, req *TriggerCreateReq) (*TriggerCreateResp, error) {

	apiReq := dlpapi.GooglePrivacyDlpV2CreateJobTriggerRequest{
		TriggerId:  req.TriggerID,
		JobTrigger: toAPITrigger(req.Trigger),
	}

	resp, err := t.client.service.Projects.JobTriggers.
		Create(state.ParentName(t.client.project), &apiReq).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	return &TriggerCreateResp{Trigger: fromAPITrigger(resp)}, nil
}

func (t *triggers) Delete(ctx context.Context, req *TriggerDeleteReq) error {
	_, err := t.client.service.Projects.JobTriggers.Delete(req.Name).Context(ctx).Do()
	return err
}

func (t *triggers) List(ctx context.Context, _ *TriggerListReq) (*TriggerListResp, error) {

	resp, err := t.client.service.Projects.JobTriggers.
		List(state.ParentName(t.client.project)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	out := TriggerListResp{Triggers: make([]*JobTrigger, 0, len(resp.JobTriggers))}
	for _, jt := range resp.JobTriggers {
		out.Triggers = append(out.Triggers, fromAPITrigger(jt))
	}

	return &out, nil
}

const gcsURLPrefix = "gs://"

func toAPITrigger(jt *JobTrigger) *dlpapi.GooglePrivacyDlpV2JobTrigger {
	if jt == nil {
		return nil
	}

	infoTypes := make([]*dlpapi.GooglePrivacyDlpV2InfoType, 0, len(jt.InfoTypes))
	for _, name := range jt.InfoTypes {
		infoTypes = append(infoTypes, &dlpapi.GooglePrivacyDlpV2InfoType{Name: name})
	}

	return &dlpapi.GooglePrivacyDlpV2JobTrigger{
		DisplayName: jt.DisplayName,
		Description: jt.Description,
		Status:      jt.Status,
		InspectJob: &dlpapi.GooglePrivacyDlpV2InspectJobConfig{
			InspectConfig: &dlpapi.GooglePrivacyDlpV2InspectConfig{
				InfoTypes:     infoTypes,
				MinLikelihood: jt.MinLikelihood,
				Limits: &dlpapi.GooglePrivacyDlpV2FindingLimits{
					MaxFindingsPerItem: jt.MaxFindingsPerItem,
				},
			},
			StorageConfig: &dlpapi.GooglePrivacyDlpV2StorageConfig{
				CloudStorageOptions: &dlpapi.GooglePrivacyDlpV2CloudStorageOptions{
					FileSet: &dlpapi.GooglePrivacyDlpV2FileSet{
						Url: fmt.Sprintf("%s%s/*", gcsURLPrefix, jt.BucketName),
					},
				},
				TimespanConfig: &dlpapi.GooglePrivacyDlpV2TimespanConfig{
					EnableAutoPopulationOfTimespanConfig: jt.AutoPopulateTimespan,
				},
			},
		},
		Triggers: []*dlpapi.GooglePrivacyDlpV2Trigger{
			{
				Schedule: &dlpapi.GooglePrivacyDlpV2Schedule{
					RecurrencePeriodDuration: state.RecurrenceDuration(jt.RecurrencePeriodDays),
				},
			},
		},
	}
}

func fromAPITrigger(in *dlpapi.GooglePrivacyDlpV2JobTrigger) *JobTrigger {
	if in == nil {
		return nil
	}

	out := JobTrigger{
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Status:      in.Status,
		CreateTime:  parseTimestamp(in.CreateTime),
		UpdateTime:  parseTimestamp(in.UpdateTime),
		ErrorCount:  len(in.Errors),
	}

	for _, trigger := range in.Triggers {
		if trigger == nil || trigger.Schedule == nil {
			continue
		}
		if period, err := time.ParseDuration(trigger.Schedule.RecurrencePeriodDuration); err == nil {
			out.RecurrencePeriodDays = int(period / (24 * time.Hour))
			break
		}
	}

	job := in.InspectJob
	if job == nil {
		return &out
	}

	if cfg := job.InspectConfig; cfg != nil {
		out.MinLikelihood = cfg.MinLikelihood
		for _, infoType := range cfg.InfoTypes {
			if infoType != nil {
				out.InfoTypes = append(out.InfoTypes, infoType.Name)
			}
		}
		if cfg.Limits != nil {
			out.MaxFindingsPerItem = cfg.Limits.MaxFindingsPerItem
		}
	}

	if storage := job.StorageConfig; storage != nil {
		if storage.TimespanConfig != nil {
			out.AutoPopulateTimespan = storage.TimespanConfig.EnableAutoPopulationOfTimespanConfig
		}
		if opts := storage.CloudStorageOptions; opts != nil && opts.FileSet != nil {
			out.BucketName = bucketFromURL(opts.FileSet.Url)
		}
	}

	return &out
}

// bucketFromURL extracts the bucket from a gs://bucket/path URL.
func bucketFromURL(url string) string {
	bucket, _, _ := strings.Cut(strings.TrimPrefix(url, gcsURLPrefix), "/")
	return bucket
}

// parseTimestamp returns the zero time for timestamps that are missing or
// malformed.
func parseTimestamp(ts string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}
