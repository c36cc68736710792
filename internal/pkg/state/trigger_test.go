package state

import (
	"testing"

	"github.com/stretchr/testify/require"
	dlpapi "google.golang.org/api/dlp/v2"
)

func validJobTrigger() *dlpapi.GooglePrivacyDlpV2JobTrigger {
	return &dlpapi.GooglePrivacyDlpV2JobTrigger{
		DisplayName: "nightly",
		Status:      StatusHealthy,
		InspectJob: &dlpapi.GooglePrivacyDlpV2InspectJobConfig{
			InspectConfig: &dlpapi.GooglePrivacyDlpV2InspectConfig{
				InfoTypes:     []*dlpapi.GooglePrivacyDlpV2InfoType{{Name: "US_CENSUS_NAME"}},
				MinLikelihood: LikelihoodVeryLikely,
				Limits:        &dlpapi.GooglePrivacyDlpV2FindingLimits{MaxFindingsPerItem: 5},
			},
			StorageConfig: &dlpapi.GooglePrivacyDlpV2StorageConfig{
				CloudStorageOptions: &dlpapi.GooglePrivacyDlpV2CloudStorageOptions{
					FileSet: &dlpapi.GooglePrivacyDlpV2FileSet{Url: "gs://my-bucket/*"},
				},
			},
		},
		Triggers: []*dlpapi.GooglePrivacyDlpV2Trigger{
			{Schedule: &dlpapi.GooglePrivacyDlpV2Schedule{RecurrencePeriodDuration: RecurrenceDuration(1)}},
		},
	}
}

func TestValidateTriggerID(t *testing.T) {
	testCases := []struct {
		name        string
		id          string
		expectError bool
	}{
		{name: "simple", id: "my-trigger", expectError: false},
		{name: "underscore and digits", id: "trigger_01", expectError: false},
		{name: "symbols", id: "@@@@@", expectError: true},
		{name: "slash", id: "a/b", expectError: true},
		{name: "empty", id: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTriggerID(tc.id)
			if tc.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseTriggerName(t *testing.T) {
	project, id, err := ParseTriggerName("projects/my-project/jobTriggers/my-trigger")
	require.NoError(t, err)
	require.Equal(t, "my-project", project)
	require.Equal(t, "my-trigger", id)
	require.Equal(t, "projects/my-project/jobTriggers/my-trigger", TriggerName(project, id))

	for _, name := range []string{
		"bad-trigger-path",
		"projects//jobTriggers/x",
		"projects/p/inspectTemplates/x",
		"projects/p/jobTriggers/@@@@@",
		"projects/p/jobTriggers/x/extra",
	} {
		_, _, err := ParseTriggerName(name)
		require.Error(t, err, name)
	}
}

func TestRecurrenceDuration(t *testing.T) {
	require.Equal(t, "86400s", RecurrenceDuration(1))
	require.Equal(t, "604800s", RecurrenceDuration(7))
}

func TestValidateJobTrigger(t *testing.T) {
	require.NoError(t, ValidateJobTrigger(validJobTrigger()))
	require.Error(t, ValidateJobTrigger(nil))

	testCases := []struct {
		name   string
		mutate func(*dlpapi.GooglePrivacyDlpV2JobTrigger)
	}{
		{
			name:   "missing status",
			mutate: func(jt *dlpapi.GooglePrivacyDlpV2JobTrigger) { jt.Status = "" },
		},
		{
			name:   "missing inspect job",
			mutate: func(jt *dlpapi.GooglePrivacyDlpV2JobTrigger) { jt.InspectJob = nil },
		},
		{
			name: "missing storage",
			mutate: func(jt *dlpapi.GooglePrivacyDlpV2JobTrigger) {
				jt.InspectJob.StorageConfig = nil
			},
		},
		{
			name: "non gcs url",
			mutate: func(jt *dlpapi.GooglePrivacyDlpV2JobTrigger) {
				jt.InspectJob.StorageConfig.CloudStorageOptions.FileSet.Url = "s3://bucket"
			},
		},
		{
			name: "unknown likelihood",
			mutate: func(jt *dlpapi.GooglePrivacyDlpV2JobTrigger) {
				jt.InspectJob.InspectConfig.MinLikelihood = "MAYBE"
			},
		},
		{
			name: "negative max findings",
			mutate: func(jt *dlpapi.GooglePrivacyDlpV2JobTrigger) {
				jt.InspectJob.InspectConfig.Limits.MaxFindingsPerItem = -1
			},
		},
		{
			name: "lowercase info type",
			mutate: func(jt *dlpapi.GooglePrivacyDlpV2JobTrigger) {
				jt.InspectJob.InspectConfig.InfoTypes[0].Name = "email"
			},
		},
		{
			name:   "no schedule",
			mutate: func(jt *dlpapi.GooglePrivacyDlpV2JobTrigger) { jt.Triggers = nil },
		},
		{
			name: "period too short",
			mutate: func(jt *dlpapi.GooglePrivacyDlpV2JobTrigger) {
				jt.Triggers[0].Schedule.RecurrencePeriodDuration = "3600s"
			},
		},
		{
			name: "period too long",
			mutate: func(jt *dlpapi.GooglePrivacyDlpV2JobTrigger) {
				jt.Triggers[0].Schedule.RecurrencePeriodDuration = RecurrenceDuration(61)
			},
		},
		{
			name: "unparsable period",
			mutate: func(jt *dlpapi.GooglePrivacyDlpV2JobTrigger) {
				jt.Triggers[0].Schedule.RecurrencePeriodDuration = "daily"
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			jt := validJobTrigger()
			tc.mutate(jt)
			require.Error(t, ValidateJobTrigger(jt))
		})
	}
}
