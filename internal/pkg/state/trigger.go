package state

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	dlpapi "google.golang.org/api/dlp/v2"
)

const (
	StatusHealthy   = "HEALTHY"
	StatusPaused    = "PAUSED"
	StatusCancelled = "CANCELLED"
)

const (
	LikelihoodUnspecified  = "LIKELIHOOD_UNSPECIFIED"
	LikelihoodVeryUnlikely = "VERY_UNLIKELY"
	LikelihoodUnlikely     = "UNLIKELY"
	LikelihoodPossible     = "POSSIBLE"
	LikelihoodLikely       = "LIKELY"
	LikelihoodVeryLikely   = "VERY_LIKELY"
)

const (
	MinRecurrencePeriod = 24 * time.Hour
	MaxRecurrencePeriod = 60 * 24 * time.Hour
)

var (
	triggerIDRegexp    = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,100}$`)
	infoTypeNameRegexp = regexp.MustCompile(`^[A-Z0-9_]+$`)
)

var likelihoods = map[string]struct{}{
	LikelihoodUnspecified:  {},
	LikelihoodVeryUnlikely: {},
	LikelihoodUnlikely:     {},
	LikelihoodPossible:     {},
	LikelihoodLikely:       {},
	LikelihoodVeryLikely:   {},
}

// ParentName returns the resource name under which a project's job triggers
// live.
func ParentName(project string) string { return "projects/" + project }

// TriggerName returns the fully-qualified name of a job trigger.
func TriggerName(project, id string) string {
	return ParentName(project) + "/jobTriggers/" + id
}

// ParseTriggerName splits a fully-qualified job trigger name into its project
// and trigger ID.
func ParseTriggerName(name string) (string, string, error) {
	parts := strings.Split(name, "/")
	if len(parts) != 4 || parts[0] != "projects" || parts[2] != "jobTriggers" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid job trigger name %q, expected projects/<project>/jobTriggers/<trigger>", name)
	}
	if err := ValidateTriggerID(parts[3]); err != nil {
		return "", "", err
	}
	return parts[1], parts[3], nil
}

func ValidateTriggerID(id string) error {
	if !triggerIDRegexp.MatchString(id) {
		return fmt.Errorf("invalid trigger ID %q, must match pattern %s", id, triggerIDRegexp.String())
	}
	return nil
}

// RecurrenceDuration renders a period in days as the JSON encoding of a
// protobuf Duration.
func RecurrenceDuration(days int) string {
	return fmt.Sprintf("%ds", days*24*60*60)
}

// ValidateJobTrigger performs the static validation of a job trigger that is
// about to be created. It does not check the trigger name, which is assigned
// by the service.
func ValidateJobTrigger(t *dlpapi.GooglePrivacyDlpV2JobTrigger) error {

	if t == nil {
		return errors.New("job trigger cannot be empty")
	}

	var errs []error

	switch t.Status {
	case StatusHealthy, StatusPaused:
	default:
		errs = append(errs, fmt.Errorf("invalid status %q, must be one of %s or %s", t.Status, StatusHealthy, StatusPaused))
	}

	if t.InspectJob == nil {
		errs = append(errs, errors.New("inspect job cannot be empty"))
	} else {
		errs = append(errs, validateInspectJob(t.InspectJob)...)
	}

	if len(t.Triggers) == 0 {
		errs = append(errs, errors.New("at least one trigger schedule must be provided"))
	}

	for i, trigger := range t.Triggers {
		if trigger == nil || trigger.Schedule == nil {
			errs = append(errs, fmt.Errorf("trigger %d: schedule cannot be empty", i))
			continue
		}
		period, err := time.ParseDuration(trigger.Schedule.RecurrencePeriodDuration)
		if err != nil {
			errs = append(errs, fmt.Errorf("trigger %d: invalid recurrence period: %w", i, err))
			continue
		}
		if period < MinRecurrencePeriod || period > MaxRecurrencePeriod {
			errs = append(errs, fmt.Errorf("trigger %d: recurrence period must be between 1 day and 60 days", i))
		}
	}

	return errors.Join(errs...)
}

func validateInspectJob(job *dlpapi.GooglePrivacyDlpV2InspectJobConfig) []error {

	var errs []error

	if job.StorageConfig == nil || job.StorageConfig.CloudStorageOptions == nil ||
		job.StorageConfig.CloudStorageOptions.FileSet == nil ||
		job.StorageConfig.CloudStorageOptions.FileSet.Url == "" {
		errs = append(errs, errors.New("storage config must name a cloud storage file set"))
	} else if url := job.StorageConfig.CloudStorageOptions.FileSet.Url; !strings.HasPrefix(url, "gs://") || len(url) <= len("gs://") {
		errs = append(errs, fmt.Errorf("invalid cloud storage url %q", url))
	}

	if cfg := job.InspectConfig; cfg != nil {
		if _, ok := likelihoods[cfg.MinLikelihood]; cfg.MinLikelihood != "" && !ok {
			errs = append(errs, fmt.Errorf("invalid min likelihood %q", cfg.MinLikelihood))
		}
		if cfg.Limits != nil && cfg.Limits.MaxFindingsPerItem < 0 {
			errs = append(errs, errors.New("max findings per item cannot be negative"))
		}
		for _, infoType := range cfg.InfoTypes {
			if infoType == nil || !infoTypeNameRegexp.MatchString(infoType.Name) {
				name := ""
				if infoType != nil {
					name = infoType.Name
				}
				errs = append(errs, fmt.Errorf("invalid info type name %q", name))
			}
		}
	}

	return errs
}
