package entity

import (
	"context"
	"fmt"
	"time"

	"github.com/HendryAvila/elicitd/internal/records"
)

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// isoMillis matches the millisecond ISO-8601 form used for created_at.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Factory validates merged inputs and commits new records.
// Validation always happens before anything is appended.
type Factory struct {
	store records.Store
}

// NewFactory creates a Factory backed by store.
func NewFactory(store records.Store) *Factory {
	return &Factory{store: store}
}

// CreateUser validates in and appends a new user with the next identity.
func (f *Factory) CreateUser(ctx context.Context, in Input) (records.User, error) {
	if err := ValidateUser(in); err != nil {
		return records.User{}, err
	}

	id, err := f.store.NextID(ctx, records.KindUser)
	if err != nil {
		return records.User{}, fmt.Errorf("assigning user id: %w", err)
	}

	user := records.User{
		ID:    id,
		Name:  in.String("name"),
		Email: in.String("email"),
		Role:  in.String("role"),
	}
	if age, ok, _ := in.Float("age"); ok {
		user.Age = &age
	}

	if err := f.store.Append(ctx, user); err != nil {
		return records.User{}, fmt.Errorf("storing user: %w", err)
	}
	return user, nil
}

// CreateJob validates in and appends a new job posting. is_remote
// defaults to false and is_active to true when not supplied.
func (f *Factory) CreateJob(ctx context.Context, in Input) (records.Job, error) {
	if err := ValidateJob(in); err != nil {
		return records.Job{}, err
	}

	id, err := f.store.NextID(ctx, records.KindJob)
	if err != nil {
		return records.Job{}, fmt.Errorf("assigning job id: %w", err)
	}

	job := records.Job{
		ID:                  id,
		Title:               in.String("jobTitle"),
		Description:         in.String("description"),
		CompanyEmail:        in.String("company_email"),
		CompanyWebsite:      in.String("company_website"),
		IsRemote:            false,
		IsActive:            true,
		StartDate:           in.String("start_date"),
		ApplicationDeadline: in.String("application_deadline"),
		JobType:             in.String("job_type"),
		Priority:            in.String("priority"),
		CreatedAt:           timeNow().UTC().Format(isoMillis),
	}
	if salary, ok, _ := in.Float("salary"); ok {
		job.Salary = &salary
	}
	if years, ok, _ := in.Int("experience_years"); ok {
		job.ExperienceYears = &years
	}
	if remote, ok, _ := in.Bool("is_remote"); ok {
		job.IsRemote = remote
	}
	if active, ok, _ := in.Bool("is_active"); ok {
		job.IsActive = active
	}

	if err := f.store.Append(ctx, job); err != nil {
		return records.Job{}, fmt.Errorf("storing job: %w", err)
	}
	return job, nil
}
