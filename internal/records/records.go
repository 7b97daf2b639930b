// Package records stores the user and job records created by the tools.
//
// A Store is an ordered, append-only sequence of records per kind.
// Identities are assigned by the caller from NextID and never reused.
// There is no update or delete.
package records

import (
	"context"
	"fmt"
)

// Kind is the category of a record.
type Kind string

const (
	KindUser Kind = "user"
	KindJob  Kind = "job"
)

// Record is anything a Store can hold.
type Record interface {
	RecordKind() Kind
	RecordID() int
}

// User is a user profile.
type User struct {
	ID    int      `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Email string   `json:"email" yaml:"email"`
	Age   *float64 `json:"age" yaml:"age"`
	Role  string   `json:"role" yaml:"role"`
}

func (u User) RecordKind() Kind { return KindUser }
func (u User) RecordID() int    { return u.ID }

// Job is a job posting. CreatedAt is an RFC 3339 UTC timestamp.
type Job struct {
	ID                  int      `json:"id" yaml:"id"`
	Title               string   `json:"title" yaml:"title"`
	Description         string   `json:"description" yaml:"description"`
	CompanyEmail        string   `json:"company_email,omitempty" yaml:"company_email,omitempty"`
	CompanyWebsite      string   `json:"company_website,omitempty" yaml:"company_website,omitempty"`
	Salary              *float64 `json:"salary,omitempty" yaml:"salary,omitempty"`
	ExperienceYears     *int     `json:"experience_years,omitempty" yaml:"experience_years,omitempty"`
	IsRemote            bool     `json:"is_remote" yaml:"is_remote"`
	IsActive            bool     `json:"is_active" yaml:"is_active"`
	StartDate           string   `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	ApplicationDeadline string   `json:"application_deadline,omitempty" yaml:"application_deadline,omitempty"`
	JobType             string   `json:"job_type" yaml:"job_type"`
	Priority            string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	CreatedAt           string   `json:"created_at" yaml:"created_at"`
}

func (j Job) RecordKind() Kind { return KindJob }
func (j Job) RecordID() int    { return j.ID }

// Store defines the persistence interface for records.
// Abstracted so tools and tests can swap backends.
type Store interface {
	// NextID returns max(existing identity)+1 for kind, or 1 when empty.
	NextID(ctx context.Context, kind Kind) (int, error)
	// Append adds rec to the end of its kind's sequence.
	Append(ctx context.Context, rec Record) error
	// All returns every record of kind in insertion order.
	All(ctx context.Context, kind Kind) ([]Record, error)
	Close() error
}

// Users returns all stored users.
func Users(ctx context.Context, s Store) ([]User, error) {
	return allOf[User](ctx, s, KindUser)
}

// Jobs returns all stored jobs.
func Jobs(ctx context.Context, s Store) ([]Job, error) {
	return allOf[Job](ctx, s, KindJob)
}

func allOf[T Record](ctx context.Context, s Store, kind Kind) ([]T, error) {
	recs, err := s.All(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		v, ok := r.(T)
		if !ok {
			return nil, fmt.Errorf("records: unexpected %T in %s store", r, kind)
		}
		out = append(out, v)
	}
	return out, nil
}

// DemoUser is the sample profile added by Seed.
func DemoUser() User {
	age := 30.0
	return User{ID: 1, Name: "John Doe", Email: "john@example.com", Age: &age, Role: "developer"}
}

// Seed appends the demo user when the user store is empty.
// It reports whether a record was added.
func Seed(ctx context.Context, s Store) (bool, error) {
	users, err := s.All(ctx, KindUser)
	if err != nil {
		return false, fmt.Errorf("records: seed: %w", err)
	}
	if len(users) > 0 {
		return false, nil
	}
	if err := s.Append(ctx, DemoUser()); err != nil {
		return false, fmt.Errorf("records: seed: %w", err)
	}
	return true, nil
}
