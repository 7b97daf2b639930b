package entity

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// ValidationError collects every rule a merged input breaks.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, " ")
}

type problems []string

func (p *problems) add(msg string) { *p = append(*p, msg) }

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return &ValidationError{Problems: p}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidURI accepts any absolute URI: a scheme plus a host, opaque part or path.
func ValidURI(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != "" || u.Path != ""
}

var (
	dateLayouts     = []string{time.DateOnly, time.RFC3339}
	dateTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", time.DateOnly}
)

// ValidDate accepts a calendar date, optionally with a full timestamp.
func ValidDate(s string) bool { return parses(s, dateLayouts) }

// ValidDateTime accepts an RFC 3339 timestamp, a local timestamp, or a date.
func ValidDateTime(s string) bool { return parses(s, dateTimeLayouts) }

func parses(s string, layouts []string) bool {
	for _, layout := range layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// ValidateUser checks a merged user input.
func ValidateUser(in Input) error {
	var p problems
	if len(apply(userRequired, in)) > 0 {
		p.add("Missing required fields. name, email, age, and role are required.")
	}
	if email := in.String("email"); email != "" && !ValidEmail(email) {
		p.add("Invalid email format. Please provide a valid email address.")
	}
	if _, _, err := in.Float("age"); err != nil {
		p.add("Invalid age. Please provide a number.")
	}
	return p.err()
}

// ValidateJob checks a merged job input and reports every problem at once.
func ValidateJob(in Input) error {
	var p problems
	if falsy(in, "jobTitle") || falsy(in, "description") || falsy(in, "job_type") {
		p.add("Missing required fields. JobTitle, description, and job_type are required.")
	}
	if falsy(in, "salary") || falsy(in, "experience_years") {
		p.add("Missing required fields. salary and experience_years are required.")
	}
	if v := in.String("company_email"); v != "" && !ValidEmail(v) {
		p.add("Invalid email format for company_email.")
	}
	if v := in.String("company_website"); v != "" && !ValidURI(v) {
		p.add("Invalid URI format for company_website.")
	}
	if v := in.String("start_date"); v != "" && !ValidDate(v) {
		p.add("Invalid date format for start_date. Please use YYYY-MM-DD format.")
	}
	if v := in.String("application_deadline"); v != "" && !ValidDateTime(v) {
		p.add("Invalid date-time format for application_deadline.")
	}
	if _, _, err := in.Float("salary"); err != nil {
		p.add("Invalid number for salary.")
	}
	if _, _, err := in.Int("experience_years"); err != nil {
		p.add("Invalid integer for experience_years.")
	}
	if _, _, err := in.Bool("is_remote"); err != nil {
		p.add("Invalid boolean for is_remote.")
	}
	if _, _, err := in.Bool("is_active"); err != nil {
		p.add("Invalid boolean for is_active.")
	}
	return p.err()
}
