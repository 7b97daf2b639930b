package entity

import "github.com/HendryAvila/elicitd/internal/records"

// Missing lists the fields an input lacks, in catalogue order.
type Missing struct {
	Required []string
	Optional []string
}

// All returns required then optional names.
func (m Missing) All() []string {
	all := make([]string, 0, len(m.Required)+len(m.Optional))
	all = append(all, m.Required...)
	return append(all, m.Optional...)
}

// Empty reports whether nothing is missing, required or optional.
func (m Missing) Empty() bool {
	return len(m.Required) == 0 && len(m.Optional) == 0
}

type presenceRule struct {
	field   string
	missing func(Input, string) bool
}

// User age is tested for absence only, so age 0 is a real value.
var userRequired = []presenceRule{
	{"name", falsy},
	{"email", falsy},
	{"age", absent},
	{"role", falsy},
}

// Job required fields use the loose test, so salary 0 counts as
// missing. Optional fields use the blank test, so false is a value.
var (
	jobRequired = []presenceRule{
		{"jobTitle", falsy},
		{"description", falsy},
		{"job_type", falsy},
		{"salary", falsy},
		{"experience_years", falsy},
	}
	jobOptional = []presenceRule{
		{"company_email", blank},
		{"company_website", blank},
		{"is_remote", blank},
		{"is_active", blank},
		{"start_date", blank},
		{"application_deadline", blank},
		{"priority", blank},
	}
)

// Resolve reports which fields of kind are missing from in.
// Unknown kinds have no missing fields.
func Resolve(kind records.Kind, in Input) Missing {
	switch kind {
	case records.KindUser:
		return Missing{Required: apply(userRequired, in)}
	case records.KindJob:
		return Missing{
			Required: apply(jobRequired, in),
			Optional: apply(jobOptional, in),
		}
	default:
		return Missing{}
	}
}

func apply(rules []presenceRule, in Input) []string {
	var out []string
	for _, r := range rules {
		if r.missing(in, r.field) {
			out = append(out, r.field)
		}
	}
	return out
}
