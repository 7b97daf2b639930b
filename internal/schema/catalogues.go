package schema

import (
	"github.com/HendryAvila/elicitd/internal/config"
	"github.com/HendryAvila/elicitd/internal/records"
)

// Catalogues are built once and only read afterwards.
var (
	users  = buildUsers()
	jobs   = buildJobs()
	search = buildSearch()
)

// Users returns the user profile catalogue.
func Users() *Catalogue { return users }

// Jobs returns the job posting catalogue.
func Jobs() *Catalogue { return jobs }

// Search returns the catalogue for search_users.
func Search() *Catalogue { return search }

// ForKind returns the catalogue for a record kind, or nil.
func ForKind(kind records.Kind) *Catalogue {
	switch kind {
	case records.KindUser:
		return users
	case records.KindJob:
		return jobs
	default:
		return nil
	}
}

func enumField(title, description string, opts *config.Options) Field {
	return Field{
		Type:        TypeString,
		Title:       title,
		Description: description,
		Enum:        config.Keys(opts),
		EnumNames:   config.Labels(opts),
	}
}

func buildUsers() *Catalogue {
	return newCatalogue(string(records.KindUser)).
		add("name", Field{
			Type:        TypeString,
			Title:       "Full Name",
			Description: "Your full name",
			MinLength:   intPtr(2),
			MaxLength:   intPtr(100),
		}).
		add("email", Field{
			Type:        TypeString,
			Title:       "Email Address",
			Description: "Your email address (e.g., john.doe@example.com)",
			MinLength:   intPtr(5),
			MaxLength:   intPtr(100),
		}).
		add("age", Field{
			Type:        TypeNumber,
			Title:       "Age",
			Description: "Your age in years",
			Minimum:     floatPtr(13),
			Maximum:     floatPtr(120),
		}).
		add("role", enumField("Role", "Your role in the organization", config.Roles()))
}

func buildJobs() *Catalogue {
	return newCatalogue(string(records.KindJob)).
		add("jobTitle", Field{
			Type:        TypeString,
			Title:       "Job Title",
			Description: "The job title or position name",
			MinLength:   intPtr(2),
			MaxLength:   intPtr(100),
		}).
		add("description", Field{
			Type:        TypeString,
			Title:       "Job Description",
			Description: "Detailed description of the job responsibilities",
			MinLength:   intPtr(10),
			MaxLength:   intPtr(1000),
		}).
		add("company_email", Field{
			Type:        TypeString,
			Title:       "Company Email",
			Description: "Contact email for the company",
			Format:      "email",
		}).
		add("company_website", Field{
			Type:        TypeString,
			Title:       "Company Website",
			Description: "Company website URL",
			Format:      "uri",
		}).
		add("salary", Field{
			Type:        TypeNumber,
			Title:       "Salary",
			Description: "Annual salary in USD",
			Minimum:     floatPtr(0),
			Maximum:     floatPtr(1000000),
		}).
		add("experience_years", Field{
			Type:        TypeInteger,
			Title:       "Required Experience",
			Description: "Minimum years of experience required",
			Minimum:     floatPtr(0),
			Maximum:     floatPtr(50),
			Default:     3,
		}).
		add("is_remote", Field{
			Type:        TypeBoolean,
			Title:       "Remote Work",
			Description: "Is this a remote position?",
			Default:     false,
		}).
		add("is_active", Field{
			Type:        TypeBoolean,
			Title:       "Active Posting",
			Description: "Is this job posting currently active?",
			Default:     true,
		}).
		add("start_date", Field{
			Type:        TypeString,
			Title:       "Start Date",
			Description: "Expected start date (YYYY-MM-DD)",
			Format:      "date",
		}).
		add("application_deadline", Field{
			Type:        TypeString,
			Title:       "Application Deadline",
			Description: "Application deadline date and time",
			Format:      "date-time",
		}).
		add("job_type", enumField("Job Type", "Type of employment", config.JobTypes())).
		add("priority", enumField("Priority Level", "Hiring priority for this position", config.Priorities()))
}

func buildSearch() *Catalogue {
	return newCatalogue("search").
		add("query", Field{
			Type:        TypeString,
			Title:       "Search Query",
			Description: "Text to look for in user names, emails, and roles",
			MinLength:   intPtr(1),
			MaxLength:   intPtr(100),
		})
}
