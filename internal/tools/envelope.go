package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/HendryAvila/elicitd/internal/records"
)

// success wraps text in a single-block result.
func success(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}

// failure wraps a message in an error result prefixed with "Error: ".
func failure(format string, args ...any) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + fmt.Sprintf(format, args...))
}

// prettyJSON renders v with two-space indentation.
func prettyJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling result: %w", err)
	}
	return string(data), nil
}

func renderYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshaling result: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// renderUsers renders users in the requested format.
func renderUsers(format string, users []records.User) (string, error) {
	if users == nil {
		users = []records.User{}
	}
	switch format {
	case FormatTable:
		tw := table.NewWriter()
		tw.AppendHeader(table.Row{"ID", "Name", "Email", "Age", "Role"})
		for _, u := range users {
			age := ""
			if u.Age != nil {
				age = humanize.Ftoa(*u.Age)
			}
			tw.AppendRow(table.Row{u.ID, u.Name, u.Email, age, u.Role})
		}
		return tw.Render(), nil
	case FormatYAML:
		return renderYAML(users)
	default:
		return prettyJSON(users)
	}
}

// renderJobs renders jobs in the requested format.
func renderJobs(format string, jobs []records.Job) (string, error) {
	if jobs == nil {
		jobs = []records.Job{}
	}
	switch format {
	case FormatTable:
		tw := table.NewWriter()
		tw.AppendHeader(table.Row{"ID", "Title", "Type", "Salary", "Experience", "Remote", "Active", "Priority", "Created"})
		for _, j := range jobs {
			salary := ""
			if j.Salary != nil {
				salary = "$" + humanize.Commaf(*j.Salary)
			}
			years := ""
			if j.ExperienceYears != nil {
				years = fmt.Sprintf("%d yrs", *j.ExperienceYears)
			}
			tw.AppendRow(table.Row{j.ID, j.Title, j.JobType, salary, years, j.IsRemote, j.IsActive, j.Priority, j.CreatedAt})
		}
		return tw.Render(), nil
	case FormatYAML:
		return renderYAML(jobs)
	default:
		return prettyJSON(jobs)
	}
}
