// Package schema holds the field catalogues that describe every
// elicitable input.
//
// A catalogue is the single source for two things: the sub-schema sent
// with an elicitation request, and the parameter surface a tool declares
// to the host. Building both from one place keeps enums in sync.
package schema

import (
	"github.com/mark3labs/mcp-go/mcp"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// JSON schema primitive types used by catalogue fields.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)

// Field describes one elicitable input. It marshals to the restricted
// JSON schema subset that elicitation clients understand.
type Field struct {
	Type        string   `json:"type"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	MinLength   *int     `json:"minLength,omitempty"`
	MaxLength   *int     `json:"maxLength,omitempty"`
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
	Format      string   `json:"format,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	EnumNames   []string `json:"enumNames,omitempty"`
	Default     any      `json:"default,omitempty"`
}

// Object is a flat object schema: the requestedSchema of an elicitation.
type Object struct {
	Type       string                                `json:"type"`
	Properties *orderedmap.OrderedMap[string, Field] `json:"properties"`
	Required   []string                              `json:"required"`
}

// Names returns the property names in order.
func (o Object) Names() []string {
	names := make([]string, 0, o.Properties.Len())
	for pair := o.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Catalogue is an ordered, immutable set of fields for one entity kind.
type Catalogue struct {
	name   string
	fields *orderedmap.OrderedMap[string, Field]
}

func newCatalogue(name string) *Catalogue {
	return &Catalogue{name: name, fields: orderedmap.New[string, Field]()}
}

func (c *Catalogue) add(name string, f Field) *Catalogue {
	c.fields.Set(name, f)
	return c
}

// Name identifies the catalogue (user, job, search).
func (c *Catalogue) Name() string { return c.name }

// Describe looks up a field. A miss means the field is not elicitable.
func (c *Catalogue) Describe(name string) (Field, bool) {
	return c.fields.Get(name)
}

// Names returns the field names in declaration order.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, c.fields.Len())
	for pair := c.fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// SubSchema builds the requested schema for one exchange. Properties
// hold every known field from required then optional; only the known
// required names land in Required. Unknown names are skipped.
func (c *Catalogue) SubSchema(required, optional []string) Object {
	obj := Object{
		Type:       "object",
		Properties: orderedmap.New[string, Field](),
		Required:   []string{},
	}
	for _, name := range required {
		if f, ok := c.fields.Get(name); ok {
			obj.Properties.Set(name, f)
			obj.Required = append(obj.Required, name)
		}
	}
	for _, name := range optional {
		if f, ok := c.fields.Get(name); ok {
			obj.Properties.Set(name, f)
		}
	}
	return obj
}

// ToolOptions declares every catalogue field as an optional tool
// parameter. Integers are declared as numbers: JSON has one number type.
func (c *Catalogue) ToolOptions() []mcp.ToolOption {
	opts := make([]mcp.ToolOption, 0, c.fields.Len())
	for pair := c.fields.Oldest(); pair != nil; pair = pair.Next() {
		name, f := pair.Key, pair.Value
		props := []mcp.PropertyOption{mcp.Description(f.Description)}
		switch f.Type {
		case TypeNumber, TypeInteger:
			opts = append(opts, mcp.WithNumber(name, props...))
		case TypeBoolean:
			opts = append(opts, mcp.WithBoolean(name, props...))
		default:
			if len(f.Enum) > 0 {
				props = append(props, mcp.Enum(f.Enum...))
			}
			opts = append(opts, mcp.WithString(name, props...))
		}
	}
	return opts
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
