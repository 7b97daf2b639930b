package config

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Options maps an enumerated value to its display label, in declaration
// order. The same map feeds both the elicitation enum and the tool
// parameter surface.
type Options = orderedmap.OrderedMap[string, string]

// Roles returns the user role options.
func Roles() *Options {
	return options(
		"developer", "Software Developer",
		"designer", "UI/UX Designer",
		"manager", "Project Manager",
	)
}

// JobTypes returns the employment type options.
func JobTypes() *Options {
	return options(
		"fulltime", "Full-time",
		"parttime", "Part-time",
		"contract", "Contract",
	)
}

// Priorities returns the hiring priority options.
func Priorities() *Options {
	return options(
		"low", "Low Priority",
		"medium", "Medium Priority",
		"high", "High Priority",
	)
}

// Keys returns the option keys in order.
func Keys(o *Options) []string {
	keys := make([]string, 0, o.Len())
	for pair := o.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Labels returns the option labels, parallel to Keys.
func Labels(o *Options) []string {
	labels := make([]string, 0, o.Len())
	for pair := o.Oldest(); pair != nil; pair = pair.Next() {
		labels = append(labels, pair.Value)
	}
	return labels
}

// options builds a fresh map from alternating key/label pairs so
// callers can never mutate a shared instance.
func options(kv ...string) *Options {
	o := orderedmap.New[string, string]()
	for i := 0; i+1 < len(kv); i += 2 {
		o.Set(kv[i], kv[i+1])
	}
	return o
}
