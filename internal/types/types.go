package types

import (
	"fmt"
	"strings"
)

type CloudProvider string

const (
	CloudProviderGCP CloudProvider = "gcp"
	CloudProviderAWS CloudProvider = "aws"
	CloudProviderOCI CloudProvider = "oci"
)

// Operation is the outcome of a single start or stop call as reported by the cloud provider.
type Operation struct {
	Provider CloudProvider
	ID       string
	Name     string
	Kind     string
	Status   string
	Target   string
	Zone     string
}

// Stringer interface: non-empty fields with name and value
func (o *Operation) String() string {
	if o == nil {
		return "<nil>"
	}
	fields := []struct{ name, value string }{
		{"provider", string(o.Provider)},
		{"id", o.ID},
		{"name", o.Name},
		{"kind", o.Kind},
		{"status", o.Status},
		{"target", o.Target},
		{"zone", o.Zone},
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", f.name, f.value))
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}
