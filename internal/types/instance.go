package types

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	entrySeparator = ","
	pairSeparator  = ":"
)

// InstanceRef identifies a single virtual machine by name and zone.
type InstanceRef struct {
	Instance string
	Zone     string
}

func (r InstanceRef) String() string {
	return fmt.Sprintf("%s%s%s", r.Instance, pairSeparator, r.Zone)
}

// ParseInstanceRefs parses a comma separated list of instance:zone pairs, e.g. "vm1:zone1,vm2:zone2".
// Blank entries are skipped. A single malformed entry fails the whole list.
func ParseInstanceRefs(list string) ([]InstanceRef, error) {
	var refs []InstanceRef
	for _, entry := range strings.Split(list, entrySeparator) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		ref, err := parseInstanceRef(entry)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	if len(refs) == 0 {
		return nil, ErrNoInstances
	}
	return refs, nil
}

func parseInstanceRef(entry string) (InstanceRef, error) {
	split := strings.Split(entry, pairSeparator)
	if len(split) != 2 { //nolint:gomnd
		return InstanceRef{}, errors.Wrapf(ErrInvalidEntry, "'%s', expected 'instance:zone'", entry)
	}
	instance, zone := strings.TrimSpace(split[0]), strings.TrimSpace(split[1])
	if instance == "" || zone == "" {
		return InstanceRef{}, errors.Wrapf(ErrInvalidEntry, "'%s', expected 'instance:zone'", entry)
	}
	return InstanceRef{Instance: instance, Zone: zone}, nil
}
