package types

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestParseInstanceRefs(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		want    []InstanceRef
		wantErr error
	}{
		{
			name: "two instances",
			list: "vm1:zone1,vm2:zone2",
			want: []InstanceRef{
				{Instance: "vm1", Zone: "zone1"},
				{Instance: "vm2", Zone: "zone2"},
			},
		},
		{
			name: "whitespace and blank entries are ignored",
			list: " vm1 : us-central1-a , ,vm2:europe-west1-b,",
			want: []InstanceRef{
				{Instance: "vm1", Zone: "us-central1-a"},
				{Instance: "vm2", Zone: "europe-west1-b"},
			},
		},
		{
			name: "duplicates are kept in order",
			list: "vm1:zone1,vm1:zone1",
			want: []InstanceRef{
				{Instance: "vm1", Zone: "zone1"},
				{Instance: "vm1", Zone: "zone1"},
			},
		},
		{
			name:    "empty list",
			list:    "",
			wantErr: ErrNoInstances,
		},
		{
			name:    "only separators",
			list:    " , ,",
			wantErr: ErrNoInstances,
		},
		{
			name:    "missing colon fails the whole list",
			list:    "vm1:zone1,vm2-zone2",
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "more than one colon",
			list:    "vm1:zone1:extra",
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "empty instance",
			list:    " :zone1",
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "empty zone",
			list:    "vm1: ",
			wantErr: ErrInvalidEntry,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstanceRefs(tt.list)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseInstanceRefs() error = %v, wantErr %v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("ParseInstanceRefs() = %v, want nil on error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInstanceRefs() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInstanceRefs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOperation_String(t *testing.T) {
	op := &Operation{Provider: CloudProviderGCP, Name: "operation-1", Status: "RUNNING", Zone: "zone1"}
	want := "{provider=gcp name=operation-1 status=RUNNING zone=zone1}"
	if got := op.String(); got != want {
		t.Errorf("Operation.String() = %v, want %v", got, want)
	}
	var nilOp *Operation
	if got := nilOp.String(); got != "<nil>" {
		t.Errorf("Operation.String() = %v, want <nil>", got)
	}
}
