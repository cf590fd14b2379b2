package types

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    Directive
		wantErr error
	}{
		{
			name:    "start",
			payload: []byte("1"),
			want:    Start,
		},
		{
			name:    "stop",
			payload: []byte("0"),
			want:    Stop,
		},
		{
			name:    "start surrounded by whitespace",
			payload: []byte(" 1\n"),
			want:    Start,
		},
		{
			name:    "nil payload",
			payload: nil,
			wantErr: ErrMissingPayload,
		},
		{
			name:    "whitespace only payload",
			payload: []byte(" \t\n"),
			wantErr: ErrMissingPayload,
		},
		{
			name:    "non integer payload",
			payload: []byte("abc"),
			wantErr: ErrInvalidPayload,
		},
		{
			name:    "integer outside range",
			payload: []byte("2"),
			wantErr: ErrUnknownAction,
		},
		{
			name:    "integer too large for int",
			payload: []byte("99999999999999999999"),
			wantErr: ErrUnknownAction,
		},
		{
			name:    "negative integer too large for int",
			payload: []byte("-99999999999999999999"),
			wantErr: ErrUnknownAction,
		},
		{
			name:    "negative integer",
			payload: []byte("-1"),
			wantErr: ErrUnknownAction,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirective(tt.payload)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseDirective() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirective() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDirective() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAction_doesNotCheckRange(t *testing.T) {
	got, err := ParseAction([]byte("7"))
	if err != nil {
		t.Fatalf("ParseAction() unexpected error = %v", err)
	}
	if got.Valid() {
		t.Errorf("ParseAction() = %v, want invalid directive", got)
	}
}

func TestDirective_String(t *testing.T) {
	tests := []struct {
		d    Directive
		want string
	}{
		{Start, "start"},
		{Stop, "stop"},
		{Directive(5), "unknown(5)"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Directive.String() = %v, want %v", got, tt.want)
		}
	}
}
