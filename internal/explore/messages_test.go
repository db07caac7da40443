package explore

import (
	"errors"
	"testing"

	"github.com/harithais/microbiome-explorer-app/internal/dataset"
)

func TestMapError_KnownPatterns(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"schema", &dataset.SchemaError{File: "upload.csv", Missing: []string{"Microbe"}}, "SCH001"},
		{"no match", ErrNoMatch, "MATCH001"},
		{"no file", ErrNoFile, "FILE001"},
		{"empty file", dataset.ErrEmptyFile, "FILE002"},
		{"bad csv", errors.New("invalid csv: parse error on line 3"), "FILE003"},
		{"bad xlsx", errors.New("invalid xlsx: zip: not a valid zip file"), "FILE004"},
		{"too large", errors.New("http: request body too large"), "FILE005"},
		{"session gone", ErrSessionNotFound, "SES001"},
		{"store full", ErrTooManySessions, "SES002"},
		{"unknown", errors.New("something odd"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := MapError(tt.err)
			if msg.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, msg.Code, tt.wantCode)
			}
			if msg.Message == "" {
				t.Error("user message is empty")
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	got := FormatUserError(ErrNoMatch)
	if got == "" {
		t.Fatal("FormatUserError returned empty string")
	}
}
