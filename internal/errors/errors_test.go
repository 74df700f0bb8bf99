package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeUnknownPreset, "unknown preset %q", "4x4")
	if got, want := err.Error(), `UNKNOWN_PRESET: unknown preset "4x4"`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("parsing time")
	wrapped := Wrap(ErrCodeInvalidDate, cause, "start date %q", "2023-13-01")
	if got, want := wrapped.Error(), `INVALID_DATE: start date "2023-13-01": parsing time`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("expected wrapped error to unwrap to its cause")
	}
}

func TestIsFollowsWrapAndJoin(t *testing.T) {
	base := New(ErrCodeOutOfRange, "cell (4, 1) outside picker")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{name: "direct", err: base, code: ErrCodeOutOfRange, want: true},
		{name: "other code", err: base, code: ErrCodeInvalidDate, want: false},
		{name: "fmt wrapped", err: fmt.Errorf("hover: %w", base), code: ErrCodeOutOfRange, want: true},
		{
			name: "joined",
			err:  errors.Join(errors.New("plain"), New(ErrCodeInvalidDate, "end date")),
			code: ErrCodeInvalidDate,
			want: true,
		},
		{name: "plain", err: errors.New("plain"), code: ErrCodeOutOfRange, want: false},
		{name: "nil", err: nil, code: ErrCodeOutOfRange, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Fatalf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCodeAndMessage(t *testing.T) {
	err := fmt.Errorf("config: %w", New(ErrCodeInvalidConfig, "default_layout %q", "nope"))
	if got := GetCode(err); got != ErrCodeInvalidConfig {
		t.Fatalf("GetCode = %q, want %q", got, ErrCodeInvalidConfig)
	}
	if got, want := Message(err), `default_layout "nope"`; got != want {
		t.Fatalf("Message = %q, want %q", got, want)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Fatalf("expected empty code for plain error, got %q", got)
	}
	if got := Message(errors.New("plain")); got != "plain" {
		t.Fatalf("Message(plain) = %q", got)
	}
}
