package run

import (
	"errors"
	"testing"
)

func TestOutput_Empty(t *testing.T) {
	tests := []struct {
		name   string
		output *Output
		want   bool
	}{
		{
			name:   "both empty",
			output: &Output{},
			want:   true,
		},
		{
			name:   "stdout only",
			output: &Output{Stdout: []byte("data")},
			want:   false,
		},
		{
			name:   "stderr only",
			output: &Output{Stderr: []byte("oops")},
			want:   false,
		},
		{
			name:   "both populated",
			output: &Output{Stdout: []byte("data"), Stderr: []byte("oops")},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.output.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("exit status 253")
	err := &ExitError{Name: "ios-deploy", Output: &Output{}, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("ExitError does not unwrap to its cause")
	}

	var exitErr *ExitError
	if !errors.As(error(err), &exitErr) {
		t.Fatal("errors.As failed to match *ExitError")
	}
	if exitErr.Output == nil {
		t.Error("ExitError lost its captured output")
	}
}

func TestFlattenEnv_SortedAndComplete(t *testing.T) {
	env := map[string]string{
		"PATH":   "/usr/bin",
		"HOME":   "/home/tester",
		"TMPDIR": "/tmp",
	}

	flat := flattenEnv(env)

	want := []string{"HOME=/home/tester", "PATH=/usr/bin", "TMPDIR=/tmp"}
	if len(flat) != len(want) {
		t.Fatalf("flattenEnv() returned %d entries, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("flattenEnv()[%d] = %q, want %q", i, flat[i], want[i])
		}
	}
}

func TestFlattenEnv_EmptyMap(t *testing.T) {
	if flat := flattenEnv(nil); len(flat) != 0 {
		t.Errorf("flattenEnv(nil) = %v, want empty", flat)
	}
}
