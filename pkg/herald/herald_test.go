package herald

import (
	"bytes"
	"testing"
)

// clearEnv blanks every variable OptionsFromEnv consults so tests are
// isolated from the invoking shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{DebugEnv, LegacyDebugEnv, EnableColorEnv, NoColorEnv} {
		t.Setenv(v, "")
	}
}

func TestOptionsFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Options
	}{
		{
			name: "default is plain and quiet",
			want: Options{},
		},
		{
			name: "debug enables color",
			env:  map[string]string{DebugEnv: "1"},
			want: Options{Debug: true, Color: true},
		},
		{
			name: "legacy DEBUG honored",
			env:  map[string]string{LegacyDebugEnv: "true"},
			want: Options{Debug: true, Color: true},
		},
		{
			name: "primary wins over legacy",
			env:  map[string]string{DebugEnv: "0", LegacyDebugEnv: "1"},
			want: Options{},
		},
		{
			name: "pattern list implies debug and sets filter",
			env:  map[string]string{DebugEnv: "db:*,net"},
			want: Options{Debug: true, Color: true, DebugFilter: "db:*,net"},
		},
		{
			name: "color decoupled from debug",
			env:  map[string]string{EnableColorEnv: "1"},
			want: Options{Color: true},
		},
		{
			name: "NO_COLOR wins",
			env:  map[string]string{DebugEnv: "1", NoColorEnv: "1"},
			want: Options{Debug: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := OptionsFromEnv(); got != tt.want {
				t.Errorf("OptionsFromEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefault_LazyLoadAndReset(t *testing.T) {
	clearEnv(t)
	t.Setenv(DebugEnv, "1")
	ResetDefault()
	t.Cleanup(ResetDefault)

	if !Default().Enabled(LevelDebug) {
		t.Error("default writer should pick up HERALD_DEBUG on first access")
	}

	// The snapshot is stable until reset.
	t.Setenv(DebugEnv, "0")
	if !Default().Enabled(LevelDebug) {
		t.Error("default writer must not reconfigure itself after load")
	}

	ResetDefault()
	if Default().Enabled(LevelDebug) {
		t.Error("reset should rebuild the default writer from the environment")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var out, errOut bytes.Buffer
	SetDefault(New(Options{Out: &out, Err: &errOut, Debug: true}))
	t.Cleanup(ResetDefault)

	Error("e")
	Warning("w")
	Success("s")
	Info("i")
	Debug("d")
	Log(LevelInfo, "via log")

	if got, want := errOut.String(), "[ERROR] e\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	wantOut := "[WARNING] w\n[SUCCESS] s\n[INFO] i\n[DEBUG] d\n[INFO] via log\n"
	if got := out.String(); got != wantOut {
		t.Errorf("stdout = %q, want %q", got, wantOut)
	}
}
