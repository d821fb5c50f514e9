package pdf_test

import (
	"testing"

	"prodlogs/internal/pdf"
)

func TestMachineNameFromStem(t *testing.T) {
	cases := []struct {
		stem string
		want string
	}{
		{"cutter 1 training set", "Cutter1"},
		{"Cutter-1 Training Set v2", "Cutter1"},
		{"die_cutter training set", "Diecutter"},
		{"SHEETER 2 TRAINING SET", "Sheeter2"},
		{"pc5", "Pc5"},
		{"training set only", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := pdf.MachineNameFromStem(tc.stem); got != tc.want {
			t.Errorf("MachineNameFromStem(%q) = %q, want %q", tc.stem, got, tc.want)
		}
	}
}

func TestRotatedPath(t *testing.T) {
	got := pdf.RotatedPath("/scans/912 Production Logs.pdf")
	want := "/scans/912 Production Logs_rotated.pdf"
	if got != want {
		t.Fatalf("RotatedPath = %q, want %q", got, want)
	}
}

func TestIsRotatedOutput(t *testing.T) {
	if !pdf.IsRotatedOutput("/scans/log_rotated.pdf") {
		t.Fatal("expected rotated output to be recognized")
	}
	if pdf.IsRotatedOutput("/scans/log.pdf") {
		t.Fatal("plain file misclassified as rotated output")
	}
}
