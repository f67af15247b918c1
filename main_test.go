package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const dataset = `[
  {"id": 101, "name": "India", "iso3": "IND", "iso2": "IN", "phone_code": "91", "states": [
    {"id": 4008, "name": "Maharashtra", "state_code": "MH", "cities": []}
  ]},
  {"id": 31, "name": "Brazil", "iso3": "BRA", "iso2": "BR", "phone_code": "55", "states": []},
  {"id": 153, "name": "Nepal", "iso3": "NPL", "iso2": "NP", "phone_code": "977", "states": []}
]`

func TestDryRunFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.json")
	if err := os.WriteFile(path, []byte(dataset), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--dry-run", "--file", path, "--countries", "nepal,India"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if got, want := out.String(), "india 91\nnepal 977\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestMissingDatasetFails(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--dry-run", "--file", filepath.Join(t.TempDir(), "missing.json")})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing dataset")
	}
	if !strings.Contains(err.Error(), "open dataset") {
		t.Errorf("error = %v", err)
	}
}
