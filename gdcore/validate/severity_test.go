/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package validate

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		want     string
	}{
		{"Info", Info, "info"},
		{"Warning", Warning, "warning"},
		{"Error", Error, "error"},
		{"Unknown", Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Severity
		wantErr bool
	}{
		{"info", "info", Info, false},
		{"WARNING", "WARNING", Warning, false},
		{"warn", "warn", Warning, false},
		{"Error", "Error", Error, false},
		{"empty", "", Info, true},
		{"fatal", "fatal", Info, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseSeverity() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseSeverity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverity_Serialization(t *testing.T) {
	f := Finding{Severity: Error, Xref: "@I1@", Message: "dangling FAMC"}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"severity":"error","xref":"@I1@","message":"dangling FAMC"}`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var back Finding
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if back != f {
		t.Errorf("json round trip = %+v, want %+v", back, f)
	}

	var y Finding
	if err := yaml.Unmarshal([]byte("severity: warning\nmessage: odd\n"), &y); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if y.Severity != Warning {
		t.Errorf("yaml.Unmarshal() severity = %v, want %v", y.Severity, Warning)
	}

	if _, err := json.Marshal(Severity(7)); err == nil {
		t.Error("json.Marshal(Severity(7)) should fail")
	}
}

func TestCountErrors(t *testing.T) {
	findings := []Finding{{Severity: Error}, {Severity: Warning}, {Severity: Error}, {Severity: Info}}
	if got := CountErrors(findings); got != 2 {
		t.Errorf("CountErrors() = %d, want 2", got)
	}
}

func TestFinding_String(t *testing.T) {
	if got, want := (Finding{Severity: Warning, Message: "header names no submitter"}).String(), "warning: header names no submitter"; got != want {
		t.Errorf("Finding.String() = %q, want %q", got, want)
	}
	if got, want := (Finding{Severity: Error, Xref: "@F1@", Message: "CHIL link is nil"}).String(), "error @F1@: CHIL link is nil"; got != want {
		t.Errorf("Finding.String() = %q, want %q", got, want)
	}
}
