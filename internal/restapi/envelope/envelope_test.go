package envelope

import (
	"encoding/json"
	"testing"
)

func TestList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		key  string
		want int
	}{
		{"bare array", `[{"id":"1"},{"id":"2"}]`, "students", 2},
		{"data array", `{"data":[{"id":"1"}]}`, "students", 1},
		{"keyed array", `{"students":[{"id":"1"},{"id":"2"},{"id":"3"}]}`, "students", 3},
		{"nested data key", `{"data":{"students":[{"id":"1"}]}}`, "students", 1},
		{"empty bare array", `[]`, "students", 0},
		{"empty object", `{}`, "students", 0},
		{"null body", `null`, "students", 0},
		{"empty body", ``, "students", 0},
		{"malformed", `{"data": [`, "students", 0},
		{"scalar body", `42`, "students", 0},
		{"unrelated key", `{"professors":[{"id":"1"}]}`, "students", 0},
		{"leading whitespace", "\n\t [{\"id\":\"1\"}]", "students", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := List([]byte(tt.raw), tt.key)
			if len(got) != tt.want {
				t.Errorf("List(%q) returned %d items, want %d", tt.raw, len(got), tt.want)
			}
		})
	}
}

func TestList_BareArrayWinsOverEnvelope(t *testing.T) {
	// A bare array is taken as-is even when its elements carry a "data" key.
	raw := `[{"data":"x"},{"data":"y"}]`
	got := List([]byte(raw), "students")
	if len(got) != 2 {
		t.Fatalf("List returned %d items, want 2", len(got))
	}
}

func TestList_DataArrayWinsOverKeyedArray(t *testing.T) {
	raw := `{"data":[{"id":"1"}],"students":[{"id":"2"},{"id":"3"}]}`
	got := List([]byte(raw), "students")
	if len(got) != 1 {
		t.Fatalf("List returned %d items, want the data array's 1", len(got))
	}
}

func TestList_ElementsSurviveRoundTrip(t *testing.T) {
	raw := `{"data":{"students":[{"id":"a","name":"Asha"}]}}`
	got := List([]byte(raw), "students")
	if len(got) != 1 {
		t.Fatalf("List returned %d items, want 1", len(got))
	}
	var el struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(got[0], &el); err != nil {
		t.Fatalf("unmarshal element: %v", err)
	}
	if el.ID != "a" || el.Name != "Asha" {
		t.Errorf("element = %+v, want {a Asha}", el)
	}
}

func TestObject(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		key    string
		wantID string
		isNil  bool
	}{
		{"keyed object", `{"student":{"id":"1"}}`, "student", "1", false},
		{"data object", `{"data":{"id":"2"}}`, "student", "2", false},
		{"nested data key", `{"data":{"student":{"id":"3"}}}`, "student", "3", false},
		{"bare object", `{"id":"4"}`, "student", "4", false},
		{"empty object", `{}`, "student", "", true},
		{"null", `null`, "student", "", true},
		{"array body", `[{"id":"1"}]`, "student", "", true},
		{"malformed", `{"student":`, "student", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Object([]byte(tt.raw), tt.key)
			if tt.isNil {
				if got != nil {
					t.Fatalf("Object(%q) = %s, want nil", tt.raw, got)
				}
				return
			}
			var el struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(got, &el); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if el.ID != tt.wantID {
				t.Errorf("Object(%q).id = %s, want %s", tt.raw, el.ID, tt.wantID)
			}
		})
	}
}
