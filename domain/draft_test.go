package domain

import "testing"

func TestDraftValidate(t *testing.T) {
	cases := []struct {
		name    string
		draft   TaskDraft
		wantErr bool
	}{
		{"valid minimal", TaskDraft{Title: "x", Status: StatusInProgress}, false},
		{"valid completed", TaskDraft{Title: "x", Status: StatusCompleted, Version: 4}, false},
		{"empty title", TaskDraft{Status: StatusInProgress}, true},
		{"unknown status", TaskDraft{Title: "x", Status: Status(9)}, true},
		{"negative version", TaskDraft{Title: "x", Status: StatusInProgress, Version: -1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !IsDomainError(err, ErrCodeInvalid) {
				t.Errorf("error code is not INVALID: %v", err)
			}
		})
	}
}
