package handler

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
)

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"TeamMembers": "team_members",
		"MoodleID":    "moodle_id",
		"Title":       "title",
		"EventID":     "event_id",
		"RollNo":      "roll_no",
	}
	for in, want := range cases {
		if got := toSnake(in); got != want {
			t.Errorf("toSnake(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBindErrorFieldPaths(t *testing.T) {
	v := validator.New()
	// gin registers its validator against the binding tag; mirror that
	v.SetTagName("binding")

	req := dto.CreateTeamRequest{
		EventName: "CTF",
		TeamName:  "T",
		TeamMembers: []dto.TeamMemberInput{
			{Name: "A", Email: "a@x.com", MoodleID: "21102A0042", RollNo: "1", Division: "A", Department: "IT", Year: "TE", Mobile: "9876543210"},
			{Name: "B", Email: "not-an-email", MoodleID: "21102A0043", RollNo: "2", Division: "A", Department: "IT", Year: "TE", Mobile: "9876543211"},
			{Name: "C", Email: "c@x.com", MoodleID: "21102A0044", RollNo: "3", Division: "A", Department: "IT", Year: "TE", Mobile: "12"},
			{Name: "D", Email: "d@x.com", MoodleID: "21102A0045", RollNo: "4", Division: "A", Department: "IT", Year: "TE", Mobile: "9876543213"},
		},
	}

	err := v.Struct(req)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	appErr := bindError(err)
	if appErr.Code != apperr.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
	if _, ok := appErr.Details["team_members.1.email"]; !ok {
		t.Errorf("expected team_members.1.email detail, got %v", appErr.Details)
	}
	if _, ok := appErr.Details["team_members.2.mobile"]; !ok {
		t.Errorf("expected team_members.2.mobile detail, got %v", appErr.Details)
	}
}

func TestBindErrorNonValidator(t *testing.T) {
	appErr := bindError(errString("unexpected EOF"))
	if appErr.Code != apperr.CodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
	if appErr.Message != "Invalid request body" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
