package leads

import "testing"

func TestIntakeValidateCollectsEveryFailure(t *testing.T) {
	errs := Intake{FirstName: "Jane"}.Validate()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors in one pass, got %d", len(errs))
	}

	paths := map[string]bool{}
	for _, e := range errs {
		paths[e.Path] = true
	}
	if !paths["lastName"] || !paths["email"] {
		t.Errorf("expected lastName and email errors, got %v", paths)
	}
}

func TestIntakeValidateWhitespaceIsEmpty(t *testing.T) {
	errs := Intake{FirstName: "   ", LastName: "Doe", Email: "jane@example.com"}.Validate()
	if len(errs) != 1 || errs[0].Path != "firstName" {
		t.Fatalf("expected a firstName error, got %+v", errs)
	}
}

func TestIntakeValidateEmailPlausibility(t *testing.T) {
	errs := Intake{FirstName: "Jane", LastName: "Doe", Email: "janeexample.com"}.Validate()
	if len(errs) != 1 || errs[0].Path != "email" {
		t.Fatalf("expected an email error, got %+v", errs)
	}

	if errs := (Intake{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}).Validate(); len(errs) != 0 {
		t.Fatalf("expected a valid intake, got %+v", errs)
	}
}
