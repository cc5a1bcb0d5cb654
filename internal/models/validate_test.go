package models

import "testing"

func strPtr(s string) *string { return &s }

func TestValidateStringLength(t *testing.T) {
	cases := []struct {
		name      string
		value     *string
		minLength int
		allowNull bool
		wantErr   string
	}{
		{"valid value", strPtr("Strategy"), 2, false, ""},
		{"exactly min length", strPtr("ab"), 2, false, ""},
		{"nil allowed", nil, 10, true, ""},
		{"nil not allowed", nil, 2, false, "Field cannot be empty"},
		{"too short", strPtr("a"), 2, false, "Field must be at least 2 characters"},
		{"empty string", strPtr(""), 2, false, "Field must be at least 2 characters"},
		{"whitespace only", strPtr("   "), 2, false, "Field must be at least 2 characters"},
		{"padding does not count", strPtr("  a  "), 2, false, "Field must be at least 2 characters"},
		{"short but nulls allowed", strPtr("short"), 10, true, "Field must be at least 10 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStringLength("Field", tc.value, tc.minLength, tc.allowNull)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %q", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tc.wantErr)
			}
			if err.Error() != tc.wantErr {
				t.Fatalf("expected error %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestValidateStringLengthDoesNotTrimValue(t *testing.T) {
	value := "  padded name  "
	if err := ValidateStringLength("Field", &value, 2, false); err != nil {
		t.Fatalf("expected no error, got %q", err)
	}
	if value != "  padded name  " {
		t.Fatalf("value was mutated to %q", value)
	}
}

func TestCategoryValidate(t *testing.T) {
	valid := Category{Name: "Strategy", Description: strPtr("Games about thinking ahead")}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid category, got %q", err)
	}

	noDesc := Category{Name: "Strategy"}
	if err := noDesc.Validate(); err != nil {
		t.Fatalf("nil description should be accepted, got %q", err)
	}

	shortName := Category{Name: "S"}
	if err := shortName.Validate(); err == nil || err.Error() != "Category name must be at least 2 characters" {
		t.Fatalf("expected name length error, got %v", err)
	}

	shortDesc := Category{Name: "Strategy", Description: strPtr("short")}
	if err := shortDesc.Validate(); err == nil || err.Error() != "Description must be at least 10 characters" {
		t.Fatalf("expected description length error, got %v", err)
	}
}

func TestPublisherValidate(t *testing.T) {
	shortName := Publisher{Name: " x "}
	if err := shortName.Validate(); err == nil || err.Error() != "Publisher name must be at least 2 characters" {
		t.Fatalf("expected name length error, got %v", err)
	}

	valid := Publisher{Name: "DevGames Inc"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid publisher, got %q", err)
	}
}

func TestGameValidate(t *testing.T) {
	valid := Game{Title: "Pipeline Panic", Description: "Build your DevOps pipeline before chaos ensues"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid game, got %q", err)
	}

	shortTitle := Game{Title: "P", Description: "A long enough description"}
	if err := shortTitle.Validate(); err == nil || err.Error() != "Game title must be at least 2 characters" {
		t.Fatalf("expected title length error, got %v", err)
	}

	// The description column is not null, so an empty one must be rejected.
	noDesc := Game{Title: "Pipeline Panic"}
	if err := noDesc.Validate(); err == nil || err.Error() != "Description must be at least 10 characters" {
		t.Fatalf("expected description length error, got %v", err)
	}
}
