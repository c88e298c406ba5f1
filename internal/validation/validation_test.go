package validation

import (
	"strings"
	"testing"
)

// --- ValidateUTF8 Tests ---

func TestValidateUTF8_Valid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"ascii", "hello world"},
		{"empty", ""},
		{"unicode", "Hello, 世界"},
		{"emoji", "Hello 👋🏻"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUTF8("field", tt.value)
			if err != nil {
				t.Errorf("ValidateUTF8(%q) = %v, want nil", tt.value, err)
			}
		})
	}
}

func TestValidateUTF8_Invalid(t *testing.T) {
	invalidUTF8 := string([]byte{0xff, 0xfe})

	err := ValidateUTF8("title", invalidUTF8)
	if err == nil {
		t.Error("ValidateUTF8(invalid) = nil, want error")
	}
	if err != nil && err.Field != "title" {
		t.Errorf("error.Field = %q, want %q", err.Field, "title")
	}
}

// --- ValidateNoNullBytes Tests ---

func TestValidateNoNullBytes_Clean(t *testing.T) {
	for _, value := range []string{"hello world", "", "Hello, 世界"} {
		if err := ValidateNoNullBytes("field", value); err != nil {
			t.Errorf("ValidateNoNullBytes(%q) = %v, want nil", value, err)
		}
	}
}

func TestValidateNoNullBytes_WithNull(t *testing.T) {
	err := ValidateNoNullBytes("description", "hello\x00world")
	if err == nil {
		t.Error("ValidateNoNullBytes(with null) = nil, want error")
	}
	if err != nil && err.Field != "description" {
		t.Errorf("error.Field = %q, want %q", err.Field, "description")
	}
}

// --- ValidateMaxLength Tests ---

func TestValidateMaxLength_Within(t *testing.T) {
	err := ValidateMaxLength("title", strings.Repeat("a", 100), 256)
	if err != nil {
		t.Errorf("ValidateMaxLength(100 chars, max 256) = %v, want nil", err)
	}
}

func TestValidateMaxLength_AtLimit(t *testing.T) {
	err := ValidateMaxLength("title", strings.Repeat("a", 256), 256)
	if err != nil {
		t.Errorf("ValidateMaxLength(256 chars, max 256) = %v, want nil", err)
	}
}

func TestValidateMaxLength_Exceeds(t *testing.T) {
	err := ValidateMaxLength("title", strings.Repeat("a", 257), 256)
	if err == nil {
		t.Error("ValidateMaxLength(257 chars, max 256) = nil, want error")
	}
}

func TestValidateMaxLength_CountsRunes(t *testing.T) {
	// Multibyte characters count as one rune each.
	err := ValidateMaxLength("title", strings.Repeat("👋", 256), 256)
	if err != nil {
		t.Errorf("ValidateMaxLength(256 emoji, max 256) = %v, want nil (counts runes)", err)
	}
	if err := ValidateMaxLength("title", strings.Repeat("👋", 257), 256); err == nil {
		t.Error("ValidateMaxLength(257 emoji, max 256) = nil, want error")
	}
}

// --- ValidateUUID Tests ---

func TestValidateUUID_Valid(t *testing.T) {
	validUUIDs := []string{
		"f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"00000000-0000-0000-0000-000000000000",
		"D4C0A9FE-0A31-4F8F-9F0F-2F1F5A3B7C1D",
	}

	for _, id := range validUUIDs {
		t.Run(id, func(t *testing.T) {
			if err := ValidateUUID("id", id); err != nil {
				t.Errorf("ValidateUUID(%q) = %v, want nil", id, err)
			}
		})
	}
}

func TestValidateUUID_Invalid(t *testing.T) {
	invalidUUIDs := []string{
		"",
		"not-a-uuid",
		"f47ac10b-58cc-4372-a567",
		"f47ac10b58cc4372a5670e02b2c3d479zz",
	}

	for _, id := range invalidUUIDs {
		t.Run("invalid", func(t *testing.T) {
			err := ValidateUUID("id", id)
			if err == nil {
				t.Errorf("ValidateUUID(%q) = nil, want error", id)
			}
			if err != nil && err.Field != "id" {
				t.Errorf("error.Field = %q, want %q", err.Field, "id")
			}
		})
	}
}

// --- ValidateRequired Tests ---

func TestValidateRequired_NonEmpty(t *testing.T) {
	if err := ValidateRequired("field", "value"); err != nil {
		t.Errorf("ValidateRequired(value) = %v, want nil", err)
	}
}

func TestValidateRequired_Empty(t *testing.T) {
	err := ValidateRequired("title", "")
	if err == nil {
		t.Error("ValidateRequired(empty) = nil, want error")
	}
	if err != nil && err.Field != "title" {
		t.Errorf("error.Field = %q, want %q", err.Field, "title")
	}
}

func TestValidateRequired_WhitespaceOnly(t *testing.T) {
	for _, value := range []string{" ", "   ", "\t", "\n", "  \t\n  "} {
		if err := ValidateRequired("field", value); err == nil {
			t.Errorf("ValidateRequired(%q) = nil, want error", value)
		}
	}
}

// --- ValidateEnum Tests ---

func TestValidateEnum_Valid(t *testing.T) {
	allowed := []string{"toDo", "inProgress", "blocked", "done"}

	for _, status := range allowed {
		t.Run(status, func(t *testing.T) {
			if err := ValidateEnum("status", status, allowed); err != nil {
				t.Errorf("ValidateEnum(%q) = %v, want nil", status, err)
			}
		})
	}
}

func TestValidateEnum_CaseInsensitive(t *testing.T) {
	allowed := []string{"toDo", "inProgress", "blocked", "done"}

	for _, status := range []string{"todo", "TODO", "InProgress", " done "} {
		if err := ValidateEnum("status", status, allowed); err != nil {
			t.Errorf("ValidateEnum(%q) = %v, want nil (case-insensitive)", status, err)
		}
	}
}

func TestValidateEnum_Invalid(t *testing.T) {
	allowed := []string{"high", "medium", "low"}
	err := ValidateEnum("priority", "urgent", allowed)
	if err == nil {
		t.Error("ValidateEnum(invalid) = nil, want error")
	}
	if err != nil && !strings.Contains(err.Message, "high, medium, low") {
		t.Errorf("error should list allowed values, got: %s", err.Message)
	}
}

// --- ValidateDate Tests ---

func TestValidateDate_Valid(t *testing.T) {
	for _, value := range []string{"2025-06-15", "2025-06-15T10:30:00Z", "2025-06-15 10:30:00"} {
		if err := ValidateDate("dueDate", value); err != nil {
			t.Errorf("ValidateDate(%q) = %v, want nil", value, err)
		}
	}
}

func TestValidateDate_Invalid(t *testing.T) {
	for _, value := range []string{"", "soon", "15/06/2025x"} {
		if err := ValidateDate("dueDate", value); err == nil {
			t.Errorf("ValidateDate(%q) = nil, want error", value)
		}
	}
}

// --- Collector Tests ---

func TestCollector_AccumulatesErrors(t *testing.T) {
	c := &Collector{}
	c.Add(&ValidationError{Field: "field1", Message: "error1"})
	c.Add(&ValidationError{Field: "field2", Message: "error2"})
	c.Add(&ValidationError{Field: "field3", Message: "error3"})

	errors := c.Errors()
	if len(errors) != 3 {
		t.Errorf("len(Errors()) = %d, want 3", len(errors))
	}
}

func TestCollector_IgnoresNil(t *testing.T) {
	c := &Collector{}
	c.Add(nil)
	c.Add(&ValidationError{Field: "field", Message: "error"})
	c.Add(nil)

	errors := c.Errors()
	if len(errors) != 1 {
		t.Errorf("len(Errors()) = %d, want 1 (nil should be ignored)", len(errors))
	}
}

func TestCollector_HasErrors(t *testing.T) {
	c := &Collector{}
	if c.HasErrors() {
		t.Error("HasErrors() = true, want false for empty collector")
	}
	c.Add(&ValidationError{Field: "field", Message: "error"})
	if !c.HasErrors() {
		t.Error("HasErrors() = false, want true for collector with errors")
	}
}

func TestCollector_ChainsFieldChecks(t *testing.T) {
	// The pattern command handlers use: run every check, report all
	// failures at once.
	c := &Collector{}
	c.Add(ValidateRequired("title", "  "))
	c.Add(ValidateEnum("priority", "urgent", []string{"high", "medium", "low"}))
	c.Add(ValidateDate("dueDate", "not a date"))
	c.Add(ValidateRequired("status", "toDo"))

	errors := c.Errors()
	if len(errors) != 3 {
		t.Fatalf("len(Errors()) = %d, want 3", len(errors))
	}
	wantFields := []string{"title", "priority", "dueDate"}
	for i, want := range wantFields {
		if errors[i].Field != want {
			t.Errorf("errors[%d].Field = %q, want %q", i, errors[i].Field, want)
		}
	}
}
