package validator

import (
	"errors"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"http", "postgres"}
	if !IsInSlice("http", slice) {
		t.Errorf("IsInSlice('http') = false, want true")
	}
	if IsInSlice("mysql", slice) {
		t.Errorf("IsInSlice('mysql') = true, want false")
	}
}

func TestParseIntOr(t *testing.T) {
	got, err := ParseIntOr("", 7)
	if err != nil || got != 7 {
		t.Errorf("ParseIntOr(\"\", 7) = %d, %v, want 7, nil", got, err)
	}
	got, err = ParseIntOr(" 12 ", 7)
	if err != nil || got != 12 {
		t.Errorf("ParseIntOr(\" 12 \", 7) = %d, %v, want 12, nil", got, err)
	}
	if _, err := ParseIntOr("twelve", 7); err == nil {
		t.Errorf("ParseIntOr(\"twelve\", 7) error = nil, want error")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "year", Message: "invalid"},
		{Field: "month", Message: "required"},
	}
	got := errs.Error()
	want := "year: invalid; month: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "year", Message: "invalid"},
		{Field: "month", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"year": "invalid", "month": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

type structSample struct {
	Source string `env:"SOURCE_TYPE" validate:"required,oneof=http postgres"`
	Port   int    `env:"APP_PORT" validate:"min=1,max=65535"`
}

func TestStruct(t *testing.T) {
	if err := Struct(structSample{Source: "http", Port: 8080}); err != nil {
		t.Fatalf("Struct(valid) = %v, want nil", err)
	}

	err := Struct(structSample{Source: "mysql", Port: 0})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Struct(invalid) = %v, want ValidationErrors", err)
	}
	got := verrs.ToMap()
	if got["SOURCE_TYPE"] != "must be one of: http postgres" {
		t.Errorf("SOURCE_TYPE message = %q", got["SOURCE_TYPE"])
	}
	if got["APP_PORT"] != "must be at least 1" {
		t.Errorf("APP_PORT message = %q", got["APP_PORT"])
	}
}
