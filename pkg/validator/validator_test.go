package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/shopcatalog/pkg/validator"
)

type sampleStruct struct {
	ID     string  `json:"id" validate:"required,uuid"`
	Title  string  `json:"title" validate:"required,min=1,max=10"`
	Gender string  `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Price  float64 `json:"price" validate:"omitempty,gte=0"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		ID:     "550e8400-e29b-41d4-a716-446655440000",
		Title:  "hello",
		Gender: "men",
		Price:  9.99,
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	// Field keys follow the json tag names.
	if m["id"] != "This field is required" {
		t.Errorf("unexpected id message: %q", m["id"])
	}
	if m["title"] != "This field is required" {
		t.Errorf("unexpected title message: %q", m["title"])
	}
}

func TestFormatValidationErrors_uuid(t *testing.T) {
	s := sampleStruct{ID: "not-a-uuid", Title: "ok"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["id"] != "Must be a valid UUID" {
		t.Errorf("unexpected id message: %q", m["id"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{ID: "550e8400-e29b-41d4-a716-446655440000", Title: "12345678901"} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["title"] != "Maximum length is 10" {
		t.Errorf("unexpected title message: %q", m["title"])
	}
}

func TestFormatValidationErrors_oneof(t *testing.T) {
	s := sampleStruct{ID: "550e8400-e29b-41d4-a716-446655440000", Title: "ok", Gender: "other"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["gender"] != "Must be one of: men women kid unisex" {
		t.Errorf("unexpected gender message: %q", m["gender"])
	}
}

func TestFormatValidationErrors_gte(t *testing.T) {
	s := sampleStruct{ID: "550e8400-e29b-41d4-a716-446655440000", Title: "ok", Price: -1}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["price"] != "Must be greater than or equal to 0" {
		t.Errorf("unexpected price message: %q", m["price"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type productReq struct {
	Title  string `json:"title" validate:"required,min=1,max=255"`
	Gender string `json:"gender" validate:"required,oneof=men women kid unisex"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"title":"Red Shoe","gender":"men"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[productReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Title != "Red Shoe" {
		t.Errorf("unexpected Title: %q", req.Title)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[productReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"title":"Red Shoe"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[productReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing gender")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_invalidEnum(t *testing.T) {
	body := `{"title":"Red Shoe","gender":"other"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[productReq](w, r)
	if ok {
		t.Fatal("expected ok=false for invalid gender")
	}
	if !strings.Contains(w.Body.String(), "Must be one of") {
		t.Errorf("expected enum error in body, got: %s", w.Body.String())
	}
}
