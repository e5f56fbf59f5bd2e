package pkg

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dinaskp/perikanan-backend/internal/domain"
)

func recordedContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, w
}

func TestSuccessEnvelope(t *testing.T) {
	c, w := recordedContext(t)

	Success(c, "berhasil", gin.H{"id": 1})

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d; want 200", w.Code)
	}
	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success || body.Message != "berhasil" {
		t.Errorf("got %+v; want success with message berhasil", body)
	}
}

func TestError_NotFoundMapsTo404(t *testing.T) {
	c, w := recordedContext(t)

	Error(c, domain.NotFound("Komoditas tidak ditemukan"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d; want 404", w.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Success || body.Message != "Komoditas tidak ditemukan" {
		t.Errorf("got %+v", body)
	}
}

func TestError_DuplicateMapsTo409(t *testing.T) {
	c, w := recordedContext(t)

	Error(c, domain.AlreadyExists("NIB Kelompok sudah terdaftar"))

	if w.Code != http.StatusConflict {
		t.Fatalf("got status %d; want 409", w.Code)
	}
}

func TestError_InternalDetailIsHidden(t *testing.T) {
	c, w := recordedContext(t)

	Error(c, domain.NewAppError(domain.CodeInternal, "database error", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d; want 500", w.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Message != "terjadi kesalahan internal" {
		t.Errorf("got message %q; internal detail must not leak", body.Message)
	}
}

func TestBindAndValidate_FieldErrorsUseJSONTags(t *testing.T) {
	type createReq struct {
		NamaKomoditas string `json:"nama_komoditas" binding:"required,min=2"`
	}

	c, w := recordedContext(t)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(`{"nama_komoditas":""}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req createReq
	if BindAndValidate(c, &req) {
		t.Fatal("expected validation failure")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d; want 400", w.Code)
	}

	var body ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := body.Errors["nama_komoditas"]; !ok {
		t.Errorf("got field errors %v; want key nama_komoditas", body.Errors)
	}
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c, w := recordedContext(t)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req struct{}
	if BindAndValidate(c, &req) {
		t.Fatal("expected bind failure")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d; want 400", w.Code)
	}
}
