package kelompoknelayan

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestEngine(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Organisasi{},
		&domain.UnitPelaksanaTeknis{},
		&domain.Penyuluh{},
		&domain.KelompokNelayan{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewModule(db, nil, nil).RegisterRoutes(api)
	return engine, db
}

func postJSON(t *testing.T, engine *gin.Engine, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreate_AppliesClassAndActiveDefaults(t *testing.T) {
	engine, db := setupTestEngine(t)

	w := postJSON(t, engine, "/api/v1/kelompok-nelayan",
		`{"nama_kelompok":"Nelayan Maju Bersama","nib_kelompok":"NIB-001","tanggal_pembentukan":"2024-03-15"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, body %s", w.Code, w.Body.String())
	}

	var row domain.KelompokNelayan
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if row.KelasKelompok != domain.KelasPemula {
		t.Errorf("got kelas %q; want default pemula", row.KelasKelompok)
	}
	if row.IsActive == nil || !*row.IsActive {
		t.Error("expected is_active default true")
	}
	if row.TanggalPembentukan == nil {
		t.Error("expected parsed tanggal_pembentukan")
	}
}

func TestCreate_DuplicateNIBMessage(t *testing.T) {
	engine, _ := setupTestEngine(t)

	if w := postJSON(t, engine, "/api/v1/kelompok-nelayan",
		`{"nama_kelompok":"Kelompok A","nib_kelompok":"NIB-DUP"}`); w.Code != http.StatusCreated {
		t.Fatalf("first create: %d", w.Code)
	}

	w := postJSON(t, engine, "/api/v1/kelompok-nelayan",
		`{"nama_kelompok":"Kelompok B","nib_kelompok":"NIB-DUP"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("got status %d; want 409", w.Code)
	}

	var body pkg.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Message != "NIB Kelompok sudah terdaftar" {
		t.Errorf("got message %q", body.Message)
	}
}

func TestCreate_RejectsUnknownClass(t *testing.T) {
	engine, _ := setupTestEngine(t)

	w := postJSON(t, engine, "/api/v1/kelompok-nelayan",
		`{"nama_kelompok":"Kelompok C","nib_kelompok":"NIB-002","kelas_kelompok":"super"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("got status %d; want 400", w.Code)
	}
}

func TestList_FilterByClass(t *testing.T) {
	engine, db := setupTestEngine(t)

	seed := []domain.KelompokNelayan{
		{NamaKelompok: "Kelompok A", NIBKelompok: "N-1", KelasKelompok: domain.KelasPemula},
		{NamaKelompok: "Kelompok B", NIBKelompok: "N-2", KelasKelompok: domain.KelasMadya},
		{NamaKelompok: "Kelompok C", NIBKelompok: "N-3", KelasKelompok: domain.KelasMadya},
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/kelompok-nelayan?kelas_kelompok=madya", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}

	var body pkg.ListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Pagination.Total != 2 {
		t.Errorf("got total %d; want 2", body.Pagination.Total)
	}
}

func TestGet_PreloadsDisplayJoins(t *testing.T) {
	engine, db := setupTestEngine(t)

	org := domain.Organisasi{NamaOrganisasi: "Dinas Perikanan", KodeOrganisasi: "ORG-1"}
	if err := db.Create(&org).Error; err != nil {
		t.Fatalf("seed org: %v", err)
	}
	row := domain.KelompokNelayan{NamaKelompok: "Kelompok A", NIBKelompok: "N-1", OrganisasiID: &org.ID}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/kelompok-nelayan/1", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}

	var body struct {
		Data domain.KelompokNelayan `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data.Organisasi == nil || body.Data.Organisasi.NamaOrganisasi != "Dinas Perikanan" {
		t.Errorf("organisasi join not loaded: %+v", body.Data.Organisasi)
	}
}
