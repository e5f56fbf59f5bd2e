package sertifikasi

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/crud"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Config describes the sertifikasi entity to the generic pipeline.
var Config = crud.EntityConfig{
	Name:          "Sertifikasi",
	Slug:          "sertifikasi",
	SearchColumns: []string{"nomor_sertifikat", "jenis_sertifikasi", "lembaga_penerbit"},
	FilterColumns: map[string]string{
		"status":      "status",
		"kelompok_id": "kelompok_id",
	},
	DefaultOrder:     "created_at DESC",
	Preloads:         []string{"Kelompok"},
	NaturalKeyColumn: "nomor_sertifikat",
	NaturalKeyLabel:  "Nomor Sertifikat",
}

// Module wires the certification CRUD surface.
type Module struct {
	handler *crud.Handler[domain.Sertifikasi]
	service *crud.Service[domain.Sertifikasi]
}

// NewModule builds the repository/service/handler chain. cache may be nil.
func NewModule(db *gorm.DB, auditor *audit.Logger, cache crud.Invalidator) *Module {
	repo := crud.NewRepository[domain.Sertifikasi](db, Config)
	svc := crud.NewService(repo, Config, cache, applyDefaults, naturalKey)
	h := crud.NewHandler(svc, auditor, bindCreate, bindUpdate)
	return &Module{handler: h, service: svc}
}

// Service exposes the entity service for the tool catalog.
func (m *Module) Service() *crud.Service[domain.Sertifikasi] { return m.service }

// RegisterRoutes registers the REST routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.RegisterRoutes(api)
}

func applyDefaults(s *domain.Sertifikasi) {
	if s.Status == "" {
		s.Status = "aktif"
	}
}

func naturalKey(s *domain.Sertifikasi) string { return s.NomorSertifikat }

func bindCreate(c *gin.Context) (*domain.Sertifikasi, bool) {
	var req CreateRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return req.Model(), true
}

func bindUpdate(c *gin.Context) (map[string]any, bool) {
	var req UpdateRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return req.Changes(), true
}
