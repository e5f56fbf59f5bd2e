package iku

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/crud"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Config describes the iku entity to the generic pipeline.
var Config = crud.EntityConfig{
	Name:          "Indikator Kinerja Utama",
	Slug:          "iku",
	SearchColumns: []string{"kode_iku", "nama_indikator"},
	FilterColumns: map[string]string{
		"organisasi_id": "organisasi_id",
		"tahun":         "tahun",
	},
	DefaultOrder:     "kode_iku ASC",
	Preloads:         []string{"Organisasi"},
	NaturalKeyColumn: "kode_iku",
	NaturalKeyLabel:  "Kode IKU",
}

// Module wires the organizational-indicator CRUD surface.
type Module struct {
	handler *crud.Handler[domain.IndikatorKinerjaUtama]
	service *crud.Service[domain.IndikatorKinerjaUtama]
}

// NewModule builds the repository/service/handler chain. cache may be nil.
func NewModule(db *gorm.DB, auditor *audit.Logger, cache crud.Invalidator) *Module {
	repo := crud.NewRepository[domain.IndikatorKinerjaUtama](db, Config)
	svc := crud.NewService(repo, Config, cache, nil, naturalKey)
	h := crud.NewHandler(svc, auditor, bindCreate, bindUpdate)
	return &Module{handler: h, service: svc}
}

// Service exposes the entity service for the tool catalog.
func (m *Module) Service() *crud.Service[domain.IndikatorKinerjaUtama] { return m.service }

// RegisterRoutes registers the REST routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.RegisterRoutes(api)
}

func naturalKey(i *domain.IndikatorKinerjaUtama) string { return i.KodeIKU }

func bindCreate(c *gin.Context) (*domain.IndikatorKinerjaUtama, bool) {
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
