package iki

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/crud"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Config describes the iki entity to the generic pipeline.
var Config = crud.EntityConfig{
	Name:          "Indikator Kinerja Individu",
	Slug:          "iki",
	SearchColumns: []string{"kode_iki", "nama_indikator"},
	FilterColumns: map[string]string{
		"iku_id": "iku_id",
		"tahun":  "tahun",
	},
	DefaultOrder:     "kode_iki ASC",
	Preloads:         []string{"IKU"},
	NaturalKeyColumn: "kode_iki",
	NaturalKeyLabel:  "Kode IKI",
}

// Module wires the individual-indicator CRUD surface.
type Module struct {
	handler *crud.Handler[domain.IndikatorKinerjaIndividu]
	service *crud.Service[domain.IndikatorKinerjaIndividu]
}

// NewModule builds the repository/service/handler chain. cache may be nil.
func NewModule(db *gorm.DB, auditor *audit.Logger, cache crud.Invalidator) *Module {
	repo := crud.NewRepository[domain.IndikatorKinerjaIndividu](db, Config)
	svc := crud.NewService(repo, Config, cache, nil, naturalKey)
	h := crud.NewHandler(svc, auditor, bindCreate, bindUpdate)
	return &Module{handler: h, service: svc}
}

// Service exposes the entity service for the tool catalog.
func (m *Module) Service() *crud.Service[domain.IndikatorKinerjaIndividu] { return m.service }

// RegisterRoutes registers the REST routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.RegisterRoutes(api)
}

func naturalKey(i *domain.IndikatorKinerjaIndividu) string { return i.KodeIKI }

func bindCreate(c *gin.Context) (*domain.IndikatorKinerjaIndividu, bool) {
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
