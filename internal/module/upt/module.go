package upt

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/crud"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Config describes the unit-pelaksanaan-teknis entity to the generic
// pipeline. The route slug keeps the spelling the public API always used.
var Config = crud.EntityConfig{
	Name:          "Unit Pelaksana Teknis",
	Slug:          "unit-pelaksanaan-teknis",
	SearchColumns: []string{"nama_upt", "kode_upt", "wilayah"},
	FilterColumns: map[string]string{
		"wilayah": "wilayah",
	},
	DefaultOrder:     "kode_upt ASC",
	NaturalKeyColumn: "kode_upt",
	NaturalKeyLabel:  "Kode UPT",
}

// Module wires the technical-unit CRUD surface.
type Module struct {
	handler *crud.Handler[domain.UnitPelaksanaTeknis]
	service *crud.Service[domain.UnitPelaksanaTeknis]
}

// NewModule builds the repository/service/handler chain. cache may be nil.
func NewModule(db *gorm.DB, auditor *audit.Logger, cache crud.Invalidator) *Module {
	repo := crud.NewRepository[domain.UnitPelaksanaTeknis](db, Config)
	svc := crud.NewService(repo, Config, cache, nil, naturalKey)
	h := crud.NewHandler(svc, auditor, bindCreate, bindUpdate)
	return &Module{handler: h, service: svc}
}

// Service exposes the entity service for the tool catalog.
func (m *Module) Service() *crud.Service[domain.UnitPelaksanaTeknis] { return m.service }

// RegisterRoutes registers the REST routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.RegisterRoutes(api)
}

func naturalKey(u *domain.UnitPelaksanaTeknis) string { return u.KodeUPT }

func bindCreate(c *gin.Context) (*domain.UnitPelaksanaTeknis, bool) {
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
