package penyuluh

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/crud"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Config describes the penyuluh entity to the generic pipeline.
var Config = crud.EntityConfig{
	Name:          "Penyuluh",
	Slug:          "penyuluh",
	SearchColumns: []string{"nama_penyuluh", "nip", "wilayah_binaan"},
	FilterColumns: map[string]string{
		"wilayah_binaan": "wilayah_binaan",
		"is_active":      "is_active",
	},
	DefaultOrder:     "nama_penyuluh ASC",
	NaturalKeyColumn: "nip",
	NaturalKeyLabel:  "NIP",
}

// Module wires the extension-officer CRUD surface.
type Module struct {
	handler *crud.Handler[domain.Penyuluh]
	service *crud.Service[domain.Penyuluh]
}

// NewModule builds the repository/service/handler chain. cache may be nil.
func NewModule(db *gorm.DB, auditor *audit.Logger, cache crud.Invalidator) *Module {
	repo := crud.NewRepository[domain.Penyuluh](db, Config)
	svc := crud.NewService(repo, Config, cache, applyDefaults, naturalKey)
	h := crud.NewHandler(svc, auditor, bindCreate, bindUpdate)
	return &Module{handler: h, service: svc}
}

// Service exposes the entity service for the tool catalog.
func (m *Module) Service() *crud.Service[domain.Penyuluh] { return m.service }

// RegisterRoutes registers the REST routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.RegisterRoutes(api)
}

func applyDefaults(p *domain.Penyuluh) {
	if p.IsActive == nil {
		active := true
		p.IsActive = &active
	}
}

func naturalKey(p *domain.Penyuluh) string { return p.NIP }

func bindCreate(c *gin.Context) (*domain.Penyuluh, bool) {
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
