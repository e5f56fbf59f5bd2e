package pelatihan

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/crud"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Config describes the pelatihan entity to the generic pipeline. Trainings
// have no natural key; their identity is the generated id.
var Config = crud.EntityConfig{
	Name:          "Pelatihan",
	Slug:          "pelatihan",
	SearchColumns: []string{"nama_pelatihan", "penyelenggara", "lokasi"},
	FilterColumns: map[string]string{
		"status": "status",
		"upt_id": "upt_id",
	},
	DefaultOrder: "tanggal_mulai DESC",
	Preloads:     []string{"UPT"},
}

// Module wires the training CRUD surface.
type Module struct {
	handler *crud.Handler[domain.Pelatihan]
	service *crud.Service[domain.Pelatihan]
}

// NewModule builds the repository/service/handler chain. cache may be nil.
func NewModule(db *gorm.DB, auditor *audit.Logger, cache crud.Invalidator) *Module {
	repo := crud.NewRepository[domain.Pelatihan](db, Config)
	svc := crud.NewService(repo, Config, cache, applyDefaults, nil)
	h := crud.NewHandler(svc, auditor, bindCreate, bindUpdate)
	return &Module{handler: h, service: svc}
}

// Service exposes the entity service for the tool catalog.
func (m *Module) Service() *crud.Service[domain.Pelatihan] { return m.service }

// RegisterRoutes registers the REST routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.RegisterRoutes(api)
}

// applyDefaults: a new training starts in the planning state.
func applyDefaults(p *domain.Pelatihan) {
	if p.Status == "" {
		p.Status = domain.PelatihanDirencanakan
	}
}

func bindCreate(c *gin.Context) (*domain.Pelatihan, bool) {
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
