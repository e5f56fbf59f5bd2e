package komoditas

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/crud"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Config describes the komoditas entity to the generic pipeline.
var Config = crud.EntityConfig{
	Name:          "Komoditas",
	Slug:          "komoditas",
	SearchColumns: []string{"nama_komoditas", "kode_komoditas", "jenis"},
	FilterColumns: map[string]string{
		"jenis":     "jenis",
		"is_active": "is_active",
	},
	DefaultOrder:     "kode_komoditas ASC",
	NaturalKeyColumn: "kode_komoditas",
	NaturalKeyLabel:  "Kode Komoditas",
}

// Module wires the commodity CRUD surface.
type Module struct {
	handler *crud.Handler[domain.Komoditas]
	service *crud.Service[domain.Komoditas]
}

// NewModule builds the repository/service/handler chain. cache may be nil.
func NewModule(db *gorm.DB, auditor *audit.Logger, cache crud.Invalidator) *Module {
	repo := crud.NewRepository[domain.Komoditas](db, Config)
	svc := crud.NewService(repo, Config, cache, applyDefaults, naturalKey)
	h := crud.NewHandler(svc, auditor, bindCreate, bindUpdate)
	return &Module{handler: h, service: svc}
}

// Service exposes the entity service for the tool catalog.
func (m *Module) Service() *crud.Service[domain.Komoditas] { return m.service }

// RegisterRoutes registers the REST routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.RegisterRoutes(api)
}

func applyDefaults(k *domain.Komoditas) {
	if k.IsActive == nil {
		active := true
		k.IsActive = &active
	}
}

func naturalKey(k *domain.Komoditas) string { return k.KodeKomoditas }

func bindCreate(c *gin.Context) (*domain.Komoditas, bool) {
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
