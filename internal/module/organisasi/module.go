package organisasi

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/crud"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Config describes the organisasi entity to the generic pipeline.
var Config = crud.EntityConfig{
	Name:             "Organisasi",
	Slug:             "organisasi",
	SearchColumns:    []string{"nama_organisasi", "kode_organisasi", "alamat"},
	FilterColumns:    map[string]string{},
	DefaultOrder:     "kode_organisasi ASC",
	NaturalKeyColumn: "kode_organisasi",
	NaturalKeyLabel:  "Kode Organisasi",
}

// Module wires the organization CRUD surface.
type Module struct {
	handler *crud.Handler[domain.Organisasi]
	service *crud.Service[domain.Organisasi]
}

// NewModule builds the repository/service/handler chain. cache may be nil.
func NewModule(db *gorm.DB, auditor *audit.Logger, cache crud.Invalidator) *Module {
	repo := crud.NewRepository[domain.Organisasi](db, Config)
	svc := crud.NewService(repo, Config, cache, nil, naturalKey)
	h := crud.NewHandler(svc, auditor, bindCreate, bindUpdate)
	return &Module{handler: h, service: svc}
}

// Service exposes the entity service for the tool catalog.
func (m *Module) Service() *crud.Service[domain.Organisasi] { return m.service }

// RegisterRoutes registers the REST routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.RegisterRoutes(api)
}

func naturalKey(o *domain.Organisasi) string { return o.KodeOrganisasi }

func bindCreate(c *gin.Context) (*domain.Organisasi, bool) {
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
