package role

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/crud"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Config describes the role entity to the generic pipeline.
var Config = crud.EntityConfig{
	Name:             "Role",
	Slug:             "role",
	SearchColumns:    []string{"nama_role", "deskripsi"},
	FilterColumns:    map[string]string{},
	DefaultOrder:     "nama_role ASC",
	NaturalKeyColumn: "nama_role",
	NaturalKeyLabel:  "Nama Role",
}

// Module wires the role CRUD surface.
type Module struct {
	handler *crud.Handler[domain.Role]
	service *crud.Service[domain.Role]
}

// NewModule builds the repository/service/handler chain. cache may be nil.
func NewModule(db *gorm.DB, auditor *audit.Logger, cache crud.Invalidator) *Module {
	repo := crud.NewRepository[domain.Role](db, Config)
	svc := crud.NewService(repo, Config, cache, nil, naturalKey)
	h := crud.NewHandler(svc, auditor, bindCreate, bindUpdate)
	return &Module{handler: h, service: svc}
}

// Service exposes the entity service for the tool catalog.
func (m *Module) Service() *crud.Service[domain.Role] { return m.service }

// RegisterRoutes registers the REST routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.RegisterRoutes(api)
}

func naturalKey(r *domain.Role) string { return r.NamaRole }

func bindCreate(c *gin.Context) (*domain.Role, bool) {
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
