package kelompoknelayan

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/crud"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Config describes the kelompok-nelayan entity to the generic pipeline.
var Config = crud.EntityConfig{
	Name:          "Kelompok Nelayan",
	Slug:          "kelompok-nelayan",
	SearchColumns: []string{"nama_kelompok", "nib_kelompok", "alamat_kelompok"},
	FilterColumns: map[string]string{
		"organisasi_id":  "organisasi_id",
		"upt_id":         "upt_id",
		"penyuluh_id":    "penyuluh_id",
		"kelas_kelompok": "kelas_kelompok",
		"is_active":      "is_active",
	},
	DefaultOrder:     "created_at DESC",
	Preloads:         []string{"Organisasi", "UPT", "Penyuluh"},
	NaturalKeyColumn: "nib_kelompok",
	NaturalKeyLabel:  "NIB Kelompok",
}

// Module wires the group CRUD surface.
type Module struct {
	handler *crud.Handler[domain.KelompokNelayan]
	service *crud.Service[domain.KelompokNelayan]
}

// NewModule builds the repository/service/handler chain. cache may be nil.
func NewModule(db *gorm.DB, auditor *audit.Logger, cache crud.Invalidator) *Module {
	repo := crud.NewRepository[domain.KelompokNelayan](db, Config)
	svc := crud.NewService(repo, Config, cache, applyDefaults, naturalKey)
	h := crud.NewHandler(svc, auditor, bindCreate, bindUpdate)
	return &Module{handler: h, service: svc}
}

// Service exposes the entity service for the tool catalog.
func (m *Module) Service() *crud.Service[domain.KelompokNelayan] { return m.service }

// RegisterRoutes registers the REST routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.RegisterRoutes(api)
}

// applyDefaults fills the entity defaults: a new group starts active in the
// "pemula" class.
func applyDefaults(k *domain.KelompokNelayan) {
	if k.KelasKelompok == "" {
		k.KelasKelompok = domain.KelasPemula
	}
	if k.IsActive == nil {
		active := true
		k.IsActive = &active
	}
}

func naturalKey(k *domain.KelompokNelayan) string { return k.NIBKelompok }

func bindCreate(c *gin.Context) (*domain.KelompokNelayan, bool) {
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
