package activitylog

import (
	"github.com/gin-gonic/gin"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Module exposes the read-only activity trail. Entries are written by the
// mutation handlers through the audit logger; this surface only lists them.
type Module struct {
	store audit.Store
}

func NewModule(store audit.Store) *Module {
	return &Module{store: store}
}

// RegisterRoutes registers GET /activity-log.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/activity-log", m.List)
}

// List returns a page of audit entries, newest first. Recognized filters
// are module, action, status and user_id; search matches description,
// user name and path.
func (m *Module) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := m.store.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, "Data log aktivitas berhasil diambil", result)
}
