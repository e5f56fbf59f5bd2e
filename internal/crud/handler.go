package crud

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/middleware"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// BindCreateFunc binds and validates a create request body into a new
// record. On failure it writes the validation response itself and returns
// false.
type BindCreateFunc[T any] func(c *gin.Context) (*T, bool)

// BindUpdateFunc binds and validates a partial-update body into a column
// change set. Only supplied fields appear in the map.
type BindUpdateFunc func(c *gin.Context) (map[string]any, bool)

// Handler serves the uniform REST surface of one entity. Every mutation,
// including failed ones, produces an audit entry; reads do not.
type Handler[T any] struct {
	svc        *Service[T]
	auditor    *audit.Logger
	bindCreate BindCreateFunc[T]
	bindUpdate BindUpdateFunc
}

// NewHandler creates a Handler for the entity served by svc.
func NewHandler[T any](svc *Service[T], auditor *audit.Logger, bindCreate BindCreateFunc[T], bindUpdate BindUpdateFunc) *Handler[T] {
	return &Handler[T]{
		svc:        svc,
		auditor:    auditor,
		bindCreate: bindCreate,
		bindUpdate: bindUpdate,
	}
}

// RegisterRoutes registers the five uniform routes under the entity's slug.
func (h *Handler[T]) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/" + h.svc.Config().Slug)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List handles GET /{entity}.
func (h *Handler[T]) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, "Data "+h.svc.Config().Name+" berhasil diambil", result)
}

// Get handles GET /{entity}/:id.
func (h *Handler[T]) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	row, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "Data "+h.svc.Config().Name+" berhasil diambil", row)
}

// Create handles POST /{entity}.
func (h *Handler[T]) Create(c *gin.Context) {
	row, ok := h.bindCreate(c)
	if !ok {
		return
	}

	name := h.svc.Config().Name
	created, err := h.svc.Create(c.Request.Context(), row)
	if err != nil {
		h.logMutation(c, domain.ActionCreate, "Gagal membuat "+name, nil, nil, err)
		pkg.Error(c, err)
		return
	}

	h.logMutation(c, domain.ActionCreate, "Membuat "+name+" baru", nil, created, nil)
	pkg.Created(c, name+" berhasil dibuat", created)
}

// Update handles PUT /{entity}/:id.
func (h *Handler[T]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	changes, ok := h.bindUpdate(c)
	if !ok {
		return
	}

	name := h.svc.Config().Name

	// Read the current row first so failures still carry a before-snapshot.
	before, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, changes)
	if err != nil {
		h.logMutation(c, domain.ActionUpdate, "Gagal mengubah "+name, before, nil, err)
		pkg.Error(c, err)
		return
	}

	h.logMutation(c, domain.ActionUpdate, "Mengubah "+name, before, updated, nil)
	pkg.Success(c, name+" berhasil diubah", updated)
}

// Delete handles DELETE /{entity}/:id.
func (h *Handler[T]) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	name := h.svc.Config().Name
	removed, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.logMutation(c, domain.ActionDelete, "Gagal menghapus "+name, nil, nil, err)
		pkg.Error(c, err)
		return
	}

	h.logMutation(c, domain.ActionDelete, "Menghapus "+name, removed, nil, nil)
	pkg.Success(c, name+" berhasil dihapus", nil)
}

func (h *Handler[T]) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "id tidak valid", nil))
		return 0, false
	}
	return uint(id), true
}

func (h *Handler[T]) logMutation(c *gin.Context, action, description string, before, after any, opErr error) {
	if h.auditor == nil {
		return
	}

	status := domain.StatusSuccess
	errMsg := ""
	if opErr != nil {
		status = domain.StatusError
		errMsg = opErr.Error()
	}

	h.auditor.Log(audit.Entry{
		Actor:       middleware.GetActor(c),
		Action:      action,
		Module:      h.svc.Config().Name,
		Description: description,
		Before:      before,
		After:       after,
		Status:      status,
		ErrorMsg:    errMsg,
	})
}
