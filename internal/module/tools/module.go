package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/cache"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
	"github.com/dinaskp/perikanan-backend/internal/storage"
)

// Module serves the tool catalog and call endpoints. Entity tools are
// registered by the application wiring via RegisterEntity; the cache,
// file, and activity-log tools are registered here.
type Module struct {
	registry *Registry
}

// NewModule builds the module around an already-populated registry and
// adds the infrastructure tools. cache may be nil when redis is disabled;
// its tools are simply absent from the catalog then.
func NewModule(registry *Registry, c *cache.Cache, files storage.Storage, logs audit.Store) *Module {
	m := &Module{registry: registry}
	if c != nil {
		registerCacheTools(registry, c)
	}
	if files != nil {
		registerFileTools(registry, files)
	}
	if logs != nil {
		registerActivityLogTools(registry, logs)
	}
	return m
}

// CallRequest is the body of POST /tools/call.
type CallRequest struct {
	Name      string         `json:"name" binding:"required"`
	Arguments map[string]any `json:"arguments"`
}

// RegisterRoutes registers GET /tools and POST /tools/call.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/tools", m.Catalog)
	api.POST("/tools/call", m.Call)
}

// Catalog lists every registered tool.
func (m *Module) Catalog(c *gin.Context) {
	pkg.Success(c, "Daftar tools berhasil diambil", m.registry.Catalog())
}

// Call executes one tool. The HTTP status is 200 whenever the request
// itself is well-formed; tool failures live inside the result body.
func (m *Module) Call(c *gin.Context) {
	var req CallRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	result := m.registry.Call(c.Request.Context(), req.Name, req.Arguments)
	c.JSON(http.StatusOK, pkg.Response{
		Success: true,
		Message: "Tool " + req.Name + " dijalankan",
		Data:    result,
	})
}

func registerCacheTools(r *Registry, c *cache.Cache) {
	r.Register(Tool{
		Name:        "cache_get",
		Description: "Membaca nilai cache berdasarkan key",
		Parameters:  map[string]string{"key": "key cache lengkap"},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		key, err := requireString(args, "key")
		if err != nil {
			return nil, err
		}
		val, found, err := c.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("key %q tidak ditemukan", key)
		}
		return val, nil
	})

	r.Register(Tool{
		Name:        "cache_set",
		Description: "Menyimpan nilai cache dengan TTL opsional",
		Parameters: map[string]string{
			"key":         "key cache lengkap",
			"value":       "nilai string yang disimpan",
			"ttl_seconds": "masa berlaku dalam detik, 0 berarti tanpa kadaluarsa",
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		key, err := requireString(args, "key")
		if err != nil {
			return nil, err
		}
		value := stringArg(args, "value")
		ttl := time.Duration(intArg(args, "ttl_seconds", 0)) * time.Second
		if err := c.Set(ctx, key, value, ttl); err != nil {
			return nil, err
		}
		return "OK", nil
	})

	r.Register(Tool{
		Name:        "cache_delete",
		Description: "Menghapus satu key cache",
		Parameters:  map[string]string{"key": "key cache lengkap"},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		key, err := requireString(args, "key")
		if err != nil {
			return nil, err
		}
		removed, err := c.Delete(ctx, key)
		if err != nil {
			return nil, err
		}
		return map[string]any{"removed": removed}, nil
	})

	r.Register(Tool{
		Name:        "cache_keys",
		Description: "Mendaftar key cache yang cocok dengan pola glob",
		Parameters:  map[string]string{"pattern": "pola glob, mis. perikanan:komoditas:*"},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		pattern := stringArg(args, "pattern")
		if pattern == "" {
			pattern = cache.Namespace + "*"
		}
		return c.Keys(ctx, pattern)
	})

	r.Register(Tool{
		Name:        "cache_flush",
		Description: "Mengosongkan seluruh cache aplikasi",
	}, func(ctx context.Context, _ map[string]any) (any, error) {
		removed, err := c.Flush(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"removed": removed}, nil
	})
}

func registerFileTools(r *Registry, files storage.Storage) {
	r.Register(Tool{
		Name:        "file_upload",
		Description: "Menyimpan file dari konten base64",
		Parameters: map[string]string{
			"name":    "nama file asli, ekstensinya dipertahankan",
			"content": "isi file dalam base64",
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		name, err := requireString(args, "name")
		if err != nil {
			return nil, err
		}
		encoded, err := requireString(args, "content")
		if err != nil {
			return nil, err
		}
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("konten bukan base64 yang valid: %w", err)
		}
		return files.Save(ctx, name, data)
	})

	r.Register(Tool{
		Name:        "file_delete",
		Description: "Menghapus file tersimpan berdasarkan nama",
		Parameters:  map[string]string{"name": "nama file tersimpan"},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		name, err := requireString(args, "name")
		if err != nil {
			return nil, err
		}
		if err := files.Delete(ctx, name); err != nil {
			return nil, err
		}
		return "OK", nil
	})

	r.Register(Tool{
		Name:        "file_list",
		Description: "Mendaftar seluruh file tersimpan",
	}, func(ctx context.Context, _ map[string]any) (any, error) {
		return files.List(ctx)
	})
}

func registerActivityLogTools(r *Registry, logs audit.Store) {
	r.Register(Tool{
		Name:        "activity_log_list",
		Description: "Mengambil daftar log aktivitas, terbaru lebih dulu",
		Parameters:  listParams,
	}, func(ctx context.Context, args map[string]any) (any, error) {
		return logs.List(ctx, pageRequest(args))
	})
}
