package tools

import (
	"context"
	"strings"

	"github.com/dinaskp/perikanan-backend/internal/crud"
)

// listParams documents the shared listing arguments.
var listParams = map[string]string{
	"page":   "nomor halaman, mulai dari 1",
	"limit":  "jumlah baris per halaman, maksimal 100",
	"search": "kata kunci pencarian teks bebas",
	"filter": "objek filter kolom, mis. {\"is_active\": \"true\"}",
}

// RegisterEntity adds the get_all and get_by_id tools for one entity
// service. Tool names derive from the route slug with dashes folded to
// underscores, e.g. kelompok_nelayan_get_all.
func RegisterEntity[T any](r *Registry, svc *crud.Service[T]) {
	cfg := svc.Config()
	base := strings.ReplaceAll(cfg.Slug, "-", "_")

	r.Register(Tool{
		Name:        base + "_get_all",
		Description: "Mengambil daftar " + cfg.Name + " dengan paginasi, pencarian, dan filter",
		Parameters:  listParams,
	}, func(ctx context.Context, args map[string]any) (any, error) {
		return svc.List(ctx, pageRequest(args))
	})

	r.Register(Tool{
		Name:        base + "_get_by_id",
		Description: "Mengambil satu " + cfg.Name + " berdasarkan ID",
		Parameters:  map[string]string{"id": "ID numerik record"},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		id, err := requireID(args, "id")
		if err != nil {
			return nil, err
		}
		return svc.Get(ctx, id)
	})
}
