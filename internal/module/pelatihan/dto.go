package pelatihan

import (
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// CreateRequest is the input for scheduling a training program.
type CreateRequest struct {
	NamaPelatihan  string `json:"nama_pelatihan" binding:"required,min=3,max=200"`
	Penyelenggara  string `json:"penyelenggara" binding:"omitempty,max=150"`
	Lokasi         string `json:"lokasi" binding:"omitempty,max=255"`
	TanggalMulai   string `json:"tanggal_mulai" binding:"omitempty,datetime=2006-01-02"`
	TanggalSelesai string `json:"tanggal_selesai" binding:"omitempty,datetime=2006-01-02"`
	Kuota          int    `json:"kuota" binding:"omitempty,min=0"`
	Status         string `json:"status" binding:"omitempty,oneof=direncanakan berlangsung selesai dibatalkan"`
	UPTID          *uint  `json:"upt_id"`
}

func (r CreateRequest) Model() *domain.Pelatihan {
	return &domain.Pelatihan{
		NamaPelatihan:  r.NamaPelatihan,
		Penyelenggara:  r.Penyelenggara,
		Lokasi:         r.Lokasi,
		TanggalMulai:   pkg.ParseDate(r.TanggalMulai),
		TanggalSelesai: pkg.ParseDate(r.TanggalSelesai),
		Kuota:          r.Kuota,
		Status:         r.Status,
		UPTID:          r.UPTID,
	}
}

// UpdateRequest is the partial-update input.
type UpdateRequest struct {
	NamaPelatihan  *string `json:"nama_pelatihan" binding:"omitempty,min=3,max=200"`
	Penyelenggara  *string `json:"penyelenggara" binding:"omitempty,max=150"`
	Lokasi         *string `json:"lokasi" binding:"omitempty,max=255"`
	TanggalMulai   *string `json:"tanggal_mulai" binding:"omitempty,datetime=2006-01-02"`
	TanggalSelesai *string `json:"tanggal_selesai" binding:"omitempty,datetime=2006-01-02"`
	Kuota          *int    `json:"kuota" binding:"omitempty,min=0"`
	Status         *string `json:"status" binding:"omitempty,oneof=direncanakan berlangsung selesai dibatalkan"`
	UPTID          *uint   `json:"upt_id"`
}

func (r UpdateRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.NamaPelatihan != nil {
		changes["nama_pelatihan"] = *r.NamaPelatihan
	}
	if r.Penyelenggara != nil {
		changes["penyelenggara"] = *r.Penyelenggara
	}
	if r.Lokasi != nil {
		changes["lokasi"] = *r.Lokasi
	}
	if r.TanggalMulai != nil {
		changes["tanggal_mulai"] = pkg.ParseDate(*r.TanggalMulai)
	}
	if r.TanggalSelesai != nil {
		changes["tanggal_selesai"] = pkg.ParseDate(*r.TanggalSelesai)
	}
	if r.Kuota != nil {
		changes["kuota"] = *r.Kuota
	}
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	if r.UPTID != nil {
		changes["upt_id"] = *r.UPTID
	}
	return changes
}
