package sertifikasi

import (
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// CreateRequest is the input for recording a certification.
type CreateRequest struct {
	NomorSertifikat   string `json:"nomor_sertifikat" binding:"required,max=50"`
	JenisSertifikasi  string `json:"jenis_sertifikasi" binding:"omitempty,max=100"`
	LembagaPenerbit   string `json:"lembaga_penerbit" binding:"omitempty,max=150"`
	TanggalTerbit     string `json:"tanggal_terbit" binding:"omitempty,datetime=2006-01-02"`
	TanggalKadaluarsa string `json:"tanggal_kadaluarsa" binding:"omitempty,datetime=2006-01-02"`
	Status            string `json:"status" binding:"omitempty,oneof=aktif kadaluarsa dicabut"`
	KelompokID        *uint  `json:"kelompok_id"`
}

func (r CreateRequest) Model() *domain.Sertifikasi {
	return &domain.Sertifikasi{
		NomorSertifikat:   r.NomorSertifikat,
		JenisSertifikasi:  r.JenisSertifikasi,
		LembagaPenerbit:   r.LembagaPenerbit,
		TanggalTerbit:     pkg.ParseDate(r.TanggalTerbit),
		TanggalKadaluarsa: pkg.ParseDate(r.TanggalKadaluarsa),
		Status:            r.Status,
		KelompokID:        r.KelompokID,
	}
}

// UpdateRequest is the partial-update input.
type UpdateRequest struct {
	NomorSertifikat   *string `json:"nomor_sertifikat" binding:"omitempty,max=50"`
	JenisSertifikasi  *string `json:"jenis_sertifikasi" binding:"omitempty,max=100"`
	LembagaPenerbit   *string `json:"lembaga_penerbit" binding:"omitempty,max=150"`
	TanggalTerbit     *string `json:"tanggal_terbit" binding:"omitempty,datetime=2006-01-02"`
	TanggalKadaluarsa *string `json:"tanggal_kadaluarsa" binding:"omitempty,datetime=2006-01-02"`
	Status            *string `json:"status" binding:"omitempty,oneof=aktif kadaluarsa dicabut"`
	KelompokID        *uint   `json:"kelompok_id"`
}

func (r UpdateRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.NomorSertifikat != nil {
		changes["nomor_sertifikat"] = *r.NomorSertifikat
	}
	if r.JenisSertifikasi != nil {
		changes["jenis_sertifikasi"] = *r.JenisSertifikasi
	}
	if r.LembagaPenerbit != nil {
		changes["lembaga_penerbit"] = *r.LembagaPenerbit
	}
	if r.TanggalTerbit != nil {
		changes["tanggal_terbit"] = pkg.ParseDate(*r.TanggalTerbit)
	}
	if r.TanggalKadaluarsa != nil {
		changes["tanggal_kadaluarsa"] = pkg.ParseDate(*r.TanggalKadaluarsa)
	}
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	if r.KelompokID != nil {
		changes["kelompok_id"] = *r.KelompokID
	}
	return changes
}
