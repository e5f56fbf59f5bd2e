package kelompoknelayan

import (
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// CreateRequest is the input for registering a fisherman group.
type CreateRequest struct {
	NamaKelompok       string `json:"nama_kelompok" binding:"required,min=3,max=150"`
	NIBKelompok        string `json:"nib_kelompok" binding:"required,max=50"`
	AlamatKelompok     string `json:"alamat_kelompok" binding:"omitempty,max=255"`
	JumlahAnggota      int    `json:"jumlah_anggota" binding:"omitempty,min=0"`
	KelasKelompok      string `json:"kelas_kelompok" binding:"omitempty,oneof=pemula madya utama"`
	TanggalPembentukan string `json:"tanggal_pembentukan" binding:"omitempty,datetime=2006-01-02"`
	IsActive           *bool  `json:"is_active"`
	OrganisasiID       *uint  `json:"organisasi_id"`
	UPTID              *uint  `json:"upt_id"`
	PenyuluhID         *uint  `json:"penyuluh_id"`
}

// Model builds the record to insert.
func (r CreateRequest) Model() *domain.KelompokNelayan {
	return &domain.KelompokNelayan{
		NamaKelompok:       r.NamaKelompok,
		NIBKelompok:        r.NIBKelompok,
		AlamatKelompok:     r.AlamatKelompok,
		JumlahAnggota:      r.JumlahAnggota,
		KelasKelompok:      r.KelasKelompok,
		TanggalPembentukan: pkg.ParseDate(r.TanggalPembentukan),
		IsActive:           r.IsActive,
		OrganisasiID:       r.OrganisasiID,
		UPTID:              r.UPTID,
		PenyuluhID:         r.PenyuluhID,
	}
}

// UpdateRequest is the partial-update input; only supplied fields change.
type UpdateRequest struct {
	NamaKelompok       *string `json:"nama_kelompok" binding:"omitempty,min=3,max=150"`
	NIBKelompok        *string `json:"nib_kelompok" binding:"omitempty,max=50"`
	AlamatKelompok     *string `json:"alamat_kelompok" binding:"omitempty,max=255"`
	JumlahAnggota      *int    `json:"jumlah_anggota" binding:"omitempty,min=0"`
	KelasKelompok      *string `json:"kelas_kelompok" binding:"omitempty,oneof=pemula madya utama"`
	TanggalPembentukan *string `json:"tanggal_pembentukan" binding:"omitempty,datetime=2006-01-02"`
	IsActive           *bool   `json:"is_active"`
	OrganisasiID       *uint   `json:"organisasi_id"`
	UPTID              *uint   `json:"upt_id"`
	PenyuluhID         *uint   `json:"penyuluh_id"`
}

// Changes returns the column change set for the supplied fields.
func (r UpdateRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.NamaKelompok != nil {
		changes["nama_kelompok"] = *r.NamaKelompok
	}
	if r.NIBKelompok != nil {
		changes["nib_kelompok"] = *r.NIBKelompok
	}
	if r.AlamatKelompok != nil {
		changes["alamat_kelompok"] = *r.AlamatKelompok
	}
	if r.JumlahAnggota != nil {
		changes["jumlah_anggota"] = *r.JumlahAnggota
	}
	if r.KelasKelompok != nil {
		changes["kelas_kelompok"] = *r.KelasKelompok
	}
	if r.TanggalPembentukan != nil {
		changes["tanggal_pembentukan"] = pkg.ParseDate(*r.TanggalPembentukan)
	}
	if r.IsActive != nil {
		changes["is_active"] = *r.IsActive
	}
	if r.OrganisasiID != nil {
		changes["organisasi_id"] = *r.OrganisasiID
	}
	if r.UPTID != nil {
		changes["upt_id"] = *r.UPTID
	}
	if r.PenyuluhID != nil {
		changes["penyuluh_id"] = *r.PenyuluhID
	}
	return changes
}
