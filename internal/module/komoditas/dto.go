package komoditas

import "github.com/dinaskp/perikanan-backend/internal/domain"

// CreateRequest is the input for registering a commodity.
type CreateRequest struct {
	NamaKomoditas string `json:"nama_komoditas" binding:"required,min=2,max=150"`
	KodeKomoditas string `json:"kode_komoditas" binding:"required,max=50"`
	Jenis         string `json:"jenis" binding:"omitempty,max=50"`
	Satuan        string `json:"satuan" binding:"omitempty,max=20"`
	Deskripsi     string `json:"deskripsi"`
	IsActive      *bool  `json:"is_active"`
}

func (r CreateRequest) Model() *domain.Komoditas {
	return &domain.Komoditas{
		NamaKomoditas: r.NamaKomoditas,
		KodeKomoditas: r.KodeKomoditas,
		Jenis:         r.Jenis,
		Satuan:        r.Satuan,
		Deskripsi:     r.Deskripsi,
		IsActive:      r.IsActive,
	}
}

// UpdateRequest is the partial-update input.
type UpdateRequest struct {
	NamaKomoditas *string `json:"nama_komoditas" binding:"omitempty,min=2,max=150"`
	KodeKomoditas *string `json:"kode_komoditas" binding:"omitempty,max=50"`
	Jenis         *string `json:"jenis" binding:"omitempty,max=50"`
	Satuan        *string `json:"satuan" binding:"omitempty,max=20"`
	Deskripsi     *string `json:"deskripsi"`
	IsActive      *bool   `json:"is_active"`
}

func (r UpdateRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.NamaKomoditas != nil {
		changes["nama_komoditas"] = *r.NamaKomoditas
	}
	if r.KodeKomoditas != nil {
		changes["kode_komoditas"] = *r.KodeKomoditas
	}
	if r.Jenis != nil {
		changes["jenis"] = *r.Jenis
	}
	if r.Satuan != nil {
		changes["satuan"] = *r.Satuan
	}
	if r.Deskripsi != nil {
		changes["deskripsi"] = *r.Deskripsi
	}
	if r.IsActive != nil {
		changes["is_active"] = *r.IsActive
	}
	return changes
}
