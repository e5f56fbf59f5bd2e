package iku

import "github.com/dinaskp/perikanan-backend/internal/domain"

// CreateRequest is the input for registering an organizational indicator.
type CreateRequest struct {
	KodeIKU       string  `json:"kode_iku" binding:"required,max=50"`
	NamaIndikator string  `json:"nama_indikator" binding:"required,min=3,max=200"`
	Satuan        string  `json:"satuan" binding:"omitempty,max=30"`
	Target        float64 `json:"target" binding:"omitempty,gte=0"`
	Realisasi     float64 `json:"realisasi" binding:"omitempty,gte=0"`
	Tahun         int     `json:"tahun" binding:"omitempty,gte=2000,lte=2100"`
	OrganisasiID  *uint   `json:"organisasi_id"`
}

func (r CreateRequest) Model() *domain.IndikatorKinerjaUtama {
	return &domain.IndikatorKinerjaUtama{
		KodeIKU:       r.KodeIKU,
		NamaIndikator: r.NamaIndikator,
		Satuan:        r.Satuan,
		Target:        r.Target,
		Realisasi:     r.Realisasi,
		Tahun:         r.Tahun,
		OrganisasiID:  r.OrganisasiID,
	}
}

// UpdateRequest is the partial-update input.
type UpdateRequest struct {
	KodeIKU       *string  `json:"kode_iku" binding:"omitempty,max=50"`
	NamaIndikator *string  `json:"nama_indikator" binding:"omitempty,min=3,max=200"`
	Satuan        *string  `json:"satuan" binding:"omitempty,max=30"`
	Target        *float64 `json:"target" binding:"omitempty,gte=0"`
	Realisasi     *float64 `json:"realisasi" binding:"omitempty,gte=0"`
	Tahun         *int     `json:"tahun" binding:"omitempty,gte=2000,lte=2100"`
	OrganisasiID  *uint    `json:"organisasi_id"`
}

func (r UpdateRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.KodeIKU != nil {
		changes["kode_iku"] = *r.KodeIKU
	}
	if r.NamaIndikator != nil {
		changes["nama_indikator"] = *r.NamaIndikator
	}
	if r.Satuan != nil {
		changes["satuan"] = *r.Satuan
	}
	if r.Target != nil {
		changes["target"] = *r.Target
	}
	if r.Realisasi != nil {
		changes["realisasi"] = *r.Realisasi
	}
	if r.Tahun != nil {
		changes["tahun"] = *r.Tahun
	}
	if r.OrganisasiID != nil {
		changes["organisasi_id"] = *r.OrganisasiID
	}
	return changes
}
