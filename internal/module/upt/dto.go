package upt

import "github.com/dinaskp/perikanan-backend/internal/domain"

// CreateRequest is the input for registering a technical unit.
type CreateRequest struct {
	NamaUPT   string `json:"nama_upt" binding:"required,min=3,max=150"`
	KodeUPT   string `json:"kode_upt" binding:"required,max=50"`
	Alamat    string `json:"alamat" binding:"omitempty,max=255"`
	Wilayah   string `json:"wilayah" binding:"omitempty,max=100"`
	KepalaUPT string `json:"kepala_upt" binding:"omitempty,max=150"`
}

func (r CreateRequest) Model() *domain.UnitPelaksanaTeknis {
	return &domain.UnitPelaksanaTeknis{
		NamaUPT:   r.NamaUPT,
		KodeUPT:   r.KodeUPT,
		Alamat:    r.Alamat,
		Wilayah:   r.Wilayah,
		KepalaUPT: r.KepalaUPT,
	}
}

// UpdateRequest is the partial-update input.
type UpdateRequest struct {
	NamaUPT   *string `json:"nama_upt" binding:"omitempty,min=3,max=150"`
	KodeUPT   *string `json:"kode_upt" binding:"omitempty,max=50"`
	Alamat    *string `json:"alamat" binding:"omitempty,max=255"`
	Wilayah   *string `json:"wilayah" binding:"omitempty,max=100"`
	KepalaUPT *string `json:"kepala_upt" binding:"omitempty,max=150"`
}

func (r UpdateRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.NamaUPT != nil {
		changes["nama_upt"] = *r.NamaUPT
	}
	if r.KodeUPT != nil {
		changes["kode_upt"] = *r.KodeUPT
	}
	if r.Alamat != nil {
		changes["alamat"] = *r.Alamat
	}
	if r.Wilayah != nil {
		changes["wilayah"] = *r.Wilayah
	}
	if r.KepalaUPT != nil {
		changes["kepala_upt"] = *r.KepalaUPT
	}
	return changes
}
