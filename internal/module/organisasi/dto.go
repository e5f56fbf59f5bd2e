package organisasi

import "github.com/dinaskp/perikanan-backend/internal/domain"

// CreateRequest is the input for registering an organizational unit.
type CreateRequest struct {
	NamaOrganisasi string `json:"nama_organisasi" binding:"required,min=3,max=150"`
	KodeOrganisasi string `json:"kode_organisasi" binding:"required,max=50"`
	Alamat         string `json:"alamat" binding:"omitempty,max=255"`
	Telepon        string `json:"telepon" binding:"omitempty,max=30"`
	Email          string `json:"email" binding:"omitempty,email,max=150"`
}

func (r CreateRequest) Model() *domain.Organisasi {
	return &domain.Organisasi{
		NamaOrganisasi: r.NamaOrganisasi,
		KodeOrganisasi: r.KodeOrganisasi,
		Alamat:         r.Alamat,
		Telepon:        r.Telepon,
		Email:          r.Email,
	}
}

// UpdateRequest is the partial-update input.
type UpdateRequest struct {
	NamaOrganisasi *string `json:"nama_organisasi" binding:"omitempty,min=3,max=150"`
	KodeOrganisasi *string `json:"kode_organisasi" binding:"omitempty,max=50"`
	Alamat         *string `json:"alamat" binding:"omitempty,max=255"`
	Telepon        *string `json:"telepon" binding:"omitempty,max=30"`
	Email          *string `json:"email" binding:"omitempty,email,max=150"`
}

func (r UpdateRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.NamaOrganisasi != nil {
		changes["nama_organisasi"] = *r.NamaOrganisasi
	}
	if r.KodeOrganisasi != nil {
		changes["kode_organisasi"] = *r.KodeOrganisasi
	}
	if r.Alamat != nil {
		changes["alamat"] = *r.Alamat
	}
	if r.Telepon != nil {
		changes["telepon"] = *r.Telepon
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	return changes
}
