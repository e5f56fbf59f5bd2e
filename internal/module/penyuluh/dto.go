package penyuluh

import "github.com/dinaskp/perikanan-backend/internal/domain"

// CreateRequest is the input for registering an extension officer.
type CreateRequest struct {
	NamaPenyuluh  string `json:"nama_penyuluh" binding:"required,min=2,max=150"`
	NIP           string `json:"nip" binding:"required,max=30"`
	Telepon       string `json:"telepon" binding:"omitempty,max=20"`
	Email         string `json:"email" binding:"omitempty,email,max=150"`
	WilayahBinaan string `json:"wilayah_binaan" binding:"omitempty,max=150"`
	IsActive      *bool  `json:"is_active"`
}

func (r CreateRequest) Model() *domain.Penyuluh {
	return &domain.Penyuluh{
		NamaPenyuluh:  r.NamaPenyuluh,
		NIP:           r.NIP,
		Telepon:       r.Telepon,
		Email:         r.Email,
		WilayahBinaan: r.WilayahBinaan,
		IsActive:      r.IsActive,
	}
}

// UpdateRequest is the partial-update input.
type UpdateRequest struct {
	NamaPenyuluh  *string `json:"nama_penyuluh" binding:"omitempty,min=2,max=150"`
	NIP           *string `json:"nip" binding:"omitempty,max=30"`
	Telepon       *string `json:"telepon" binding:"omitempty,max=20"`
	Email         *string `json:"email" binding:"omitempty,email,max=150"`
	WilayahBinaan *string `json:"wilayah_binaan" binding:"omitempty,max=150"`
	IsActive      *bool   `json:"is_active"`
}

func (r UpdateRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.NamaPenyuluh != nil {
		changes["nama_penyuluh"] = *r.NamaPenyuluh
	}
	if r.NIP != nil {
		changes["nip"] = *r.NIP
	}
	if r.Telepon != nil {
		changes["telepon"] = *r.Telepon
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.WilayahBinaan != nil {
		changes["wilayah_binaan"] = *r.WilayahBinaan
	}
	if r.IsActive != nil {
		changes["is_active"] = *r.IsActive
	}
	return changes
}
