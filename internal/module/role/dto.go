package role

import "github.com/dinaskp/perikanan-backend/internal/domain"

// CreateRequest is the input for defining a role.
type CreateRequest struct {
	NamaRole  string `json:"nama_role" binding:"required,min=2,max=100"`
	Deskripsi string `json:"deskripsi"`
}

func (r CreateRequest) Model() *domain.Role {
	return &domain.Role{NamaRole: r.NamaRole, Deskripsi: r.Deskripsi}
}

// UpdateRequest is the partial-update input.
type UpdateRequest struct {
	NamaRole  *string `json:"nama_role" binding:"omitempty,min=2,max=100"`
	Deskripsi *string `json:"deskripsi"`
}

func (r UpdateRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.NamaRole != nil {
		changes["nama_role"] = *r.NamaRole
	}
	if r.Deskripsi != nil {
		changes["deskripsi"] = *r.Deskripsi
	}
	return changes
}
