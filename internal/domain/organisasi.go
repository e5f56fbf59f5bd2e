package domain

// Organisasi is an organizational unit of the agency.
// KodeOrganisasi is the natural key.
type Organisasi struct {
	BaseModel
	NamaOrganisasi string `gorm:"size:150;not null" json:"nama_organisasi"`
	KodeOrganisasi string `gorm:"size:50;uniqueIndex;not null" json:"kode_organisasi"`
	Alamat         string `gorm:"size:255" json:"alamat"`
	Telepon        string `gorm:"size:30" json:"telepon"`
	Email          string `gorm:"size:150" json:"email"`
}

func (Organisasi) TableName() string { return "organisasi" }

// Role is a named position within the agency. NamaRole is the natural key.
type Role struct {
	BaseModel
	NamaRole  string `gorm:"size:100;uniqueIndex;not null" json:"nama_role"`
	Deskripsi string `gorm:"type:text" json:"deskripsi"`
}

func (Role) TableName() string { return "role" }
