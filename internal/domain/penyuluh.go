package domain

// Penyuluh is a fisheries extension agent assigned to assist groups in a
// coverage area. NIP is the civil servant identification number and the
// natural key.
type Penyuluh struct {
	BaseModel
	NamaPenyuluh  string `gorm:"size:150;not null" json:"nama_penyuluh"`
	NIP           string `gorm:"column:nip;size:30;uniqueIndex;not null" json:"nip"`
	Telepon       string `gorm:"size:30" json:"telepon"`
	Email         string `gorm:"size:150" json:"email"`
	WilayahBinaan string `gorm:"size:150" json:"wilayah_binaan"`
	IsActive      *bool  `json:"is_active"`
}

func (Penyuluh) TableName() string { return "penyuluh" }
