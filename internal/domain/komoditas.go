package domain

// Komoditas is a traded fisheries commodity (fish, shrimp, seaweed, ...).
// KodeKomoditas is the natural key.
type Komoditas struct {
	BaseModel
	NamaKomoditas string `gorm:"size:150;not null" json:"nama_komoditas"`
	KodeKomoditas string `gorm:"size:50;uniqueIndex;not null" json:"kode_komoditas"`
	Jenis         string `gorm:"size:50" json:"jenis"`
	Satuan        string `gorm:"size:20" json:"satuan"`
	Deskripsi     string `gorm:"type:text" json:"deskripsi"`
	IsActive      *bool  `json:"is_active"`
}

func (Komoditas) TableName() string { return "komoditas" }
