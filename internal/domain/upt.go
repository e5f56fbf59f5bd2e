package domain

// UnitPelaksanaTeknis is a technical implementation unit (UPT) of the agency.
// KodeUPT is the natural key.
type UnitPelaksanaTeknis struct {
	BaseModel
	NamaUPT   string `gorm:"column:nama_upt;size:150;not null" json:"nama_upt"`
	KodeUPT   string `gorm:"column:kode_upt;size:50;uniqueIndex;not null" json:"kode_upt"`
	Alamat    string `gorm:"size:255" json:"alamat"`
	Wilayah   string `gorm:"size:100" json:"wilayah"`
	KepalaUPT string `gorm:"column:kepala_upt;size:150" json:"kepala_upt"`
}

func (UnitPelaksanaTeknis) TableName() string { return "unit_pelaksana_teknis" }
