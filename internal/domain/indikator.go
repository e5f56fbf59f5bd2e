package domain

// IndikatorKinerjaUtama (IKU) is an organizational key performance indicator.
// KodeIKU is the natural key.
type IndikatorKinerjaUtama struct {
	BaseModel
	KodeIKU       string  `gorm:"column:kode_iku;size:50;uniqueIndex;not null" json:"kode_iku"`
	NamaIndikator string  `gorm:"size:200;not null" json:"nama_indikator"`
	Satuan        string  `gorm:"size:30" json:"satuan"`
	Target        float64 `json:"target"`
	Realisasi     float64 `json:"realisasi"`
	Tahun         int     `gorm:"index" json:"tahun"`

	OrganisasiID *uint       `gorm:"index" json:"organisasi_id"`
	Organisasi   *Organisasi `gorm:"foreignKey:OrganisasiID" json:"organisasi,omitempty"`
}

func (IndikatorKinerjaUtama) TableName() string { return "iku" }

// IndikatorKinerjaIndividu (IKI) is an individual performance indicator
// cascaded from an IKU. KodeIKI is the natural key.
type IndikatorKinerjaIndividu struct {
	BaseModel
	KodeIKI       string  `gorm:"column:kode_iki;size:50;uniqueIndex;not null" json:"kode_iki"`
	NamaIndikator string  `gorm:"size:200;not null" json:"nama_indikator"`
	Satuan        string  `gorm:"size:30" json:"satuan"`
	Target        float64 `json:"target"`
	Realisasi     float64 `json:"realisasi"`
	Tahun         int     `gorm:"index" json:"tahun"`

	IKUID *uint                  `gorm:"column:iku_id;index" json:"iku_id"`
	IKU   *IndikatorKinerjaUtama `gorm:"foreignKey:IKUID" json:"iku,omitempty"`
}

func (IndikatorKinerjaIndividu) TableName() string { return "iki" }
