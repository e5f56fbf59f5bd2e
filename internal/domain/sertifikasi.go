package domain

import "time"

// Sertifikasi is a certification issued to a fisherman group.
// NomorSertifikat is the natural key.
type Sertifikasi struct {
	BaseModel
	NomorSertifikat   string     `gorm:"size:50;uniqueIndex;not null" json:"nomor_sertifikat"`
	JenisSertifikasi  string     `gorm:"size:100" json:"jenis_sertifikasi"`
	LembagaPenerbit   string     `gorm:"size:150" json:"lembaga_penerbit"`
	TanggalTerbit     *time.Time `json:"tanggal_terbit"`
	TanggalKadaluarsa *time.Time `json:"tanggal_kadaluarsa"`
	Status            string     `gorm:"size:20" json:"status"`

	KelompokID *uint            `gorm:"index" json:"kelompok_id"`
	Kelompok   *KelompokNelayan `gorm:"foreignKey:KelompokID" json:"kelompok,omitempty"`
}

func (Sertifikasi) TableName() string { return "sertifikasi" }
