package model

type DocumentGenerationLog struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID       string `gorm:"size:36;not null;index" json:"request_id"`
	RemitterName    string `gorm:"type:text;not null" json:"remitter_name"`
	BeneficiaryName string `gorm:"type:text;not null" json:"beneficiary_name"`
	Currency        string `gorm:"size:3;not null" json:"currency"`
	AmountFigures   string `gorm:"type:text;not null" json:"amount_figures"`
	OutputMode      string `gorm:"size:20;not null" json:"output_mode"`
	FileName        string `gorm:"type:text;not null" json:"file_name"`
	Status          int    `gorm:"not null" json:"status"`
	Result          string `gorm:"type:text;not null" json:"result"`
	CreateTime      int64  `gorm:"not null" json:"create_time"`
	CreateBy        string `gorm:"type:text;not null" json:"create_by"`
}
