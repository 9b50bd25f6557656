package model

// DocumentGenerationLogVariable records one placeholder a template declared
// but the request could not fill.
type DocumentGenerationLogVariable struct {
	ID                      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	DocumentGenerationLogID int64  `gorm:"not null;index" json:"document_generation_log_id"`
	VariableName            string `gorm:"type:text;not null" json:"variable_name"`
	CreateTime              int64  `gorm:"not null" json:"create_time"`
}
