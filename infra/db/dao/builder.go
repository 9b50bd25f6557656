package dao

import (
	"github.com/radhian/remittance-docgen/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	CreateDocumentGenerationLog(payload *model.DocumentGenerationLog) error
	GetDocumentGenerationLogs(limit int) ([]model.DocumentGenerationLog, error)
	CreateDocumentGenerationLogVariable(payload model.DocumentGenerationLogVariable) error
	GetDocumentGenerationLogVariablesByLogID(logID int64) ([]model.DocumentGenerationLogVariable, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
