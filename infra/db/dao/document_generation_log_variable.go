package dao

import (
	"fmt"

	"github.com/radhian/remittance-docgen/infra/db/model"
)

func (d *dao) CreateDocumentGenerationLogVariable(payload model.DocumentGenerationLogVariable) error {
	if err := d.db.Create(&payload).Error; err != nil {
		return fmt.Errorf("failed to save missing variable: %v", err)
	}
	return nil
}

func (d *dao) GetDocumentGenerationLogVariablesByLogID(logID int64) ([]model.DocumentGenerationLogVariable, error) {
	var variables []model.DocumentGenerationLogVariable
	if err := d.db.
		Where("document_generation_log_id = ?", logID).
		Order("variable_name ASC").
		Find(&variables).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch missing variables: %w", err)
	}
	return variables, nil
}
