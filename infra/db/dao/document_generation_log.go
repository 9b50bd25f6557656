package dao

import (
	"fmt"

	"github.com/radhian/remittance-docgen/infra/db/model"
)

func (d *dao) CreateDocumentGenerationLog(payload *model.DocumentGenerationLog) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to save generation log: %v", err)
	}
	return nil
}

func (d *dao) GetDocumentGenerationLogs(limit int) ([]model.DocumentGenerationLog, error) {
	var logs []model.DocumentGenerationLog
	if err := d.db.
		Order("create_time DESC").
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch generation logs: %w", err)
	}
	return logs, nil
}
