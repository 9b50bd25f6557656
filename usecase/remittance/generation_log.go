package remittance

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"github.com/radhian/remittance-docgen/config"
	"github.com/radhian/remittance-docgen/consts"
	"github.com/radhian/remittance-docgen/entity"
	"github.com/radhian/remittance-docgen/infra/db/model"
)

func (u *remittanceUsecase) newGenerationAttempt(req entity.GenerateDocumentRequest, fc entity.FlatContext) *model.DocumentGenerationLog {
	operator := req.Operator
	if operator == "" {
		operator = "system"
	}
	return &model.DocumentGenerationLog{
		RequestID:       uuid.NewString(),
		RemitterName:    fc.Text(consts.FieldRemitterName),
		BeneficiaryName: fc.Text(consts.FieldBeneficiaryName),
		Currency:        fc.Text(consts.FieldCurrency),
		AmountFigures:   fc.Text(consts.FieldAmountFigures),
		OutputMode:      req.Extra.OutputMode,
		CreateBy:        operator,
	}
}

// recordGenerationAttempt stores the outcome of one attempt. Storage failures
// are logged only.
func (u *remittanceUsecase) recordGenerationAttempt(attempt *model.DocumentGenerationLog, genErr error) {
	if u.dao == nil {
		return
	}

	timeNowUnix := u.now().Unix()
	attempt.CreateTime = timeNowUnix

	var missingErr *MissingPlaceholdersError
	switch {
	case genErr == nil:
		attempt.Status = consts.StatusGenerated
	case errors.As(genErr, &missingErr):
		attempt.Status = consts.StatusMissingVariables
		attempt.Result = genErr.Error()
	default:
		attempt.Status = consts.StatusFailed
		attempt.Result = genErr.Error()
	}

	if err := u.dao.CreateDocumentGenerationLog(attempt); err != nil {
		log.Errorf("[GenerationLog] request %s: %v", attempt.RequestID, err)
		return
	}

	if missingErr == nil {
		return
	}
	for _, name := range missingErr.Missing {
		variable := model.DocumentGenerationLogVariable{
			DocumentGenerationLogID: attempt.ID,
			VariableName:            name,
			CreateTime:              timeNowUnix,
		}
		if err := u.dao.CreateDocumentGenerationLogVariable(variable); err != nil {
			log.Errorf("[GenerationLog] request %s: %v", attempt.RequestID, err)
			return
		}
	}
}

func (u *remittanceUsecase) GetGenerationLogs(limit int) ([]entity.GenerationLog, error) {
	if u.dao == nil {
		return nil, fmt.Errorf("%w: generation log is disabled (DB_HOST not set)", config.ErrConfiguration)
	}
	if limit <= 0 {
		limit = consts.DefaultLogLimit
	}

	logs, err := u.dao.GetDocumentGenerationLogs(limit)
	if err != nil {
		return nil, err
	}

	result := make([]entity.GenerationLog, 0, len(logs))
	for _, l := range logs {
		entry := entity.GenerationLog{
			ID:              l.ID,
			RequestID:       l.RequestID,
			RemitterName:    l.RemitterName,
			BeneficiaryName: l.BeneficiaryName,
			Currency:        l.Currency,
			AmountFigures:   l.AmountFigures,
			OutputMode:      l.OutputMode,
			FileName:        l.FileName,
			Status:          l.Status,
			Result:          l.Result,
			CreateTime:      l.CreateTime,
			CreateBy:        l.CreateBy,
		}

		if l.Status == consts.StatusMissingVariables {
			variables, err := u.dao.GetDocumentGenerationLogVariablesByLogID(l.ID)
			if err != nil {
				return nil, err
			}
			for _, v := range variables {
				entry.MissingVariables = append(entry.MissingVariables, v.VariableName)
			}
		}

		result = append(result, entry)
	}
	return result, nil
}
