package remittance

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/radhian/remittance-docgen/consts"
	"github.com/radhian/remittance-docgen/entity"
)

var remitterColumns = []string{
	"Name", "Account No", "Address", "Phone", "ID Type", "ID Value", "Signature",
}

var beneficiaryColumns = []string{
	"Beneficiary Name", "Beneficiary Account Number", "Beneficiary Address", "Beneficiary Country",
	"Beneficiary Bank Name", "Beneficiary Bank Address", "Beneficiary Bank Country", "Beneficiary Bank SWIFT",
	"Intermediary Bank Name", "Intermediary Bank Address", "Intermediary Bank Country", "Intermediary Bank SWIFT",
}

// ExportRecords writes every record of kind into a single sheet workbook.
func (u *remittanceUsecase) ExportRecords(ctx context.Context, kind string) ([]byte, error) {
	var (
		sheet  string
		header []string
		rows   [][]interface{}
	)

	switch kind {
	case consts.RecordKindRemitter:
		records, err := u.store.ListRemitters(ctx)
		if err != nil {
			return nil, err
		}
		sheet, header = "Remitters", remitterColumns
		for _, r := range records {
			rows = append(rows, []interface{}{r.Name, r.AccountNo, r.Address, r.Phone, r.IDType, r.IDValue, r.SignatureURL})
		}
	case consts.RecordKindBeneficiary:
		records, err := u.store.ListBeneficiaries(ctx)
		if err != nil {
			return nil, err
		}
		sheet, header = "Beneficiaries", beneficiaryColumns
		for _, b := range records {
			rows = append(rows, beneficiaryRow(b))
		}
	default:
		return nil, fmt.Errorf("%w: unknown record kind %q", consts.ErrInvalidRequest, kind)
	}

	return writeWorkbook(sheet, header, rows)
}

func beneficiaryRow(b entity.Beneficiary) []interface{} {
	return []interface{}{
		b.BeneficiaryName, b.BeneficiaryAccountNumber, b.BeneficiaryAddress, b.BeneficiaryCountry,
		b.BeneficiaryBankName, b.BeneficiaryBankAddress, b.BeneficiaryBankCountry, b.BeneficiaryBankSwift,
		b.IntermediaryBankName, b.IntermediaryBankAddress, b.IntermediaryBankCountry, b.IntermediaryBankSwift,
	}
}

func writeWorkbook(sheet string, header []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
