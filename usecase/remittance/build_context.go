package remittance

import (
	"context"
	"strings"

	"github.com/radhian/remittance-docgen/consts"
	"github.com/radhian/remittance-docgen/entity"
)

// BuildContext merges the three input records into one flat context holding
// every field of consts.ContextFields. Absent values become "".
func (u *remittanceUsecase) BuildContext(
	ctx context.Context,
	remitter entity.Remitter,
	beneficiary entity.Beneficiary,
	extras entity.TransactionExtras,
) entity.FlatContext {
	currency := normalizeCurrency(extras.Currency)

	date := strings.TrimSpace(extras.Date)
	if date == "" {
		date = u.now().Format(consts.DateLayout)
	}

	charges := extras.Charges
	if charges == "" {
		charges = u.cfg.DefaultCharges
	}

	amountFigures := strings.TrimSpace(extras.AmountFigures)

	fc := entity.FlatContext{
		consts.FieldBeneficiaryName:          entity.TextValue(beneficiary.BeneficiaryName),
		consts.FieldBeneficiaryAccountNumber: entity.TextValue(beneficiary.BeneficiaryAccountNumber),
		consts.FieldBeneficiaryAddress:       entity.TextValue(beneficiary.BeneficiaryAddress),
		consts.FieldBeneficiaryCountry:       entity.TextValue(beneficiary.BeneficiaryCountry),

		consts.FieldBeneficiaryBankName:    entity.TextValue(beneficiary.BeneficiaryBankName),
		consts.FieldBeneficiaryBankAddress: entity.TextValue(beneficiary.BeneficiaryBankAddress),
		consts.FieldBeneficiaryBankCountry: entity.TextValue(beneficiary.BeneficiaryBankCountry),
		consts.FieldBeneficiaryBankSwift:   entity.TextValue(beneficiary.BeneficiaryBankSwift),

		consts.FieldIntermediaryBankName:    entity.TextValue(beneficiary.IntermediaryBankName),
		consts.FieldIntermediaryBankAddress: entity.TextValue(beneficiary.IntermediaryBankAddress),
		consts.FieldIntermediaryBankCountry: entity.TextValue(beneficiary.IntermediaryBankCountry),
		consts.FieldIntermediaryBankSwift:   entity.TextValue(beneficiary.IntermediaryBankSwift),

		consts.FieldRemitterName:      entity.TextValue(remitter.Name),
		consts.FieldRemitterAccountNo: entity.TextValue(remitter.AccountNo),
		consts.FieldRemitterAddress:   entity.TextValue(remitter.Address),
		consts.FieldRemitterPhone:     entity.TextValue(remitter.Phone),
		consts.FieldRemitterIDType:    entity.TextValue(remitter.IDType),
		consts.FieldRemitterIDValue:   entity.TextValue(remitter.IDValue),

		consts.FieldDate:              entity.TextValue(date),
		consts.FieldCurrency:          entity.TextValue(currency),
		consts.FieldAmountFigures:     entity.TextValue(amountFigures),
		consts.FieldAmountFiguresText: entity.TextValue(AmountToWords(amountFigures, currency)),
		consts.FieldCharges:           entity.TextValue(charges),
		consts.FieldNotes:             entity.TextValue(extras.Notes),
	}

	if img := u.ResolveSignature(ctx, remitter); img != nil {
		fc[consts.FieldRemitterSignature] = entity.ImageValue(img)
	} else {
		fc[consts.FieldRemitterSignature] = entity.TextValue("")
	}

	return fc
}

func normalizeCurrency(s string) string {
	cur := strings.ToUpper(strings.TrimSpace(s))
	if cur == "" {
		return consts.DefaultCurrency
	}
	return cur
}
