package consts

import "time"

const (
	// Output modes for a generated document
	OutputModeDownload  = "download"
	OutputModeOverwrite = "overwrite"
	OutputModePath      = "path"

	// Generation log status codes
	StatusGenerated        = 1
	StatusMissingVariables = 2
	StatusFailed           = 3

	// Record kinds
	RecordKindRemitter    = "remitter"
	RecordKindBeneficiary = "beneficiary"

	// Default config
	DefaultCurrency         = "USD"
	DefaultPort             = "5055"
	DefaultNotionBaseURL    = "https://api.notion.com/v1"
	DefaultNotionVersion    = "2022-06-28"
	DefaultNotionTimeout    = 30 * time.Second
	DefaultSignatureWidthMM = 40
	DefaultSchemaCacheTTL   = 10 * time.Minute
	DefaultLogLimit         = 50

	DateLayout   = "2006-01-02"
	DocxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	XlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Placeholder names of the flat context.
const (
	FieldBeneficiaryName          = "beneficiary_name"
	FieldBeneficiaryAccountNumber = "beneficiary_account_number"
	FieldBeneficiaryAddress       = "beneficiary_address"
	FieldBeneficiaryCountry       = "beneficiary_country"

	FieldBeneficiaryBankName    = "beneficiary_bank_name"
	FieldBeneficiaryBankAddress = "beneficiary_bank_address"
	FieldBeneficiaryBankCountry = "beneficiary_bank_country"
	FieldBeneficiaryBankSwift   = "beneficiary_bank_swift"

	FieldIntermediaryBankName    = "intermediary_bank_name"
	FieldIntermediaryBankAddress = "intermediary_bank_address"
	FieldIntermediaryBankCountry = "intermediary_bank_country"
	FieldIntermediaryBankSwift   = "intermediary_bank_swift"

	FieldRemitterName      = "remitter_name"
	FieldRemitterAccountNo = "remitter_account_no"
	FieldRemitterAddress   = "remitter_address"
	FieldRemitterPhone     = "remitter_phone"
	FieldRemitterIDType    = "remitter_id_type"
	FieldRemitterIDValue   = "remitter_id_value"
	FieldRemitterSignature = "remitter_signature"

	FieldDate              = "date"
	FieldCurrency          = "currency"
	FieldAmountFigures     = "amount_figures"
	FieldAmountFiguresText = "amount_figures_text"
	FieldCharges           = "charges"
	FieldNotes             = "notes"
)

// ContextFields lists every key the context builder emits.
var ContextFields = []string{
	FieldBeneficiaryName,
	FieldBeneficiaryAccountNumber,
	FieldBeneficiaryAddress,
	FieldBeneficiaryCountry,
	FieldBeneficiaryBankName,
	FieldBeneficiaryBankAddress,
	FieldBeneficiaryBankCountry,
	FieldBeneficiaryBankSwift,
	FieldIntermediaryBankName,
	FieldIntermediaryBankAddress,
	FieldIntermediaryBankCountry,
	FieldIntermediaryBankSwift,
	FieldRemitterName,
	FieldRemitterAccountNo,
	FieldRemitterAddress,
	FieldRemitterPhone,
	FieldRemitterIDType,
	FieldRemitterIDValue,
	FieldRemitterSignature,
	FieldDate,
	FieldCurrency,
	FieldAmountFigures,
	FieldAmountFiguresText,
	FieldCharges,
	FieldNotes,
}
