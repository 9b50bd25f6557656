package entity

type Remitter struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	AccountNo    string `json:"account_no"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	IDType       string `json:"id_type"`
	IDValue      string `json:"id_value"`
	SignatureURL string `json:"signature_url,omitempty"`
}

type Beneficiary struct {
	ID                       string `json:"id,omitempty"`
	BeneficiaryName          string `json:"beneficiary_name"`
	BeneficiaryAccountNumber string `json:"beneficiary_account_number"`
	BeneficiaryAddress       string `json:"beneficiary_address"`
	BeneficiaryCountry       string `json:"beneficiary_country"`

	BeneficiaryBankName    string `json:"beneficiary_bank_name"`
	BeneficiaryBankAddress string `json:"beneficiary_bank_address"`
	BeneficiaryBankCountry string `json:"beneficiary_bank_country"`
	BeneficiaryBankSwift   string `json:"beneficiary_bank_swift"`

	IntermediaryBankName    string `json:"intermediary_bank_name"`
	IntermediaryBankAddress string `json:"intermediary_bank_address"`
	IntermediaryBankCountry string `json:"intermediary_bank_country"`
	IntermediaryBankSwift   string `json:"intermediary_bank_swift"`
}

// TransactionExtras carries the user supplied details of one transfer.
type TransactionExtras struct {
	Date          string `json:"date"`
	Currency      string `json:"currency" validate:"omitempty,alpha,len=3"`
	AmountFigures string `json:"amount_figures"`
	Charges       string `json:"charges"`
	Notes         string `json:"notes"`
	OutputMode    string `json:"output_mode" validate:"omitempty,oneof=download overwrite path"`
	OutputPath    string `json:"output_path" validate:"required_if=OutputMode path"`
}

type GenerateDocumentRequest struct {
	Remitter    Remitter          `json:"remitter"`
	Beneficiary Beneficiary       `json:"beneficiary"`
	Extra       TransactionExtras `json:"extra"`
	Operator    string            `json:"operator"`
}

type GenerateDocumentResult struct {
	FileName   string `json:"file_name"`
	OutputMode string `json:"output_mode"`
	SavedPath  string `json:"saved_path,omitempty"`
	Content    []byte `json:"-"`
}
