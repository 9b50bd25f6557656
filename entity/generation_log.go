package entity

type GenerationLog struct {
	ID               int64    `json:"id"`
	RequestID        string   `json:"request_id"`
	RemitterName     string   `json:"remitter_name"`
	BeneficiaryName  string   `json:"beneficiary_name"`
	Currency         string   `json:"currency"`
	AmountFigures    string   `json:"amount_figures"`
	OutputMode       string   `json:"output_mode"`
	FileName         string   `json:"file_name"`
	Status           int      `json:"status"`
	Result           string   `json:"result"`
	MissingVariables []string `json:"missing_variables,omitempty"`
	CreateTime       int64    `json:"create_time"`
	CreateBy         string   `json:"create_by"`
}
