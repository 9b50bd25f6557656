package remittance

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/radhian/remittance-docgen/config"
	"github.com/radhian/remittance-docgen/entity"
	"github.com/radhian/remittance-docgen/infra/db/dao"
)

// RecordStore is the external store holding remitter and beneficiary records.
type RecordStore interface {
	ListRemitters(ctx context.Context) ([]entity.Remitter, error)
	GetRemitter(ctx context.Context, id string) (entity.Remitter, error)
	CreateRemitter(ctx context.Context, r entity.Remitter) (entity.Remitter, error)
	UpdateRemitter(ctx context.Context, id string, r entity.Remitter) (entity.Remitter, error)

	ListBeneficiaries(ctx context.Context) ([]entity.Beneficiary, error)
	GetBeneficiary(ctx context.Context, id string) (entity.Beneficiary, error)
	CreateBeneficiary(ctx context.Context, b entity.Beneficiary) (entity.Beneficiary, error)
	UpdateBeneficiary(ctx context.Context, id string, b entity.Beneficiary) (entity.Beneficiary, error)

	FetchAsset(ctx context.Context, url string) ([]byte, error)
}

// Template is a document template artifact.
type Template interface {
	Placeholders() []string
	Render(values map[string]entity.ContextValue) ([]byte, error)
}

type TemplateLoader func(path string) (Template, error)

type RemittanceUsecase interface {
	GenerateDocument(ctx context.Context, req entity.GenerateDocumentRequest) (*entity.GenerateDocumentResult, error)
	BuildContext(ctx context.Context, remitter entity.Remitter, beneficiary entity.Beneficiary, extras entity.TransactionExtras) entity.FlatContext
	ResolveSignature(ctx context.Context, remitter entity.Remitter) *entity.InlineImage
	TemplateVariables(ctx context.Context) ([]string, error)

	ListRemitters(ctx context.Context) ([]entity.Remitter, error)
	GetRemitter(ctx context.Context, id string) (entity.Remitter, error)
	CreateRemitter(ctx context.Context, r entity.Remitter) (entity.Remitter, error)
	UpdateRemitter(ctx context.Context, id string, r entity.Remitter) (entity.Remitter, error)

	ListBeneficiaries(ctx context.Context) ([]entity.Beneficiary, error)
	GetBeneficiary(ctx context.Context, id string) (entity.Beneficiary, error)
	CreateBeneficiary(ctx context.Context, b entity.Beneficiary) (entity.Beneficiary, error)
	UpdateBeneficiary(ctx context.Context, id string, b entity.Beneficiary) (entity.Beneficiary, error)

	ExportRecords(ctx context.Context, kind string) ([]byte, error)
	GetGenerationLogs(limit int) ([]entity.GenerationLog, error)
}

type remittanceUsecase struct {
	cfg          config.Config
	store        RecordStore
	dao          dao.DaoMethod
	openTemplate TemplateLoader
	reconciler   Reconciler
	validate     *validator.Validate
	now          func() time.Time
}

// NewRemittanceUsecase wires the usecase. d may be nil, in which case
// generation attempts are not recorded.
func NewRemittanceUsecase(cfg config.Config, store RecordStore, d dao.DaoMethod, openTemplate TemplateLoader) RemittanceUsecase {
	return &remittanceUsecase{
		cfg:          cfg,
		store:        store,
		dao:          d,
		openTemplate: openTemplate,
		reconciler:   Reconciler{CaseSensitive: cfg.TemplateCaseSensitive},
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		now:          time.Now,
	}
}
