package remittance

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/radhian/remittance-docgen/config"
	"github.com/radhian/remittance-docgen/consts"
	"github.com/radhian/remittance-docgen/entity"
	"github.com/radhian/remittance-docgen/infra/db/model"
	"github.com/radhian/remittance-docgen/infra/docx/docxtest"
)

const testRecordID = "6f1c2a3b-4d5e-4f60-8a7b-9c0d1e2f3a4b"

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

type fakeStore struct {
	remitters     []entity.Remitter
	beneficiaries []entity.Beneficiary
	assets        map[string][]byte

	getErr   error
	listErr  error
	writeErr error

	getCalls   int
	listCalls  int
	fetchCalls int
	written    []interface{}
}

func (s *fakeStore) ListRemitters(context.Context) ([]entity.Remitter, error) {
	s.listCalls++
	return s.remitters, s.listErr
}

func (s *fakeStore) GetRemitter(_ context.Context, id string) (entity.Remitter, error) {
	s.getCalls++
	if s.getErr != nil {
		return entity.Remitter{}, s.getErr
	}
	for _, r := range s.remitters {
		if r.ID == id {
			return r, nil
		}
	}
	return entity.Remitter{}, consts.ErrNotFound
}

func (s *fakeStore) CreateRemitter(_ context.Context, r entity.Remitter) (entity.Remitter, error) {
	s.written = append(s.written, r)
	r.ID = "new"
	return r, s.writeErr
}

func (s *fakeStore) UpdateRemitter(_ context.Context, id string, r entity.Remitter) (entity.Remitter, error) {
	s.written = append(s.written, r)
	r.ID = id
	return r, s.writeErr
}

func (s *fakeStore) ListBeneficiaries(context.Context) ([]entity.Beneficiary, error) {
	return s.beneficiaries, s.listErr
}

func (s *fakeStore) GetBeneficiary(_ context.Context, id string) (entity.Beneficiary, error) {
	for _, b := range s.beneficiaries {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Beneficiary{}, consts.ErrNotFound
}

func (s *fakeStore) CreateBeneficiary(_ context.Context, b entity.Beneficiary) (entity.Beneficiary, error) {
	s.written = append(s.written, b)
	b.ID = "new"
	return b, s.writeErr
}

func (s *fakeStore) UpdateBeneficiary(_ context.Context, id string, b entity.Beneficiary) (entity.Beneficiary, error) {
	s.written = append(s.written, b)
	b.ID = id
	return b, s.writeErr
}

func (s *fakeStore) FetchAsset(_ context.Context, url string) ([]byte, error) {
	s.fetchCalls++
	data, ok := s.assets[url]
	if !ok {
		return nil, errors.New("asset not found")
	}
	return data, nil
}

type fakeTemplate struct {
	placeholders []string
	renderErr    error
	rendered     map[string]entity.ContextValue
}

func (f *fakeTemplate) Placeholders() []string {
	return f.placeholders
}

func (f *fakeTemplate) Render(values map[string]entity.ContextValue) ([]byte, error) {
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	f.rendered = values
	return []byte("DOCX"), nil
}

type fakeDao struct {
	logs      []model.DocumentGenerationLog
	variables []model.DocumentGenerationLogVariable
	createErr error
}

func (d *fakeDao) CreateDocumentGenerationLog(payload *model.DocumentGenerationLog) error {
	if d.createErr != nil {
		return d.createErr
	}
	payload.ID = int64(len(d.logs) + 1)
	d.logs = append(d.logs, *payload)
	return nil
}

func (d *fakeDao) GetDocumentGenerationLogs(limit int) ([]model.DocumentGenerationLog, error) {
	var out []model.DocumentGenerationLog
	for i := len(d.logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, d.logs[i])
	}
	return out, nil
}

func (d *fakeDao) CreateDocumentGenerationLogVariable(payload model.DocumentGenerationLogVariable) error {
	d.variables = append(d.variables, payload)
	return nil
}

func (d *fakeDao) GetDocumentGenerationLogVariablesByLogID(logID int64) ([]model.DocumentGenerationLogVariable, error) {
	var out []model.DocumentGenerationLogVariable
	for _, v := range d.variables {
		if v.DocumentGenerationLogID == logID {
			out = append(out, v)
		}
	}
	return out, nil
}

// testConfig returns a valid configuration with an existing template file.
func testConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tt.docx"), docxtest.Build(t, "", nil), 0o644))

	return config.Config{
		BaseDir:               dir,
		NotionToken:           "ntn_test",
		RemitterDatabaseID:    "0123456789abcdef0123456789abcdef",
		BeneficiaryDatabaseID: "0123456789abcdef0123456789abcdef",
		TemplatePath:          "tt.docx",
		SignatureWidthMM:      40,
	}
}

func newTestUsecase(cfg config.Config, store RecordStore, d *fakeDao, tpl Template) *remittanceUsecase {
	u := &remittanceUsecase{
		cfg:   cfg,
		store: store,
		openTemplate: func(string) (Template, error) {
			return tpl, nil
		},
		reconciler: Reconciler{CaseSensitive: cfg.TemplateCaseSensitive},
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		now:        func() time.Time { return fixedNow },
	}
	if d != nil {
		u.dao = d
	}
	return u
}
