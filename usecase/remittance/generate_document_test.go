package remittance

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radhian/remittance-docgen/config"
	"github.com/radhian/remittance-docgen/consts"
	"github.com/radhian/remittance-docgen/entity"
	"github.com/radhian/remittance-docgen/infra/docx"
	"github.com/radhian/remittance-docgen/infra/docx/docxtest"
)

func sampleRequest() entity.GenerateDocumentRequest {
	return entity.GenerateDocumentRequest{
		Remitter:    entity.Remitter{Name: "Alice", AccountNo: "123"},
		Beneficiary: entity.Beneficiary{BeneficiaryName: "Bob"},
		Extra:       entity.TransactionExtras{Currency: "INR", AmountFigures: "1500.50"},
		Operator:    "ops@example.com",
	}
}

func TestGenerateDocument_Download(t *testing.T) {
	tpl := &fakeTemplate{placeholders: []string{"Beneficiary_Name", "amount_figures_text"}}
	d := &fakeDao{}
	u := newTestUsecase(testConfig(t), &fakeStore{}, d, tpl)

	result, err := u.GenerateDocument(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, "Remittance_Bob_INR_1500.50_2024-05-01.docx", result.FileName)
	assert.Equal(t, consts.OutputModeDownload, result.OutputMode)
	assert.Empty(t, result.SavedPath)
	assert.Equal(t, []byte("DOCX"), result.Content)

	assert.Len(t, tpl.rendered, 2)
	assert.Equal(t, "Bob", tpl.rendered["Beneficiary_Name"].Text)

	require.Len(t, d.logs, 1)
	assert.Equal(t, consts.StatusGenerated, d.logs[0].Status)
	assert.Equal(t, "ops@example.com", d.logs[0].CreateBy)
	assert.Equal(t, result.FileName, d.logs[0].FileName)
	assert.Equal(t, fixedNow.Unix(), d.logs[0].CreateTime)
	assert.Len(t, d.logs[0].RequestID, 36)
	assert.Empty(t, d.variables)
}

func TestGenerateDocument_MissingVariables(t *testing.T) {
	tpl := &fakeTemplate{placeholders: []string{"swift_code", "beneficiary_name", "po_number"}}
	d := &fakeDao{}
	u := newTestUsecase(testConfig(t), &fakeStore{}, d, tpl)

	_, err := u.GenerateDocument(context.Background(), sampleRequest())

	var missingErr *MissingPlaceholdersError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"po_number", "swift_code"}, missingErr.Missing)
	assert.Nil(t, tpl.rendered)

	require.Len(t, d.logs, 1)
	assert.Equal(t, consts.StatusMissingVariables, d.logs[0].Status)
	require.Len(t, d.variables, 2)
	assert.Equal(t, "po_number", d.variables[0].VariableName)
	assert.Equal(t, d.logs[0].ID, d.variables[0].DocumentGenerationLogID)
}

func TestGenerateDocument_OutputPath(t *testing.T) {
	cfg := testConfig(t)
	root, err := cfg.OutputRoot()
	require.NoError(t, err)

	tests := []struct {
		name       string
		outputPath string
		want       string
	}{
		{name: "absolute under root", outputPath: filepath.Join(root, "out", "tt.docx"), want: filepath.Join(root, "out", "tt.docx")},
		{name: "relative joins root", outputPath: "rel/out.docx", want: filepath.Join(root, "rel", "out.docx")},
		{name: "dot segments staying inside", outputPath: "a/../b/out.docx", want: filepath.Join(root, "b", "out.docx")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUsecase(cfg, &fakeStore{}, nil, &fakeTemplate{})

			req := sampleRequest()
			req.Extra.OutputMode = "PATH"
			req.Extra.OutputPath = tt.outputPath

			result, err := u.GenerateDocument(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, consts.OutputModePath, result.OutputMode)
			assert.Equal(t, tt.want, result.SavedPath)
			written, err := os.ReadFile(tt.want)
			require.NoError(t, err)
			assert.Equal(t, []byte("DOCX"), written)

			leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(tt.want), "*.tmp"))
			require.NoError(t, err)
			assert.Empty(t, leftovers)
		})
	}
}

func TestGenerateDocument_OutputPathOutsideRoot(t *testing.T) {
	outside := t.TempDir()

	tests := []struct {
		name       string
		outputDir  string
		outputPath string
	}{
		{name: "parent traversal", outputPath: "../victim/authorized_keys"},
		{name: "deep traversal", outputPath: "out/../../../etc/passwd"},
		{name: "absolute elsewhere", outputPath: filepath.Join(outside, "victim", "authorized_keys")},
		{name: "root itself", outputPath: "."},
		{name: "outside configured output dir", outputDir: "docs", outputPath: "../tt.docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.OutputDir = tt.outputDir
			d := &fakeDao{}
			u := newTestUsecase(cfg, &fakeStore{}, d, &fakeTemplate{})

			req := sampleRequest()
			req.Extra.OutputMode = consts.OutputModePath
			req.Extra.OutputPath = tt.outputPath

			_, err := u.GenerateDocument(context.Background(), req)
			assert.ErrorIs(t, err, consts.ErrInvalidRequest)
			assert.Empty(t, d.logs)

			_, statErr := os.Stat(filepath.Join(outside, "victim"))
			assert.True(t, os.IsNotExist(statErr))
			_, statErr = os.Stat(filepath.Join(filepath.Dir(cfg.BaseDir), "victim"))
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestGenerateDocument_FailedWriteLeavesNoTempFile(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.Mkdir(filepath.Join(cfg.BaseDir, "taken.docx"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.BaseDir, "taken.docx", "keep"), []byte("x"), 0o644))
	d := &fakeDao{}
	u := newTestUsecase(cfg, &fakeStore{}, d, &fakeTemplate{})

	req := sampleRequest()
	req.Extra.OutputMode = consts.OutputModePath
	req.Extra.OutputPath = "taken.docx"

	_, err := u.GenerateDocument(context.Background(), req)
	require.ErrorIs(t, err, consts.ErrRender)

	leftovers, err := filepath.Glob(filepath.Join(cfg.BaseDir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
	require.Len(t, d.logs, 1)
	assert.Equal(t, consts.StatusFailed, d.logs[0].Status)
}

func TestGenerateDocument_Overwrite(t *testing.T) {
	cfg := testConfig(t)
	u := newTestUsecase(cfg, &fakeStore{}, nil, &fakeTemplate{})

	req := sampleRequest()
	req.Extra.OutputMode = consts.OutputModeOverwrite

	result, err := u.GenerateDocument(context.Background(), req)
	require.NoError(t, err)

	templatePath, err := cfg.TemplateFile()
	require.NoError(t, err)
	assert.Equal(t, templatePath, result.SavedPath)
	written, err := os.ReadFile(templatePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("DOCX"), written)
}

func TestGenerateDocument_InvalidRequest(t *testing.T) {
	tests := []struct {
		name  string
		extra entity.TransactionExtras
	}{
		{name: "path mode without path", extra: entity.TransactionExtras{OutputMode: consts.OutputModePath}},
		{name: "unknown mode", extra: entity.TransactionExtras{OutputMode: "email"}},
		{name: "malformed currency", extra: entity.TransactionExtras{Currency: "US1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUsecase(testConfig(t), &fakeStore{}, nil, &fakeTemplate{})
			req := sampleRequest()
			req.Extra = tt.extra

			_, err := u.GenerateDocument(context.Background(), req)
			assert.ErrorIs(t, err, consts.ErrInvalidRequest)
		})
	}
}

func TestGenerateDocument_ConfigurationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "token missing", mutate: func(c *config.Config) { c.NotionToken = "" }},
		{name: "bad token prefix", mutate: func(c *config.Config) { c.NotionToken = "token" }},
		{name: "short database id", mutate: func(c *config.Config) { c.RemitterDatabaseID = "abc" }},
		{name: "template missing", mutate: func(c *config.Config) { c.TemplatePath = "nope.docx" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)
			d := &fakeDao{}
			u := newTestUsecase(cfg, &fakeStore{}, d, &fakeTemplate{})

			_, err := u.GenerateDocument(context.Background(), sampleRequest())
			assert.ErrorIs(t, err, config.ErrConfiguration)
			assert.Empty(t, d.logs)
		})
	}
}

func TestGenerateDocument_RenderFailure(t *testing.T) {
	d := &fakeDao{}
	u := newTestUsecase(testConfig(t), &fakeStore{}, d, &fakeTemplate{renderErr: errors.New("corrupt part")})

	_, err := u.GenerateDocument(context.Background(), sampleRequest())

	require.ErrorIs(t, err, consts.ErrRender)
	assert.Contains(t, err.Error(), "corrupt part")
	require.Len(t, d.logs, 1)
	assert.Equal(t, consts.StatusFailed, d.logs[0].Status)
}

func TestGenerateDocument_AuditFailureDoesNotFailGeneration(t *testing.T) {
	u := newTestUsecase(testConfig(t), &fakeStore{}, &fakeDao{createErr: errors.New("db down")}, &fakeTemplate{})

	_, err := u.GenerateDocument(context.Background(), sampleRequest())
	assert.NoError(t, err)
}

func TestGenerateDocument_WordTemplate(t *testing.T) {
	cfg := testConfig(t)
	cfg.TemplatePath = docxtest.WriteFile(t, cfg.BaseDir, "word.docx", docxtest.Paragraph(
		"Pay {{ beneficiary_name }} the sum of {{ amount_",
		"figures_text }} from {{ remitter_name }}",
	))

	u := newTestUsecase(cfg, &fakeStore{}, nil, nil)
	u.openTemplate = func(p string) (Template, error) {
		tpl, err := docx.Open(p)
		if err != nil {
			return nil, err
		}
		return tpl, nil
	}

	result, err := u.GenerateDocument(context.Background(), sampleRequest())
	require.NoError(t, err)

	body := docxtest.ReadEntry(t, result.Content, "word/document.xml")
	assert.Contains(t, body, "Pay Bob the sum of One Thousand Five Hundred Rupees And Fifty Paise Only from Alice")
}

func TestGetGenerationLogs(t *testing.T) {
	d := &fakeDao{}
	u := newTestUsecase(testConfig(t), &fakeStore{}, d, &fakeTemplate{placeholders: []string{"po_number"}})

	_, err := u.GenerateDocument(context.Background(), sampleRequest())
	require.Error(t, err)

	u.openTemplate = func(string) (Template, error) { return &fakeTemplate{}, nil }
	_, err = u.GenerateDocument(context.Background(), sampleRequest())
	require.NoError(t, err)

	logs, err := u.GetGenerationLogs(0)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, consts.StatusGenerated, logs[0].Status)
	assert.Empty(t, logs[0].MissingVariables)
	assert.Equal(t, consts.StatusMissingVariables, logs[1].Status)
	assert.Equal(t, []string{"po_number"}, logs[1].MissingVariables)

	logs, err = u.GetGenerationLogs(1)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestGetGenerationLogs_Disabled(t *testing.T) {
	u := newTestUsecase(testConfig(t), &fakeStore{}, nil, &fakeTemplate{})

	_, err := u.GetGenerationLogs(10)
	assert.ErrorIs(t, err, config.ErrConfiguration)
}

func TestDocumentFileName(t *testing.T) {
	assert.Equal(t, "Remittance_Unknown_USD__2024-05-01.docx", documentFileName(" ", "USD", "", "2024-05-01"))
	assert.Equal(t, "Remittance_A_B Co_EUR_10_2024-05-01.docx", documentFileName("A/B Co", "EUR", "10", "2024-05-01"))
}

func TestTemplateVariables(t *testing.T) {
	u := newTestUsecase(testConfig(t), &fakeStore{}, nil, &fakeTemplate{placeholders: []string{"notes", "date", "amount_figures"}})

	names, err := u.TemplateVariables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"amount_figures", "date", "notes"}, names)
}
