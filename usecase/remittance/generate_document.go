package remittance

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/radhian/remittance-docgen/consts"
	"github.com/radhian/remittance-docgen/entity"
)

// GenerateDocument builds the flat context for req, checks it against the
// template's placeholders and renders the document into the requested output.
func (u *remittanceUsecase) GenerateDocument(ctx context.Context, req entity.GenerateDocumentRequest) (*entity.GenerateDocumentResult, error) {
	if err := u.cfg.Validate(); err != nil {
		return nil, err
	}

	req.Extra.Currency = strings.TrimSpace(req.Extra.Currency)
	req.Extra.OutputMode = strings.ToLower(strings.TrimSpace(req.Extra.OutputMode))
	if req.Extra.OutputMode == "" {
		req.Extra.OutputMode = consts.OutputModeDownload
	}
	if err := u.validate.Struct(req.Extra); err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrInvalidRequest, err)
	}

	templatePath, err := u.cfg.TemplateFile()
	if err != nil {
		return nil, err
	}

	var outputPath string
	if req.Extra.OutputMode == consts.OutputModePath {
		if outputPath, err = u.resolveOutputPath(req.Extra.OutputPath); err != nil {
			return nil, err
		}
	}

	fc := u.BuildContext(ctx, req.Remitter, req.Beneficiary, req.Extra)
	attempt := u.newGenerationAttempt(req, fc)

	content, err := u.renderTemplate(templatePath, fc)
	if err != nil {
		u.recordGenerationAttempt(attempt, err)
		return nil, err
	}

	result := &entity.GenerateDocumentResult{
		FileName:   documentFileName(req.Beneficiary.BeneficiaryName, fc.Text(consts.FieldCurrency), fc.Text(consts.FieldAmountFigures), u.now().Format(consts.DateLayout)),
		OutputMode: req.Extra.OutputMode,
		Content:    content,
	}
	attempt.FileName = result.FileName

	switch req.Extra.OutputMode {
	case consts.OutputModeOverwrite:
		result.SavedPath = templatePath
	case consts.OutputModePath:
		result.SavedPath = outputPath
	}

	if result.SavedPath != "" {
		if err := writeDocument(result.SavedPath, content); err != nil {
			err = fmt.Errorf("%w: %v", consts.ErrRender, err)
			u.recordGenerationAttempt(attempt, err)
			return nil, err
		}
		log.Infof("[GenerateDocument] document written to %s", result.SavedPath)
	}

	u.recordGenerationAttempt(attempt, nil)
	log.Infof("[GenerateDocument] generated %s (%d bytes, mode=%s)", result.FileName, len(content), result.OutputMode)
	return result, nil
}

func (u *remittanceUsecase) renderTemplate(templatePath string, fc entity.FlatContext) ([]byte, error) {
	tpl, err := u.openTemplate(templatePath)
	if err != nil {
		log.Errorf("[GenerateDocument] failed to open template %s: %v", templatePath, err)
		return nil, renderError(err)
	}

	plan, err := u.reconciler.Reconcile(tpl.Placeholders(), fc)
	if err != nil {
		log.Warnf("[GenerateDocument] %v", err)
		return nil, err
	}

	content, err := tpl.Render(plan.Values)
	if err != nil {
		log.Errorf("[GenerateDocument] failed to render template: %v", err)
		return nil, renderError(err)
	}
	return content, nil
}

// renderError keeps the underlying failure's type and message.
func renderError(err error) error {
	if errors.Is(err, consts.ErrRender) {
		return err
	}
	return fmt.Errorf("%w: %T: %v", consts.ErrRender, err, err)
}

// resolveOutputPath places p under the configured output root. Relative paths
// are joined onto the root; anything that ends up outside it is rejected.
func (u *remittanceUsecase) resolveOutputPath(p string) (string, error) {
	root, err := u.cfg.OutputRoot()
	if err != nil {
		return "", err
	}

	target := filepath.Clean(p)
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}

	rel, err := filepath.Rel(root, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: output_path must be a file under %s", consts.ErrInvalidRequest, root)
	}
	return target, nil
}

// writeDocument writes through a temp file in the target directory so a
// failed write never leaves a partial document behind.
func writeDocument(path string, content []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func documentFileName(beneficiary, currency, amount, date string) string {
	if strings.TrimSpace(beneficiary) == "" {
		beneficiary = "Unknown"
	}
	name := fmt.Sprintf("Remittance_%s_%s_%s_%s.docx", beneficiary, currency, amount, date)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
