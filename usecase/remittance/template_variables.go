package remittance

import (
	"context"
	"sort"
)

// TemplateVariables lists the placeholder names declared by the configured template.
func (u *remittanceUsecase) TemplateVariables(_ context.Context) ([]string, error) {
	templatePath, err := u.cfg.TemplateFile()
	if err != nil {
		return nil, err
	}

	tpl, err := u.openTemplate(templatePath)
	if err != nil {
		return nil, renderError(err)
	}

	names := append([]string(nil), tpl.Placeholders()...)
	sort.Strings(names)
	return names, nil
}
