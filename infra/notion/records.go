package notion

import (
	"context"
	"fmt"

	"github.com/radhian/remittance-docgen/entity"
)

// fieldSpec binds one record field to a database property. An empty prop
// means the database's title property, whatever it is called.
type fieldSpec[T any] struct {
	prop  string
	kind  FieldKind
	field func(*T) *string
}

var remitterFields = []fieldSpec[entity.Remitter]{
	{kind: KindTitle, field: func(r *entity.Remitter) *string { return &r.Name }},
	{prop: "Account No", kind: KindRichText, field: func(r *entity.Remitter) *string { return &r.AccountNo }},
	{prop: "Address", kind: KindRichText, field: func(r *entity.Remitter) *string { return &r.Address }},
	{prop: "Phone", kind: KindPhone, field: func(r *entity.Remitter) *string { return &r.Phone }},
	{prop: "ID Type", kind: KindSelect, field: func(r *entity.Remitter) *string { return &r.IDType }},
	{prop: "ID Value", kind: KindRichText, field: func(r *entity.Remitter) *string { return &r.IDValue }},
	{prop: "Signature", kind: KindFiles, field: func(r *entity.Remitter) *string { return &r.SignatureURL }},
}

var beneficiaryFields = []fieldSpec[entity.Beneficiary]{
	{kind: KindTitle, field: func(b *entity.Beneficiary) *string { return &b.BeneficiaryName }},
	{prop: "Beneficiary Account Number", kind: KindRichText, field: func(b *entity.Beneficiary) *string { return &b.BeneficiaryAccountNumber }},
	{prop: "Beneficiary Address", kind: KindRichText, field: func(b *entity.Beneficiary) *string { return &b.BeneficiaryAddress }},
	{prop: "Beneficiary Country", kind: KindSelect, field: func(b *entity.Beneficiary) *string { return &b.BeneficiaryCountry }},
	{prop: "Beneficiary Bank Name", kind: KindRichText, field: func(b *entity.Beneficiary) *string { return &b.BeneficiaryBankName }},
	{prop: "Beneficiary Bank Address", kind: KindRichText, field: func(b *entity.Beneficiary) *string { return &b.BeneficiaryBankAddress }},
	{prop: "Beneficiary Bank Country", kind: KindSelect, field: func(b *entity.Beneficiary) *string { return &b.BeneficiaryBankCountry }},
	{prop: "Beneficiary Bank SWIFT", kind: KindRichText, field: func(b *entity.Beneficiary) *string { return &b.BeneficiaryBankSwift }},
	{prop: "Intermediary Bank Name", kind: KindRichText, field: func(b *entity.Beneficiary) *string { return &b.IntermediaryBankName }},
	{prop: "Intermediary Bank Address", kind: KindRichText, field: func(b *entity.Beneficiary) *string { return &b.IntermediaryBankAddress }},
	{prop: "Intermediary Bank Country", kind: KindSelect, field: func(b *entity.Beneficiary) *string { return &b.IntermediaryBankCountry }},
	{prop: "Intermediary Bank SWIFT", kind: KindRichText, field: func(b *entity.Beneficiary) *string { return &b.IntermediaryBankSwift }},
}

func decodeRecord[T any](page Page, titleProp string, fields []fieldSpec[T]) T {
	var rec T
	for _, f := range fields {
		prop := f.prop
		if f.kind == KindTitle {
			prop = titleProp
		}
		*f.field(&rec) = Decode(f.kind, page.Properties[prop])
	}
	return rec
}

// encodeRecord builds the properties payload of rec. An empty file reference
// is left out so that writing a record never drops an uploaded signature.
func encodeRecord[T any](rec T, titleProp string, fields []fieldSpec[T]) map[string]interface{} {
	props := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		v := *f.field(&rec)
		if f.kind == KindFiles && v == "" {
			continue
		}
		prop := f.prop
		if f.kind == KindTitle {
			prop = titleProp
		}
		props[prop] = Encode(f.kind, v)
	}
	return props
}

func (c *Client) ListRemitters(ctx context.Context) ([]entity.Remitter, error) {
	return listRecords(ctx, c, c.remitterDB, remitterFields, setRemitterID)
}

func (c *Client) GetRemitter(ctx context.Context, id string) (entity.Remitter, error) {
	return getRecord(ctx, c, c.remitterDB, id, remitterFields, setRemitterID)
}

func (c *Client) CreateRemitter(ctx context.Context, r entity.Remitter) (entity.Remitter, error) {
	return writeRecord(ctx, c, c.remitterDB, "", r, remitterFields, setRemitterID)
}

func (c *Client) UpdateRemitter(ctx context.Context, id string, r entity.Remitter) (entity.Remitter, error) {
	return writeRecord(ctx, c, c.remitterDB, id, r, remitterFields, setRemitterID)
}

func (c *Client) ListBeneficiaries(ctx context.Context) ([]entity.Beneficiary, error) {
	return listRecords(ctx, c, c.beneficiaryDB, beneficiaryFields, setBeneficiaryID)
}

func (c *Client) GetBeneficiary(ctx context.Context, id string) (entity.Beneficiary, error) {
	return getRecord(ctx, c, c.beneficiaryDB, id, beneficiaryFields, setBeneficiaryID)
}

func (c *Client) CreateBeneficiary(ctx context.Context, b entity.Beneficiary) (entity.Beneficiary, error) {
	return writeRecord(ctx, c, c.beneficiaryDB, "", b, beneficiaryFields, setBeneficiaryID)
}

func (c *Client) UpdateBeneficiary(ctx context.Context, id string, b entity.Beneficiary) (entity.Beneficiary, error) {
	return writeRecord(ctx, c, c.beneficiaryDB, id, b, beneficiaryFields, setBeneficiaryID)
}

func setRemitterID(r *entity.Remitter, id string) { r.ID = id }
func setBeneficiaryID(b *entity.Beneficiary, id string) { b.ID = id }

func listRecords[T any](ctx context.Context, c *Client, dbID string, fields []fieldSpec[T], setID func(*T, string)) ([]T, error) {
	titleProp, err := c.TitleProperty(ctx, dbID)
	if err != nil {
		return nil, err
	}

	pages, err := c.QueryAll(ctx, dbID)
	if err != nil {
		return nil, fmt.Errorf("failed to query database %s: %w", dbID, err)
	}

	records := make([]T, 0, len(pages))
	for _, p := range pages {
		rec := decodeRecord(p, titleProp, fields)
		setID(&rec, p.ID)
		records = append(records, rec)
	}
	return records, nil
}

func getRecord[T any](ctx context.Context, c *Client, dbID, id string, fields []fieldSpec[T], setID func(*T, string)) (T, error) {
	var rec T

	titleProp, err := c.TitleProperty(ctx, dbID)
	if err != nil {
		return rec, err
	}

	page, err := c.GetPage(ctx, id)
	if err != nil {
		return rec, fmt.Errorf("failed to get record %s: %w", id, err)
	}

	rec = decodeRecord(page, titleProp, fields)
	setID(&rec, page.ID)
	return rec, nil
}

// writeRecord creates a page when id is empty and updates page id otherwise.
func writeRecord[T any](ctx context.Context, c *Client, dbID, id string, rec T, fields []fieldSpec[T], setID func(*T, string)) (T, error) {
	var out T

	titleProp, err := c.TitleProperty(ctx, dbID)
	if err != nil {
		return out, err
	}

	props := encodeRecord(rec, titleProp, fields)

	var page Page
	if id == "" {
		page, err = c.CreatePage(ctx, dbID, props)
	} else {
		page, err = c.UpdatePage(ctx, id, props)
	}
	if err != nil {
		return out, fmt.Errorf("failed to write record: %w", err)
	}

	out = decodeRecord(page, titleProp, fields)
	setID(&out, page.ID)
	return out, nil
}
