package remittance

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/radhian/remittance-docgen/config"
	"github.com/radhian/remittance-docgen/consts"
	"github.com/radhian/remittance-docgen/entity"
)

func readSheet(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestExportRecords_Remitters(t *testing.T) {
	store := &fakeStore{remitters: []entity.Remitter{
		{Name: "Alice", AccountNo: "123", Phone: "+65 1234", SignatureURL: "https://files/a.png"},
		{Name: "Carol", AccountNo: "456"},
	}}
	u := newTestUsecase(config.Config{}, store, nil, nil)

	data, err := u.ExportRecords(context.Background(), consts.RecordKindRemitter)
	require.NoError(t, err)

	rows := readSheet(t, data, "Remitters")
	require.Len(t, rows, 3)
	assert.Equal(t, remitterColumns, rows[0])
	assert.Equal(t, []string{"Alice", "123", "", "+65 1234", "", "", "https://files/a.png"}, rows[1])
	assert.Equal(t, []string{"Carol", "456"}, rows[2])
}

func TestExportRecords_Beneficiaries(t *testing.T) {
	store := &fakeStore{beneficiaries: []entity.Beneficiary{
		{BeneficiaryName: "Bob", BeneficiaryBankSwift: "HDFCINBB"},
	}}
	u := newTestUsecase(config.Config{}, store, nil, nil)

	data, err := u.ExportRecords(context.Background(), consts.RecordKindBeneficiary)
	require.NoError(t, err)

	rows := readSheet(t, data, "Beneficiaries")
	require.Len(t, rows, 2)
	assert.Equal(t, beneficiaryColumns, rows[0])
	assert.Equal(t, "Bob", rows[1][0])
	assert.Equal(t, "HDFCINBB", rows[1][7])
}

func TestExportRecords_Errors(t *testing.T) {
	u := newTestUsecase(config.Config{}, &fakeStore{}, nil, nil)
	_, err := u.ExportRecords(context.Background(), "invoice")
	assert.ErrorIs(t, err, consts.ErrInvalidRequest)

	upstream := errors.New("upstream down")
	u = newTestUsecase(config.Config{}, &fakeStore{listErr: upstream}, nil, nil)
	_, err = u.ExportRecords(context.Background(), consts.RecordKindRemitter)
	assert.ErrorIs(t, err, upstream)
}
