package remittance

import (
	"context"
	"fmt"
	"strings"

	"github.com/radhian/remittance-docgen/consts"
	"github.com/radhian/remittance-docgen/entity"
)

func (u *remittanceUsecase) ListRemitters(ctx context.Context) ([]entity.Remitter, error) {
	return u.store.ListRemitters(ctx)
}

func (u *remittanceUsecase) GetRemitter(ctx context.Context, id string) (entity.Remitter, error) {
	if err := requireID(id); err != nil {
		return entity.Remitter{}, err
	}
	return u.store.GetRemitter(ctx, id)
}

func (u *remittanceUsecase) CreateRemitter(ctx context.Context, r entity.Remitter) (entity.Remitter, error) {
	if strings.TrimSpace(r.Name) == "" {
		return entity.Remitter{}, fmt.Errorf("%w: name is required", consts.ErrInvalidRequest)
	}
	return u.store.CreateRemitter(ctx, r)
}

func (u *remittanceUsecase) UpdateRemitter(ctx context.Context, id string, r entity.Remitter) (entity.Remitter, error) {
	if err := requireID(id); err != nil {
		return entity.Remitter{}, err
	}
	if strings.TrimSpace(r.Name) == "" {
		return entity.Remitter{}, fmt.Errorf("%w: name is required", consts.ErrInvalidRequest)
	}
	return u.store.UpdateRemitter(ctx, id, r)
}

func (u *remittanceUsecase) ListBeneficiaries(ctx context.Context) ([]entity.Beneficiary, error) {
	return u.store.ListBeneficiaries(ctx)
}

func (u *remittanceUsecase) GetBeneficiary(ctx context.Context, id string) (entity.Beneficiary, error) {
	if err := requireID(id); err != nil {
		return entity.Beneficiary{}, err
	}
	return u.store.GetBeneficiary(ctx, id)
}

func (u *remittanceUsecase) CreateBeneficiary(ctx context.Context, b entity.Beneficiary) (entity.Beneficiary, error) {
	if strings.TrimSpace(b.BeneficiaryName) == "" {
		return entity.Beneficiary{}, fmt.Errorf("%w: beneficiary_name is required", consts.ErrInvalidRequest)
	}
	return u.store.CreateBeneficiary(ctx, b)
}

func (u *remittanceUsecase) UpdateBeneficiary(ctx context.Context, id string, b entity.Beneficiary) (entity.Beneficiary, error) {
	if err := requireID(id); err != nil {
		return entity.Beneficiary{}, err
	}
	if strings.TrimSpace(b.BeneficiaryName) == "" {
		return entity.Beneficiary{}, fmt.Errorf("%w: beneficiary_name is required", consts.ErrInvalidRequest)
	}
	return u.store.UpdateBeneficiary(ctx, id, b)
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", consts.ErrInvalidRequest)
	}
	return nil
}
