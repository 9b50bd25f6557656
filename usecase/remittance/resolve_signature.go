package remittance

import (
	"context"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/radhian/remittance-docgen/entity"
)

// signatureStrategy locates a signature reference for a remitter. ok reports
// whether this strategy produced one.
type signatureStrategy struct {
	name string
	find func(ctx context.Context, r entity.Remitter) (ref string, ok bool)
}

func (u *remittanceUsecase) signatureStrategies() []signatureStrategy {
	return []signatureStrategy{
		{name: "direct", find: signatureFromRecord},
		{name: "identity", find: u.signatureByIdentity},
		{name: "name", find: u.signatureByName},
	}
}

// firstSignatureRef tries each strategy in order and stops at the first hit.
func firstSignatureRef(ctx context.Context, r entity.Remitter, strategies []signatureStrategy) (string, string, bool) {
	for _, s := range strategies {
		if ref, ok := s.find(ctx, r); ok {
			return ref, s.name, true
		}
	}
	return "", "", false
}

// ResolveSignature finds and downloads the remitter's signature image. Every
// failure degrades to nil.
func (u *remittanceUsecase) ResolveSignature(ctx context.Context, r entity.Remitter) *entity.InlineImage {
	ref, strategy, ok := firstSignatureRef(ctx, r, u.signatureStrategies())
	if !ok {
		log.Debugf("[ResolveSignature] no signature for remitter %q", r.Name)
		return nil
	}

	data, err := u.store.FetchAsset(ctx, ref)
	if err != nil {
		log.Warnf("[ResolveSignature] failed to fetch signature (strategy=%s): %v", strategy, err)
		return nil
	}

	img, err := entity.NewInlineImage(data, u.cfg.SignatureWidthMM)
	if err != nil {
		log.Warnf("[ResolveSignature] unusable signature image (strategy=%s): %v", strategy, err)
		return nil
	}

	log.Infof("[ResolveSignature] signature resolved for remitter %q via %s", r.Name, strategy)
	return img
}

func signatureFromRecord(_ context.Context, r entity.Remitter) (string, bool) {
	ref := strings.TrimSpace(r.SignatureURL)
	return ref, ref != ""
}

func (u *remittanceUsecase) signatureByIdentity(ctx context.Context, r entity.Remitter) (string, bool) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return "", false
	}
	rec, err := u.store.GetRemitter(ctx, id)
	if err != nil {
		log.Warnf("[ResolveSignature] lookup by id %s failed: %v", id, err)
		return "", false
	}

	ref := strings.TrimSpace(rec.SignatureURL)
	return ref, ref != ""
}

// signatureByName scans every remitter for a case and whitespace insensitive
// name match. The first match in listing order wins.
func (u *remittanceUsecase) signatureByName(ctx context.Context, r entity.Remitter) (string, bool) {
	name := normalizeName(r.Name)
	if name == "" {
		return "", false
	}

	records, err := u.store.ListRemitters(ctx)
	if err != nil {
		log.Warnf("[ResolveSignature] listing remitters failed: %v", err)
		return "", false
	}

	for _, rec := range records {
		if normalizeName(rec.Name) == name {
			ref := strings.TrimSpace(rec.SignatureURL)
			return ref, ref != ""
		}
	}
	return "", false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
