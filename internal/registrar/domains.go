package registrar

import (
	"context"
	"fmt"

	"github.com/jellydator/ttlcache/v3"

	"github.com/favonia/regrobot/internal/domain"
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/tree"
	"github.com/favonia/regrobot/internal/wire"
)

// Domain is a registered domain.
type Domain struct {
	Name        domain.FQDN
	Status      string
	Expiration  string
	Nameservers []domain.FQDN
}

func text(v tree.Value, key string) string {
	field, _ := v.Get(key)
	s, _ := field.Text()
	return s
}

// nameservers reads a list of host names. A single host name and a list of
// host names are both accepted.
func nameservers(v tree.Value) []domain.FQDN {
	field, _ := v.Get("ns")
	items := field.Items()
	ns := make([]domain.FQDN, 0, len(items))
	for _, item := range items {
		if s, ok := item.Text(); ok && s != "" {
			ns = append(ns, domain.FQDN(domain.StringToASCII(s)))
		}
	}
	return ns
}

func parseDomain(v tree.Value) (Domain, error) {
	name := text(v, "domain")
	if name == "" {
		return Domain{}, fmt.Errorf("%w: no domain name in %s", ErrUnexpectedData, v) //nolint:exhaustruct
	}

	return Domain{
		Name:        domain.FQDN(domain.StringToASCII(name)),
		Status:      text(v, "status"),
		Expiration:  text(v, "exDate"),
		Nameservers: nameservers(v),
	}, nil
}

func domainParams(name domain.FQDN, fields ...tree.Field) tree.Value {
	return tree.Object(append([]tree.Field{{Key: "domain", Value: tree.String(name.DNSNameASCII())}}, fields...)...)
}

func hostNames(ns []domain.FQDN) tree.Value {
	names := make([]string, 0, len(ns))
	for _, n := range ns {
		names = append(names, n.DNSNameASCII())
	}
	return tree.Strings(names...)
}

func describeNameservers(ns []domain.FQDN) string {
	return pp.EnglishJoinMap(domain.FQDN.Describe, ns)
}

// DomainInfo looks up one domain. It is never cached.
func (h *Handle) DomainInfo(ctx context.Context, ppfmt pp.PP, name domain.FQDN) (Domain, error) {
	resp, err := h.call(ctx, ppfmt, CommandDomainInfo, domainParams(name))
	if err != nil {
		return Domain{}, err //nolint:exhaustruct
	}

	d, err := parseDomain(resp.Data)
	if err != nil {
		ppfmt.Errorf(pp.EmojiImpossible, "Failed to read the information of %s: %v", name.Describe(), err)
		return Domain{}, err //nolint:exhaustruct
	}

	return d, nil
}

// ListDomains lists all domains of the account.
func (h *Handle) ListDomains(ctx context.Context, ppfmt pp.PP) ([]Domain, error) {
	if h.caching() {
		if ds := h.cache.listDomains.Get(struct{}{}); ds != nil {
			return ds.Value(), nil
		}
	}

	resp, err := h.call(ctx, ppfmt, CommandDomainList, tree.Null())
	if err != nil {
		return nil, err
	}

	field, _ := resp.Data.Get("domain")
	items := field.Items()
	ds := make([]Domain, 0, len(items))
	for _, item := range items {
		d, err := parseDomain(item)
		if err != nil {
			ppfmt.Errorf(pp.EmojiImpossible, "Failed to read the list of domains: %v", err)
			return nil, err
		}
		ds = append(ds, d)
	}

	if h.caching() {
		h.cache.listDomains.DeleteExpired()
		h.cache.listDomains.Set(struct{}{}, ds, ttlcache.DefaultTTL)
	}

	return ds, nil
}

// Nameservers looks up the current nameservers of a domain.
func (h *Handle) Nameservers(ctx context.Context, ppfmt pp.PP, name domain.FQDN) ([]domain.FQDN, error) {
	d, err := h.DomainInfo(ctx, ppfmt, name)
	if err != nil {
		return nil, err
	}
	return d.Nameservers, nil
}

// hasNameservers holds when a domain lookup shows exactly the nameservers ns,
// ignoring the order and the case.
func (h *Handle) hasNameservers(ns []domain.FQDN) func(context.Context, wire.Response) bool {
	return func(_ context.Context, resp wire.Response) bool {
		if h.options.Codes.Classify(resp.Code) != wire.ClassSuccess {
			return false
		}
		return domain.SameSet(nameservers(resp.Data), ns)
	}
}

// UpdateNameservers asks the registrar to delegate the domain to ns and then waits
// until the change is visible.
func (h *Handle) UpdateNameservers(ctx context.Context, ppfmt pp.PP, name domain.FQDN, ns []domain.FQDN) error {
	current, err := h.Nameservers(ctx, ppfmt, name)
	if err != nil {
		return err
	}
	if domain.SameSet(current, ns) {
		ppfmt.Infof(pp.EmojiAlreadyDone, "The nameservers of %s are already %s", name.Describe(), describeNameservers(ns))
		return nil
	}

	if _, err := h.call(ctx, ppfmt, CommandDomainUpdate,
		domainParams(name, tree.Field{Key: "ns", Value: hostNames(ns)}),
		wire.ClassPending,
	); err != nil {
		return err
	}
	ppfmt.Infof(pp.EmojiUpdate, "Requested the nameservers %s for %s", describeNameservers(ns), name.Describe())

	h.FlushCache()

	if _, err := h.poller.Poll(ctx, ppfmt, CommandDomainInfo, domainParams(name), h.hasNameservers(ns)); err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to confirm the new nameservers of %s: %v", name.Describe(), err)
		return err
	}

	ppfmt.Noticef(pp.EmojiGood, "Updated the nameservers of %s to %s", name.Describe(), describeNameservers(ns))
	return nil
}
