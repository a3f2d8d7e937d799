package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/favonia/regrobot/internal/domain"
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/registrar"
	"github.com/favonia/regrobot/internal/tree"
)

var errUsage = errors.New("wrong arguments")

// shortcut is a command implemented on top of the registrar commands.
type shortcut struct {
	usage string
	run   func(ctx context.Context, ppfmt pp.PP, h *registrar.Handle, args []string) error
}

//nolint:gochecknoglobals
var shortcuts = map[string]shortcut{
	"domains":         {"domains", runDomains},
	"info":            {"info DOMAIN", runInfo},
	"nameservers":     {"nameservers DOMAIN", runNameservers},
	"set-nameservers": {"set-nameservers DOMAIN NS [NS ...]", runSetNameservers},
	"records":         {"records DOMAIN", runRecords},
	"add-record":      {"add-record DOMAIN type=T content=C [name=N] [ttl=S] [prio=P]", runAddRecord},
	"delete-record":   {"delete-record ID", runDeleteRecord},
	"create-zone":     {"create-zone DOMAIN NS [NS ...]", runCreateZone},
}

func parseDomain(ppfmt pp.PP, s string) (domain.FQDN, error) {
	d, err := domain.New(s)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "%q is not a valid domain: %v", s, err)
		return "", err
	}
	return d, nil
}

func parseDomains(ppfmt pp.PP, ss []string) ([]domain.FQDN, error) {
	ds := make([]domain.FQDN, 0, len(ss))
	for _, s := range ss {
		d, err := parseDomain(ppfmt, s)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}

func exactly(n int, args []string) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %d, got %d", errUsage, n, len(args))
	}
	return nil
}

func atLeast(n int, args []string) error {
	if len(args) < n {
		return fmt.Errorf("%w: expected at least %d, got %d", errUsage, n, len(args))
	}
	return nil
}

func describeDomain(d registrar.Domain) tree.Value {
	ns := make([]string, 0, len(d.Nameservers))
	for _, n := range d.Nameservers {
		ns = append(ns, n.Describe())
	}
	return tree.Object(
		tree.Field{Key: "status", Value: tree.String(d.Status)},
		tree.Field{Key: "expiration", Value: tree.String(d.Expiration)},
		tree.Field{Key: "nameservers", Value: tree.Strings(ns...)},
	)
}

func runDomains(ctx context.Context, ppfmt pp.PP, h *registrar.Handle, args []string) error {
	if err := exactly(0, args); err != nil {
		return err
	}

	ds, err := h.ListDomains(ctx, ppfmt)
	if err != nil {
		return err
	}

	fields := make([]tree.Field, 0, len(ds))
	for _, d := range ds {
		fields = append(fields, tree.Field{Key: d.Name.Describe(), Value: tree.String(d.Status)})
	}
	printTree(ppfmt, "Domains", tree.Object(fields...))
	return nil
}

func runInfo(ctx context.Context, ppfmt pp.PP, h *registrar.Handle, args []string) error {
	if err := exactly(1, args); err != nil {
		return err
	}
	name, err := parseDomain(ppfmt, args[0])
	if err != nil {
		return err
	}

	d, err := h.DomainInfo(ctx, ppfmt, name)
	if err != nil {
		return err
	}

	printTree(ppfmt, d.Name.Describe(), describeDomain(d))
	return nil
}

func runNameservers(ctx context.Context, ppfmt pp.PP, h *registrar.Handle, args []string) error {
	if err := exactly(1, args); err != nil {
		return err
	}
	name, err := parseDomain(ppfmt, args[0])
	if err != nil {
		return err
	}

	ns, err := h.Nameservers(ctx, ppfmt, name)
	if err != nil {
		return err
	}

	ppfmt.Noticef(pp.EmojiBullet, "Nameservers of %s: %s", name.Describe(), pp.JoinMap(domain.FQDN.Describe, ns))
	return nil
}

func runSetNameservers(ctx context.Context, ppfmt pp.PP, h *registrar.Handle, args []string) error {
	if err := atLeast(2, args); err != nil {
		return err
	}
	name, err := parseDomain(ppfmt, args[0])
	if err != nil {
		return err
	}
	ns, err := parseDomains(ppfmt, args[1:])
	if err != nil {
		return err
	}

	return h.UpdateNameservers(ctx, ppfmt, name, ns)
}

func runRecords(ctx context.Context, ppfmt pp.PP, h *registrar.Handle, args []string) error {
	if err := exactly(1, args); err != nil {
		return err
	}
	name, err := parseDomain(ppfmt, args[0])
	if err != nil {
		return err
	}

	rs, err := h.ListRecords(ctx, ppfmt, name)
	if err != nil {
		return err
	}

	fields := make([]tree.Field, 0, len(rs))
	for _, r := range rs {
		fields = append(fields, tree.Field{Key: r.ID, Value: tree.String(r.Describe())})
	}
	printTree(ppfmt, "Records of "+name.Describe(), tree.Object(fields...))
	return nil
}

func runAddRecord(ctx context.Context, ppfmt pp.PP, h *registrar.Handle, args []string) error {
	if err := atLeast(1, args); err != nil {
		return err
	}
	name, err := parseDomain(ppfmt, args[0])
	if err != nil {
		return err
	}
	params, err := parseParams(args[1:])
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	get := func(key string) string {
		v, _ := params.Get(key)
		s, _ := v.Text()
		return s
	}
	getInt := func(key string) (int64, error) {
		s := get(key)
		if s == "" {
			return 0, nil
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q is not a number", errUsage, key, s)
		}
		return i, nil
	}

	ttl, err := getInt("ttl")
	if err != nil {
		return err
	}
	prio, err := getInt("prio")
	if err != nil {
		return err
	}

	record := registrar.Record{
		ID:       "",
		Name:     get("name"),
		Type:     get("type"),
		Content:  get("content"),
		TTL:      ttl,
		Priority: prio,
	}
	if record.Type == "" || record.Content == "" {
		return fmt.Errorf("%w: both type and content are required", errUsage)
	}

	_, err = h.CreateRecord(ctx, ppfmt, name, record)
	return err
}

func runDeleteRecord(ctx context.Context, ppfmt pp.PP, h *registrar.Handle, args []string) error {
	if err := exactly(1, args); err != nil {
		return err
	}
	return h.DeleteRecord(ctx, ppfmt, args[0])
}

func runCreateZone(ctx context.Context, ppfmt pp.PP, h *registrar.Handle, args []string) error {
	if err := atLeast(2, args); err != nil {
		return err
	}
	name, err := parseDomain(ppfmt, args[0])
	if err != nil {
		return err
	}
	ns, err := parseDomains(ppfmt, args[1:])
	if err != nil {
		return err
	}

	return h.CreateNameserverSet(ctx, ppfmt, name, ns)
}
