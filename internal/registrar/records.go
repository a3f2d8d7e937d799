package registrar

import (
	"context"
	"fmt"

	"github.com/favonia/regrobot/internal/domain"
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/tree"
)

// Record is a DNS record hosted by the registrar.
type Record struct {
	ID       string
	Name     string
	Type     string
	Content  string
	TTL      int64
	Priority int64
}

// Describe gives a one-line description of the record.
func (r Record) Describe() string {
	return fmt.Sprintf("%s %s %s (TTL %d)", r.Name, r.Type, r.Content, r.TTL)
}

func parseRecord(v tree.Value) (Record, error) {
	id := text(v, "id")
	if id == "" {
		return Record{}, fmt.Errorf("%w: no record ID in %s", ErrUnexpectedData, v) //nolint:exhaustruct
	}

	ttlField, _ := v.Get("ttl")
	ttl, _ := ttlField.Int64()
	prioField, _ := v.Get("prio")
	prio, _ := prioField.Int64()

	return Record{
		ID:       id,
		Name:     text(v, "name"),
		Type:     text(v, "type"),
		Content:  text(v, "content"),
		TTL:      ttl,
		Priority: prio,
	}, nil
}

// ListRecords lists the records of a domain hosted by the registrar.
func (h *Handle) ListRecords(ctx context.Context, ppfmt pp.PP, name domain.FQDN) ([]Record, error) {
	resp, err := h.call(ctx, ppfmt, CommandNameserverInfo, domainParams(name))
	if err != nil {
		return nil, err
	}

	field, _ := resp.Data.Get("record")
	items := field.Items()
	rs := make([]Record, 0, len(items))
	for _, item := range items {
		r, err := parseRecord(item)
		if err != nil {
			ppfmt.Errorf(pp.EmojiImpossible, "Failed to read the records of %s: %v", name.Describe(), err)
			return nil, err
		}
		rs = append(rs, r)
	}

	return rs, nil
}

// CreateRecord adds a record to a domain and returns the ID of the new record.
// The ID of the input record is ignored.
func (h *Handle) CreateRecord(ctx context.Context, ppfmt pp.PP, name domain.FQDN, r Record) (string, error) {
	fields := []tree.Field{
		{Key: "type", Value: tree.String(r.Type)},
		{Key: "content", Value: tree.String(r.Content)},
	}
	if r.Name != "" {
		fields = append(fields, tree.Field{Key: "name", Value: tree.String(r.Name)})
	}
	if r.TTL > 0 {
		fields = append(fields, tree.Field{Key: "ttl", Value: tree.Int(r.TTL)})
	}
	if r.Priority > 0 {
		fields = append(fields, tree.Field{Key: "prio", Value: tree.Int(r.Priority)})
	}

	resp, err := h.call(ctx, ppfmt, CommandRecordCreate, domainParams(name, fields...))
	if err != nil {
		return "", err
	}

	id := text(resp.Data, "id")
	if id == "" {
		err := fmt.Errorf("%w: no record ID in %s", ErrUnexpectedData, resp.Data)
		ppfmt.Errorf(pp.EmojiImpossible, "Created a record for %s but %v", name.Describe(), err)
		return "", err
	}

	ppfmt.Noticef(pp.EmojiCreate, "Created a record for %s: %s (ID: %s)", name.Describe(), r.Describe(), id)
	return id, nil
}

// DeleteRecord deletes a record by its ID.
func (h *Handle) DeleteRecord(ctx context.Context, ppfmt pp.PP, id string) error {
	if _, err := h.call(ctx, ppfmt, CommandRecordDelete,
		tree.Object(tree.Field{Key: "id", Value: tree.String(id)}),
	); err != nil {
		return err
	}

	ppfmt.Noticef(pp.EmojiDelete, "Deleted the record (ID: %s)", id)
	return nil
}

// CreateNameserverSet makes the registrar host the DNS zone of a domain,
// listing ns as its authoritative nameservers.
func (h *Handle) CreateNameserverSet(ctx context.Context, ppfmt pp.PP, name domain.FQDN, ns []domain.FQDN) error {
	if _, err := h.call(ctx, ppfmt, CommandNameserverCreate, domainParams(name,
		tree.Field{Key: "type", Value: tree.String("MASTER")},
		tree.Field{Key: "ns", Value: hostNames(ns)},
	)); err != nil {
		return err
	}

	ppfmt.Noticef(pp.EmojiCreate, "Created the DNS zone of %s with the nameservers %s",
		name.Describe(), describeNameservers(ns))
	return nil
}
