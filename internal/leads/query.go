// Package leads implements the lead collection controller: it owns the
// current search term, structured filters, and pagination cursor, and keeps
// the held lead page synchronized with the server as that state changes.
package leads

import (
	"context"

	"github.com/leadflowhq/leadflow/internal/client"
	"github.com/leadflowhq/leadflow/internal/model"
	"github.com/leadflowhq/leadflow/internal/notify"
)

// DefaultLimit is the page size used when none is configured.
const DefaultLimit = 20

// Controller maintains the current view of the lead collection. Every search
// or filter mutation re-fetches page 1; explicit page navigation preserves the
// active search and filters. Pagination metadata is server-authoritative: the
// controller never computes page counts itself.
type Controller struct {
	client  client.LeadFlowClient
	notify  notify.Notifier
	confirm func(prompt string) bool

	limit     int
	search    string
	filters   model.Filters
	sortBy    string
	sortOrder string

	leads      []*model.Lead
	pagination model.Pagination

	// gen guards against overlapping fetches: only the response matching the
	// latest request generation is applied, older ones are dropped.
	gen uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLimit sets the page size.
func WithLimit(limit int) Option {
	return func(c *Controller) { c.limit = limit }
}

// WithSort sets the sort column and order ("asc" or "desc").
func WithSort(by, order string) Option {
	return func(c *Controller) { c.sortBy, c.sortOrder = by, order }
}

// WithConfirm sets the gate invoked before a delete. Without one, deletes are
// always refused.
func WithConfirm(confirm func(prompt string) bool) Option {
	return func(c *Controller) { c.confirm = confirm }
}

// NewController creates a controller with no active search or filters.
func NewController(cl client.LeadFlowClient, n notify.Notifier, opts ...Option) *Controller {
	c := &Controller{
		client:  cl,
		notify:  n,
		confirm: func(string) bool { return false },
		limit:   DefaultLimit,
		filters: model.Filters{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Seed installs an initial search term and filter set without fetching.
// It is for one-shot callers that assemble their whole query up front;
// interactive callers should use SetSearch and SetFilter instead.
func (c *Controller) Seed(search string, filters model.Filters) {
	c.search = search
	if filters == nil {
		filters = model.Filters{}
	}
	c.filters = filters
}

// Fetch loads the given page at the current search/filter state. On success
// it replaces the held leads and pagination metadata; on failure it leaves
// both untouched and reports exactly one user-visible error.
func (c *Controller) Fetch(ctx context.Context, page int) error {
	c.gen++
	g := c.gen

	req := &client.ListLeadsRequest{
		Page:      page,
		Limit:     c.limit,
		Search:    c.search,
		Filters:   c.filters.Clone(),
		SortBy:    c.sortBy,
		SortOrder: c.sortOrder,
	}
	resp, err := c.client.ListLeads(ctx, req)
	if g != c.gen {
		// A newer fetch was issued while this one was in flight; its result,
		// success or failure, no longer describes the requested state.
		return nil
	}
	if err != nil {
		notify.APIError(c.notify, err)
		return err
	}

	c.leads = resp.Leads
	c.pagination = resp.Pagination
	return nil
}

// SetSearch replaces the search term and re-fetches from page 1.
func (c *Controller) SetSearch(ctx context.Context, term string) error {
	c.search = term
	return c.Fetch(ctx, 1)
}

// SetFilter activates, replaces, or (with a nil filter) removes a single
// filter, then re-fetches from page 1. Removed filters disappear from the
// serialized structure entirely.
func (c *Controller) SetFilter(ctx context.Context, name string, f *model.Filter) error {
	if f == nil {
		delete(c.filters, name)
	} else {
		c.filters[name] = *f
	}
	return c.Fetch(ctx, 1)
}

// ClearAll drops the search term and every filter, then re-fetches page 1.
func (c *Controller) ClearAll(ctx context.Context) error {
	c.search = ""
	c.filters = model.Filters{}
	return c.Fetch(ctx, 1)
}

// Next advances one page, preserving search and filters. At the last page it
// is a no-op: no request is issued.
func (c *Controller) Next(ctx context.Context) error {
	if !c.pagination.HasNextPage {
		return nil
	}
	return c.Fetch(ctx, c.pagination.CurrentPage+1)
}

// Prev goes back one page, preserving search and filters. At the first page
// it is a no-op: no request is issued.
func (c *Controller) Prev(ctx context.Context) error {
	if !c.pagination.HasPrevPage {
		return nil
	}
	return c.Fetch(ctx, c.pagination.CurrentPage-1)
}

// Delete removes a lead after the confirm gate approves. Without
// confirmation no request is issued. A confirmed, successful delete re-fetches
// the current page at the current search/filter state; the row is never
// removed optimistically.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if !c.confirm("Are you sure you want to delete this lead?") {
		return nil
	}
	if err := c.client.DeleteLead(ctx, id); err != nil {
		notify.APIError(c.notify, err)
		return err
	}
	c.notify.Successf("Lead deleted successfully")

	page := c.pagination.CurrentPage
	if page < 1 {
		page = 1
	}
	return c.Fetch(ctx, page)
}

// Leads returns the currently held page of leads.
func (c *Controller) Leads() []*model.Lead {
	return c.leads
}

// Pagination returns the server-reported paging metadata from the last
// successful fetch.
func (c *Controller) Pagination() model.Pagination {
	return c.pagination
}

// Search returns the active search term.
func (c *Controller) Search() string {
	return c.search
}

// Filters returns a copy of the active filters.
func (c *Controller) Filters() model.Filters {
	return c.filters.Clone()
}
