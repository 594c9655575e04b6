// Package export produces JSONL snapshots of the lead collection, locally or
// to an S3-compatible bucket.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/leadflowhq/leadflow/internal/client"
	"github.com/leadflowhq/leadflow/internal/model"
)

// pageSize is the batch size used when walking the collection.
const pageSize = 100

// header is the first JSONL record written by JSONL.
type header struct {
	Version   string    `json:"version"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	LeadCount int       `json:"lead_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// JSONL writes every lead matching the given search and filters as JSONL to w,
// walking the server page by page. The header's lead count is the server's
// total, so a partially written file is detectable.
func JSONL(ctx context.Context, cl client.LeadFlowClient, search string, filters model.Filters, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	page := 1
	wroteHeader := false
	for {
		resp, err := cl.ListLeads(ctx, &client.ListLeadsRequest{
			Page:      page,
			Limit:     pageSize,
			Search:    search,
			Filters:   filters,
			SortBy:    "createdAt",
			SortOrder: "asc",
		})
		if err != nil {
			return fmt.Errorf("list leads page %d: %w", page, err)
		}

		if !wroteHeader {
			if err := enc.Encode(header{
				Version:   "1",
				Type:      "header",
				Timestamp: time.Now().UTC(),
				LeadCount: resp.Pagination.TotalLeads,
			}); err != nil {
				return fmt.Errorf("encode header: %w", err)
			}
			wroteHeader = true
		}

		for _, lead := range resp.Leads {
			if err := enc.Encode(record{Type: "lead", Data: lead}); err != nil {
				return fmt.Errorf("encode lead %s: %w", lead.ID, err)
			}
		}

		if !resp.Pagination.HasNextPage {
			return nil
		}
		page = resp.Pagination.CurrentPage + 1
	}
}
