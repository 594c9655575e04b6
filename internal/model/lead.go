package model

import "time"

// Source is the acquisition channel for a lead.
type Source string

const (
	SourceWebsite     Source = "website"
	SourceFacebookAds Source = "facebook_ads"
	SourceGoogleAds   Source = "google_ads"
	SourceReferral    Source = "referral"
	SourceEvents      Source = "events"
	SourceOther       Source = "other"
)

// String returns the string representation of the source.
func (s Source) String() string {
	return string(s)
}

// IsValid checks whether the source is a known value.
func (s Source) IsValid() bool {
	switch s {
	case SourceWebsite, SourceFacebookAds, SourceGoogleAds, SourceReferral, SourceEvents, SourceOther:
		return true
	}
	return false
}

// LeadStatus represents the pipeline stage of a lead.
type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusQualified LeadStatus = "qualified"
	StatusLost      LeadStatus = "lost"
	StatusWon       LeadStatus = "won"
)

// String returns the string representation of the status.
func (s LeadStatus) String() string {
	return string(s)
}

// IsValid checks whether the status is a known value.
func (s LeadStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusLost, StatusWon:
		return true
	}
	return false
}

// Lead is a prospective customer record tracked through the sales pipeline.
// The server owns the record; the client holds a fetched copy. ID and
// CreatedAt are assigned server-side and never sent on create/update.
type Lead struct {
	ID             string     `json:"_id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Company        string     `json:"company"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Source         Source     `json:"source"`
	Status         LeadStatus `json:"status"`
	Score          int        `json:"score"`
	LeadValue      float64    `json:"leadValue"`
	IsQualified    bool       `json:"isQualified"`
	LastActivityAt *time.Time `json:"lastActivityAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// Name returns the lead's full display name.
func (l *Lead) Name() string {
	return l.FirstName + " " + l.LastName
}

// Pagination is the server-reported paging metadata on a lead listing.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalLeads  int  `json:"totalLeads"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// CountBucket is one entry of a grouped stats aggregation.
type CountBucket struct {
	ID    string `json:"_id"`
	Count int    `json:"count"`
}

// Stats is the dashboard overview aggregation.
type Stats struct {
	TotalLeads  int           `json:"totalLeads"`
	AvgScore    float64       `json:"avgScore"`
	StatusStats []CountBucket `json:"statusStats"`
	SourceStats []CountBucket `json:"sourceStats"`
}

// User is the authenticated account operating the client.
type User struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email"`
}
