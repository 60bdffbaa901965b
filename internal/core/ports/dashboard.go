package ports

import (
	"context"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

// DashboardOverview carries the headline counters.
type DashboardOverview struct {
	TotalProperties  int64 `json:"total_properties"`
	ActiveProperties int64 `json:"active_properties"`
	TotalContacts    int64 `json:"total_contacts"`
	TotalUsers       int64 `json:"total_users"`
	TotalBrokers     int64 `json:"total_brokers"`
}

// DashboardSnapshot is the full dashboard payload. It is cached as a
// unit, so every field must be JSON round-trippable.
type DashboardSnapshot struct {
	Overview            DashboardOverview `json:"overview"`
	PropertiesByType    []GroupCount      `json:"properties_by_type"`
	PropertiesByPurpose []GroupCount      `json:"properties_by_purpose"`
	ContactsByStatus    []GroupCount      `json:"contacts_by_status"`
	RecentContacts      []domain.Contact  `json:"recent_contacts"`
	TopProperties       []domain.Property `json:"top_properties"`
}

// DashboardCache stores a snapshot with a TTL. Get returns (nil, nil)
// on a miss; errors are treated as misses by the service.
type DashboardCache interface {
	Get(ctx context.Context) (*DashboardSnapshot, error)
	Set(ctx context.Context, snapshot *DashboardSnapshot) error
}

// DashboardService aggregates the admin dashboard.
type DashboardService interface {
	Snapshot(ctx context.Context) (*DashboardSnapshot, error)
}
