package domain

import "time"

// Broker is a real-estate agent that receives leads via round-robin.
type Broker struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	UserID       string `json:"user_id,omitempty" bson:"user_id,omitempty"`
	ExternalCode string `json:"external_code,omitempty" bson:"external_code,omitempty"`
	Name         string `json:"name" bson:"name"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
	Photo        string `json:"photo,omitempty" bson:"photo,omitempty"`
	CRECI        string `json:"creci,omitempty" bson:"creci,omitempty"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`

	// Location, used for lead distribution
	Latitude     *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	City         string   `json:"city,omitempty" bson:"city,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty" bson:"neighborhood,omitempty"`

	// Lead rotation
	IsActive           bool       `json:"is_active" bson:"is_active"`
	LastLeadAssignedAt *time.Time `json:"last_lead_assigned_at,omitempty" bson:"last_lead_assigned_at,omitempty"`
	LeadCount          int        `json:"lead_count" bson:"lead_count"`

	// Social
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`

	// Stats
	TotalSales   int      `json:"total_sales" bson:"total_sales"`
	TotalRentals int      `json:"total_rentals" bson:"total_rentals"`
	Rating       *float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewCount  int      `json:"review_count" bson:"review_count"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
