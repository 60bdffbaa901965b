package domain

import "time"

// Property is a real-estate listing imported from an external XML feed.
type Property struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	ExternalCode     string     `json:"external_code" bson:"external_code"`
	ClientCode       string     `json:"client_code,omitempty" bson:"client_code,omitempty"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" bson:"updated_at"`
	RegistrationDate *time.Time `json:"registration_date,omitempty" bson:"registration_date,omitempty"`
	LastUpdateDate   *time.Time `json:"last_update_date,omitempty" bson:"last_update_date,omitempty"`

	// Location
	Country         string   `json:"country,omitempty" bson:"country,omitempty"`
	State           string   `json:"state,omitempty" bson:"state,omitempty"`
	City            string   `json:"city,omitempty" bson:"city,omitempty"`
	Neighborhood    string   `json:"neighborhood,omitempty" bson:"neighborhood,omitempty"`
	Address         string   `json:"address,omitempty" bson:"address,omitempty"`
	ZipCode         string   `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	CondominiumName string   `json:"condominium_name,omitempty" bson:"condominium_name,omitempty"`

	// Type and purpose (free-form feed values, e.g. "Apartamento" / "Venda")
	PropertyType string `json:"property_type" bson:"property_type"`
	Purpose      string `json:"purpose" bson:"purpose"`

	// Characteristics
	UsableArea    *float64 `json:"usable_area,omitempty" bson:"usable_area,omitempty"`
	TotalArea     *float64 `json:"total_area,omitempty" bson:"total_area,omitempty"`
	Bedrooms      int      `json:"bedrooms" bson:"bedrooms"`
	Suites        int      `json:"suites" bson:"suites"`
	Bathrooms     int      `json:"bathrooms" bson:"bathrooms"`
	ParkingSpaces int      `json:"parking_spaces" bson:"parking_spaces"`

	// Prices
	SalePrice        *float64 `json:"sale_price,omitempty" bson:"sale_price,omitempty"`
	RentalPrice      *float64 `json:"rental_price,omitempty" bson:"rental_price,omitempty"`
	IPTUPrice        *float64 `json:"iptu_price,omitempty" bson:"iptu_price,omitempty"`
	CondominiumPrice *float64 `json:"condominium_price,omitempty" bson:"condominium_price,omitempty"`
	PricePerSqm      *float64 `json:"price_per_sqm,omitempty" bson:"price_per_sqm,omitempty"`

	// Description
	Title       string `json:"title,omitempty" bson:"title,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// Amenities
	HasBBQ         bool `json:"has_bbq" bson:"has_bbq"`
	HasPool        bool `json:"has_pool" bson:"has_pool"`
	HasSauna       bool `json:"has_sauna" bson:"has_sauna"`
	HasServiceArea bool `json:"has_service_area" bson:"has_service_area"`
	HasBalcony     bool `json:"has_balcony" bson:"has_balcony"`
	HasElevator    bool `json:"has_elevator" bson:"has_elevator"`
	HasSecurity    bool `json:"has_security" bson:"has_security"`
	HasGym         bool `json:"has_gym" bson:"has_gym"`
	HasPartyRoom   bool `json:"has_party_room" bson:"has_party_room"`
	HasGarden      bool `json:"has_garden" bson:"has_garden"`

	// Status
	IsActive   bool `json:"is_active" bson:"is_active"`
	IsFeatured bool `json:"is_featured" bson:"is_featured"`

	// Stats
	ViewCount     int `json:"view_count" bson:"view_count"`
	ContactCount  int `json:"contact_count" bson:"contact_count"`
	FavoriteCount int `json:"favorite_count" bson:"favorite_count"`

	SiteURL   string `json:"site_url,omitempty" bson:"site_url,omitempty"`
	XMLSource string `json:"xml_source,omitempty" bson:"xml_source,omitempty"`
	BrokerID  string `json:"broker_id,omitempty" bson:"broker_id,omitempty"`
}
