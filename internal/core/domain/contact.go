package domain

import "time"

// ContactType classifies what a lead is asking for.
type ContactType string

const (
	ContactInfo      ContactType = "INFO"
	ContactVisit     ContactType = "VISIT"
	ContactProposal  ContactType = "PROPOSAL"
	ContactFinancing ContactType = "FINANCING"
	ContactOther     ContactType = "OTHER"
)

// ContactStatus tracks a lead through the sales funnel.
type ContactStatus string

const (
	ContactNew         ContactStatus = "NEW"
	ContactContacted   ContactStatus = "CONTACTED"
	ContactScheduled   ContactStatus = "SCHEDULED"
	ContactNegotiating ContactStatus = "NEGOTIATING"
	ContactConverted   ContactStatus = "CONVERTED"
	ContactLost        ContactStatus = "LOST"
)

// Valid reports whether s is one of the known funnel states.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNew, ContactContacted, ContactScheduled, ContactNegotiating, ContactConverted, ContactLost:
		return true
	}
	return false
}

// Contact is a lead left by a visitor on a property listing.
type Contact struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	UserID     string        `json:"user_id,omitempty" bson:"user_id,omitempty"`
	PropertyID string        `json:"property_id" bson:"property_id"`
	BrokerID   string        `json:"broker_id,omitempty" bson:"broker_id,omitempty"`
	Name       string        `json:"name" bson:"name"`
	Email      string        `json:"email" bson:"email"`
	Phone      string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Message    string        `json:"message" bson:"message"`
	Type       ContactType   `json:"type" bson:"type"`
	Status     ContactStatus `json:"status" bson:"status"`
	Notes      string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
}
