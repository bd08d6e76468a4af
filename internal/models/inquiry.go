package models

// Inquiry is an inbound support or sales request, optionally tied to a Contractor.
type Inquiry struct {
	Base         `bson:",inline"`
	ContactName  string        `bson:"contact_name" json:"contactName"`
	ContactInfo  string        `bson:"contact_info" json:"contactInfo"`
	Subject      string        `bson:"subject" json:"subject"`
	Details      string        `bson:"details" json:"details"`
	ContractorID *string       `bson:"contractor_id" json:"contractorId"`
	Status       InquiryStatus `bson:"status" json:"status"`
}
