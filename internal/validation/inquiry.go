package validation

import "github.com/KeisukeTTTT/estate-management/internal/models"

type InquiryInput struct {
	ContactName  string  `form:"contactName" validate:"required"`
	ContactInfo  string  `form:"contactInfo" validate:"required"`
	Subject      string  `form:"subject" validate:"required"`
	Details      string  `form:"details" validate:"required"`
	ContractorID *string `form:"contractorId"`
}

var inquiryMessages = messages{
	"contactName": "Name is required.",
	"contactInfo": "Contact information is required.",
	"subject":     "Subject is required.",
	"details":     "Details are required.",
}

// ValidateInquiry parses an inbound inquiry. A submitted status is ignored; new
// inquiries always start as RECEIVED.
func ValidateInquiry(raw Raw) (InquiryInput, FieldErrors) {
	p := newParser(raw, inquiryMessages)
	in := InquiryInput{
		ContactName:  p.text("contactName"),
		ContactInfo:  p.text("contactInfo"),
		Subject:      p.text("subject"),
		Details:      p.text("details"),
		ContractorID: p.optionalText("contractorId"),
	}
	p.check(in)
	return in, p.errs
}

func (in InquiryInput) References() []Reference {
	return []Reference{
		{Field: "contractorId", Kind: models.KindContractor, ID: in.ContractorID, Message: "The selected contractor does not exist."},
	}
}
