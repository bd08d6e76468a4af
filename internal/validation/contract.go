package validation

import (
	"time"

	"github.com/KeisukeTTTT/estate-management/internal/models"
)

type ContractInput struct {
	ContractorID  string                `form:"contractorId" validate:"required"`
	RoomID        string                `form:"roomId" validate:"required"`
	StartDate     time.Time             `form:"startDate"`
	EndDate       time.Time             `form:"endDate"`
	Rent          int64                 `form:"rent" validate:"min=0"`
	ManagementFee int64                 `form:"managementFee" validate:"min=0"`
	Deposit       *int64                `form:"deposit" validate:"omitempty,min=0"`
	KeyMoney      *int64                `form:"keyMoney" validate:"omitempty,min=0"`
	Status        models.ContractStatus `form:"status" validate:"enum"`
}

var contractMessages = messages{
	"contractorId":           "Select a contractor.",
	"roomId":                 "Select a room.",
	"startDate":              "Enter a valid start date.",
	"endDate":                "Enter a valid end date.",
	"rent":                   "Rent must be an integer of 0 or more.",
	"rent.required":          "Rent is required.",
	"managementFee":          "Management fee must be an integer of 0 or more.",
	"managementFee.required": "Management fee is required.",
	"deposit":                "Deposit must be an integer of 0 or more.",
	"keyMoney":               "Key money must be an integer of 0 or more.",
	"status":                 "Select a valid contract status.",
}

// ValidateContract parses a lease. A blank status defaults to ACTIVE; blank deposit
// and key money mean none. The date order rule runs once both dates parsed.
func ValidateContract(raw Raw) (ContractInput, FieldErrors) {
	p := newParser(raw, contractMessages)
	in := ContractInput{
		ContractorID:  p.text("contractorId"),
		RoomID:        p.text("roomId"),
		StartDate:     p.date("startDate"),
		EndDate:       p.date("endDate"),
		Rent:          p.integer("rent"),
		ManagementFee: p.integer("managementFee"),
		Deposit:       p.optionalInteger("deposit"),
		KeyMoney:      p.optionalInteger("keyMoney"),
		Status:        models.ContractStatusActive,
	}
	if v := raw["status"]; !v.Blank() {
		in.Status = models.ContractStatus(v.String())
	}
	p.check(in)

	if !p.errs.Has("startDate") && !p.errs.Has("endDate") {
		p.errs.Merge(CheckDateOrder(in.StartDate, in.EndDate))
	}
	return in, p.errs
}

func (in ContractInput) References() []Reference {
	return []Reference{
		{Field: "contractorId", Kind: models.KindContractor, ID: &in.ContractorID, Message: "The selected contractor does not exist."},
		{Field: "roomId", Kind: models.KindRoom, ID: &in.RoomID, Message: "The selected room does not exist."},
	}
}
