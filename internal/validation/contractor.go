package validation

type ContractorInput struct {
	Name          string `form:"name" validate:"required"`
	Contact       string `form:"contact" validate:"required"`
	Address       string `form:"address" validate:"required"`
	IsCorporation bool   `form:"isCorporation"`
}

var contractorMessages = messages{
	"name":    "Contractor name is required.",
	"contact": "Contact is required.",
	"address": "Address is required.",
}

// ValidateContractor treats any submitted isCorporation value as ticked.
func ValidateContractor(raw Raw) (ContractorInput, FieldErrors) {
	p := newParser(raw, contractorMessages)
	in := ContractorInput{
		Name:          p.text("name"),
		Contact:       p.text("contact"),
		Address:       p.text("address"),
		IsCorporation: p.checkbox("isCorporation"),
	}
	p.check(in)
	return in, p.errs
}
