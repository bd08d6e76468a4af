package validation

import (
	"time"

	"github.com/KeisukeTTTT/estate-management/internal/models"
)

type TransactionInput struct {
	TransactionDate time.Time              `form:"transactionDate"`
	Type            models.TransactionType `form:"type" validate:"enum"`
	Amount          int64                  `form:"amount"`
	Description     *string                `form:"description"`
	ContractID      *string                `form:"contractId"`
}

var transactionMessages = messages{
	"transactionDate": "Enter a valid transaction date.",
	"type":            "Select a transaction type.",
	"amount":          "Enter a valid amount.",
	"amount.integer":  "The amount must be an integer.",
}

// ValidateTransaction parses a ledger entry. Blank description and contractId mean none.
func ValidateTransaction(raw Raw) (TransactionInput, FieldErrors) {
	p := newParser(raw, transactionMessages)
	in := TransactionInput{
		TransactionDate: p.date("transactionDate"),
		Type:            models.TransactionType(p.text("type")),
		Amount:          p.integer("amount"),
		Description:     p.optionalText("description"),
		ContractID:      p.optionalText("contractId"),
	}
	p.check(in)

	if !p.errs.Has("amount") {
		p.errs.Merge(CheckNonZeroAmount(in.Amount))
	}
	return in, p.errs
}

func (in TransactionInput) References() []Reference {
	return []Reference{
		{Field: "contractId", Kind: models.KindContract, ID: in.ContractID, Message: "The selected contract does not exist."},
	}
}
