package models

import "time"

// Transaction is an append-only ledger entry. Amount is never zero; positive is income, negative is expense.
type Transaction struct {
	Base            `bson:",inline"`
	TransactionDate time.Time       `bson:"transaction_date" json:"transactionDate"`
	Type            TransactionType `bson:"type" json:"type"`
	Amount          int64           `bson:"amount" json:"amount"`
	Description     *string         `bson:"description" json:"description"`
	ContractID      *string         `bson:"contract_id" json:"contractId"`
}

func (t *Transaction) IsIncome() bool {
	return t.Amount > 0
}
