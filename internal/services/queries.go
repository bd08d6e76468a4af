package services

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/KeisukeTTTT/estate-management/internal/db"
	"github.com/KeisukeTTTT/estate-management/internal/models"
)

var (
	roomWithProperty = db.Relation{As: "property", From: models.KindProperty, LocalField: "property_id"}

	contractRelations = []db.Relation{
		{As: "contractor", From: models.KindContractor, LocalField: "contractor_id"},
		{As: "room", From: models.KindRoom, LocalField: "room_id", Include: []db.Relation{roomWithProperty}},
	}

	// Newest first, as the dashboard listings show them.
	newestFirst = []db.SortField{db.Desc("created_at")}
)

func propertyListQuery() db.Query {
	return db.Query{Sort: newestFirst}
}

func contractorListQuery() db.Query {
	return db.Query{Sort: newestFirst}
}

func contractorOptionsQuery() db.Query {
	return db.Query{Sort: []db.SortField{db.Asc("name")}}
}

func roomOptionsQuery() db.Query {
	return db.Query{
		Include: []db.Relation{roomWithProperty},
		Sort:    []db.SortField{db.Asc("property.name"), db.Asc("room_number")},
	}
}

func contractListQuery() db.Query {
	return db.Query{Include: contractRelations, Sort: newestFirst}
}

// currentContractQuery selects leases a new ledger entry may be booked against.
func currentContractQuery() db.Query {
	current := make([]string, 0, 3)
	for _, s := range models.ContractStatuses {
		if s.Current() {
			current = append(current, string(s))
		}
	}
	return db.Query{
		Filter:  bson.M{"status": bson.M{"$in": current}},
		Include: contractRelations,
		Sort:    []db.SortField{db.Asc("contractor.name"), db.Asc("room.property.name")},
	}
}

func transactionListQuery() db.Query {
	return db.Query{
		Include: []db.Relation{{
			As: "contract", From: models.KindContract, LocalField: "contract_id", Optional: true,
			Include: contractRelations,
		}},
		Sort: []db.SortField{db.Desc("transaction_date"), db.Desc("created_at")},
	}
}

func inquiryListQuery() db.Query {
	return db.Query{
		Include: []db.Relation{{As: "contractor", From: models.KindContractor, LocalField: "contractor_id", Optional: true}},
		Sort:    newestFirst,
	}
}
