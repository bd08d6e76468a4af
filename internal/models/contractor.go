package models

// Contractor is a tenant or lessee party.
type Contractor struct {
	Base          `bson:",inline"`
	Name          string `bson:"name" json:"name"`
	Contact       string `bson:"contact" json:"contact"`
	Address       string `bson:"address" json:"address"`
	IsCorporation bool   `bson:"is_corporation" json:"isCorporation"`
}
