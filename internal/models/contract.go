package models

import "time"

// Contract is a lease binding one Contractor to one Room. EndDate is always strictly after StartDate.
type Contract struct {
	Base          `bson:",inline"`
	ContractorID  string         `bson:"contractor_id" json:"contractorId"`
	RoomID        string         `bson:"room_id" json:"roomId"`
	StartDate     time.Time      `bson:"start_date" json:"startDate"`
	EndDate       time.Time      `bson:"end_date" json:"endDate"`
	Rent          int64          `bson:"rent" json:"rent"`
	ManagementFee int64          `bson:"management_fee" json:"managementFee"`
	Deposit       *int64         `bson:"deposit" json:"deposit"`
	KeyMoney      *int64         `bson:"key_money" json:"keyMoney"`
	Status        ContractStatus `bson:"status" json:"status"`
}
