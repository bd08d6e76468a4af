package models

// Property is a managed building. It owns zero or more rooms.
type Property struct {
	Base    `bson:",inline"`
	Name    string       `bson:"name" json:"name"`
	Address string       `bson:"address" json:"address"`
	Type    PropertyType `bson:"type" json:"type"`
}

// Room is a rentable unit of a Property. Rooms are seeded, never created through a form.
type Room struct {
	Base          `bson:",inline"`
	PropertyID    string  `bson:"property_id" json:"propertyId"`
	RoomNumber    *string `bson:"room_number" json:"roomNumber"`
	Rent          int64   `bson:"rent" json:"rent"`
	ManagementFee int64   `bson:"management_fee" json:"managementFee"`
}
