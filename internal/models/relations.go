package models

// RoomWithProperty is a Room joined with its owning Property.
type RoomWithProperty struct {
	Room     `bson:",inline"`
	Property Property `bson:"property" json:"property"`
}

// DisplayName renders "<property> / <room number>", or just the property name for unnumbered rooms.
func (r *RoomWithProperty) DisplayName() string {
	if r.RoomNumber == nil || *r.RoomNumber == "" {
		return r.Property.Name
	}
	return r.Property.Name + " / " + *r.RoomNumber
}

// ContractWithRelations is a Contract joined with its Contractor, Room and the Room's Property.
type ContractWithRelations struct {
	Contract    `bson:",inline"`
	Contractor  Contractor       `bson:"contractor" json:"contractor"`
	Room        RoomWithProperty `bson:"room" json:"room"`
	StatusLabel string           `bson:"-" json:"statusLabel"`
	StatusTone  Tone             `bson:"-" json:"statusTone"`
}

func (c *ContractWithRelations) Decorate() {
	c.StatusLabel = c.Status.Label()
	c.StatusTone = c.Status.Tone()
}

// TransactionWithContract is a Transaction joined with its optional Contract.
type TransactionWithContract struct {
	Transaction `bson:",inline"`
	Contract    *ContractWithRelations `bson:"contract,omitempty" json:"contract"`
	TypeLabel   string                 `bson:"-" json:"typeLabel"`
	Income      bool                   `bson:"-" json:"income"`
}

func (t *TransactionWithContract) Decorate() {
	t.TypeLabel = t.Type.Label()
	t.Income = t.IsIncome()
	if t.Contract != nil {
		t.Contract.Decorate()
	}
}

// InquiryWithContractor is an Inquiry joined with its optional Contractor.
type InquiryWithContractor struct {
	Inquiry     `bson:",inline"`
	Contractor  *Contractor `bson:"contractor,omitempty" json:"contractor"`
	StatusLabel string      `bson:"-" json:"statusLabel"`
	StatusTone  Tone        `bson:"-" json:"statusTone"`
}

func (i *InquiryWithContractor) Decorate() {
	i.StatusLabel = i.Status.Label()
	i.StatusTone = i.Status.Tone()
}

// PropertyRow is a Property with its type label resolved for listing.
type PropertyRow struct {
	Property  `bson:",inline"`
	TypeLabel string `bson:"-" json:"typeLabel"`
}

func (p *PropertyRow) Decorate() {
	p.TypeLabel = p.Type.Label()
}
