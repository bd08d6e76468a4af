package models

// Tone is a display emphasis attached to a status value. It carries no behavior.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
	ToneError   Tone = "error"
	TonePrimary Tone = "primary"
	ToneDefault Tone = "default"
)

// PropertyType is the building category of a Property.
type PropertyType string

const (
	PropertyTypeMansion   PropertyType = "MANSION"
	PropertyTypeApartment PropertyType = "APARTMENT"
	PropertyTypeHouse     PropertyType = "HOUSE"
)

// ContractStatus is the lifecycle status of a lease. Set at creation only.
type ContractStatus string

const (
	ContractStatusActive      ContractStatus = "ACTIVE"
	ContractStatusUpcoming    ContractStatus = "UPCOMING"
	ContractStatusRenewal     ContractStatus = "RENEWAL"
	ContractStatusTerminating ContractStatus = "TERMINATING"
	ContractStatusTerminated  ContractStatus = "TERMINATED"
	ContractStatusExpired     ContractStatus = "EXPIRED"
)

// InquiryStatus is the handling status of an inquiry. Always RECEIVED on creation.
type InquiryStatus string

const (
	InquiryStatusReceived   InquiryStatus = "RECEIVED"
	InquiryStatusInProgress InquiryStatus = "IN_PROGRESS"
	InquiryStatusResolved   InquiryStatus = "RESOLVED"
	InquiryStatusClosed     InquiryStatus = "CLOSED"
)

// TransactionType classifies a ledger entry. Income vs expense is decided by the amount sign, not the type.
type TransactionType string

const (
	TransactionTypeRentIncome          TransactionType = "RENT_INCOME"
	TransactionTypeManagementFeeIncome TransactionType = "MANAGEMENT_FEE_INCOME"
	TransactionTypeDepositReceived     TransactionType = "DEPOSIT_RECEIVED"
	TransactionTypeKeyMoneyIncome      TransactionType = "KEY_MONEY_INCOME"
	TransactionTypeRenewalFeeIncome    TransactionType = "RENEWAL_FEE_INCOME"
	TransactionTypeRepairExpense       TransactionType = "REPAIR_EXPENSE"
	TransactionTypeRestorationExpense  TransactionType = "RESTORATION_EXPENSE"
	TransactionTypeDepositReturned     TransactionType = "DEPOSIT_RETURNED"
	TransactionTypeOtherIncome         TransactionType = "OTHER_INCOME"
	TransactionTypeOtherExpense        TransactionType = "OTHER_EXPENSE"
)

// Declaration order is the order selectors present the options in.
var (
	PropertyTypes = []PropertyType{PropertyTypeMansion, PropertyTypeApartment, PropertyTypeHouse}

	ContractStatuses = []ContractStatus{
		ContractStatusActive, ContractStatusUpcoming, ContractStatusRenewal,
		ContractStatusTerminating, ContractStatusTerminated, ContractStatusExpired,
	}

	InquiryStatuses = []InquiryStatus{
		InquiryStatusReceived, InquiryStatusInProgress, InquiryStatusResolved, InquiryStatusClosed,
	}

	TransactionTypes = []TransactionType{
		TransactionTypeRentIncome, TransactionTypeManagementFeeIncome, TransactionTypeDepositReceived,
		TransactionTypeKeyMoneyIncome, TransactionTypeRenewalFeeIncome, TransactionTypeRepairExpense,
		TransactionTypeRestorationExpense, TransactionTypeDepositReturned, TransactionTypeOtherIncome,
		TransactionTypeOtherExpense,
	}
)

var propertyTypeLabels = map[PropertyType]string{
	PropertyTypeMansion:   "Mansion",
	PropertyTypeApartment: "Apartment",
	PropertyTypeHouse:     "Detached house",
}

var contractStatusLabels = map[ContractStatus]string{
	ContractStatusActive:      "Active",
	ContractStatusUpcoming:    "Not yet started",
	ContractStatusRenewal:     "Renewal in progress",
	ContractStatusTerminating: "Termination in progress",
	ContractStatusTerminated:  "Terminated",
	ContractStatusExpired:     "Expired",
}

var contractStatusTones = map[ContractStatus]Tone{
	ContractStatusActive:      ToneSuccess,
	ContractStatusUpcoming:    ToneInfo,
	ContractStatusRenewal:     ToneWarning,
	ContractStatusTerminating: ToneWarning,
	ContractStatusTerminated:  ToneDefault,
	ContractStatusExpired:     ToneError,
}

var inquiryStatusLabels = map[InquiryStatus]string{
	InquiryStatusReceived:   "Received",
	InquiryStatusInProgress: "In progress",
	InquiryStatusResolved:   "Resolved",
	InquiryStatusClosed:     "Closed",
}

var inquiryStatusTones = map[InquiryStatus]Tone{
	InquiryStatusReceived:   TonePrimary,
	InquiryStatusInProgress: TonePrimary,
	InquiryStatusResolved:   ToneSuccess,
	InquiryStatusClosed:     ToneDefault,
}

var transactionTypeLabels = map[TransactionType]string{
	TransactionTypeRentIncome:          "Rent income",
	TransactionTypeManagementFeeIncome: "Management fee income",
	TransactionTypeDepositReceived:     "Deposit received",
	TransactionTypeKeyMoneyIncome:      "Key money income",
	TransactionTypeRenewalFeeIncome:    "Renewal fee income",
	TransactionTypeRepairExpense:       "Repair expense",
	TransactionTypeRestorationExpense:  "Restoration expense",
	TransactionTypeDepositReturned:     "Deposit returned",
	TransactionTypeOtherIncome:         "Other income",
	TransactionTypeOtherExpense:        "Other expense",
}

func (t PropertyType) Valid() bool {
	_, ok := propertyTypeLabels[t]
	return ok
}

func (t PropertyType) Label() string {
	return labelOr(propertyTypeLabels, t)
}

func (s ContractStatus) Valid() bool {
	_, ok := contractStatusLabels[s]
	return ok
}

func (s ContractStatus) Label() string {
	return labelOr(contractStatusLabels, s)
}

func (s ContractStatus) Tone() Tone {
	if tone, ok := contractStatusTones[s]; ok {
		return tone
	}
	return ToneDefault
}

// Current reports whether the lease is still in force or about to be. Used by the transaction form's contract selector.
func (s ContractStatus) Current() bool {
	return s == ContractStatusActive || s == ContractStatusUpcoming || s == ContractStatusRenewal
}

func (s InquiryStatus) Valid() bool {
	_, ok := inquiryStatusLabels[s]
	return ok
}

func (s InquiryStatus) Label() string {
	return labelOr(inquiryStatusLabels, s)
}

func (s InquiryStatus) Tone() Tone {
	if tone, ok := inquiryStatusTones[s]; ok {
		return tone
	}
	return ToneDefault
}

func (t TransactionType) Valid() bool {
	_, ok := transactionTypeLabels[t]
	return ok
}

func (t TransactionType) Label() string {
	return labelOr(transactionTypeLabels, t)
}

func labelOr[K ~string](labels map[K]string, key K) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return string(key)
}

// LabeledValue is one entry of a label table as exposed to clients.
type LabeledValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Tone  Tone   `json:"tone,omitempty"`
}

// LabelTables is the single source of display labels for every enumeration.
type LabelTables struct {
	PropertyTypes    []LabeledValue `json:"propertyTypes"`
	ContractStatuses []LabeledValue `json:"contractStatuses"`
	InquiryStatuses  []LabeledValue `json:"inquiryStatuses"`
	TransactionTypes []LabeledValue `json:"transactionTypes"`
}

// Labels builds the label tables in declaration order.
func Labels() LabelTables {
	tables := LabelTables{}
	for _, t := range PropertyTypes {
		tables.PropertyTypes = append(tables.PropertyTypes, LabeledValue{Value: string(t), Label: t.Label()})
	}
	for _, s := range ContractStatuses {
		tables.ContractStatuses = append(tables.ContractStatuses, LabeledValue{Value: string(s), Label: s.Label(), Tone: s.Tone()})
	}
	for _, s := range InquiryStatuses {
		tables.InquiryStatuses = append(tables.InquiryStatuses, LabeledValue{Value: string(s), Label: s.Label(), Tone: s.Tone()})
	}
	for _, t := range TransactionTypes {
		tables.TransactionTypes = append(tables.TransactionTypes, LabeledValue{Value: string(t), Label: t.Label()})
	}
	return tables
}
