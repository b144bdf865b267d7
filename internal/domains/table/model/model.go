package model

import "time"

const (
	EntityCatalog = "resto_table"
	EntityState   = "table_state"
	EntityHistory = "table_state_history"
	EntityListing = "table_listing"

	TableCatalog = "resto_table"
	TableStates  = "table_states"
	TableHistory = "table_state_history"

	FieldID           = "id"
	FieldTableName    = "table_name"
	FieldTableStatus  = "table_status"
	FieldGuestCount   = "guest_count"
	FieldSeatCapacity = "seat_capacity"
	FieldTimestamp    = "timestamp"
)

// Status is the occupancy state of a table.
type Status string

const (
	StatusEmpty Status = "empty"
	StatusBusy  Status = "busy"
)

func (s Status) Valid() bool {
	return s == StatusEmpty || s == StatusBusy
}

func (s Status) String() string {
	return string(s)
}

// RestoTable is a catalog entry. Rows are managed outside this service.
type RestoTable struct {
	TableName    string `db:"table_name"`
	SeatCapacity int    `db:"seat_capacity"`
}

// TableState is the current state row of a table, keyed by table_name.
type TableState struct {
	TableName   string    `db:"table_name"`
	TableStatus Status    `db:"table_status"`
	GuestCount  int       `db:"guest_count"`
	Timestamp   time.Time `db:"timestamp"`
	ModifiedBy  string    `db:"modified_by"`
}

// TableStateHistory is one append-only audit entry per transition.
type TableStateHistory struct {
	ID          string    `db:"id"`
	TableName   string    `db:"table_name"`
	TableStatus Status    `db:"table_status"`
	GuestCount  int       `db:"guest_count"`
	Timestamp   time.Time `db:"timestamp"`
	CreatedBy   string    `db:"created_by"`
}

// TableListing is a state row joined with its catalog entry.
type TableListing struct {
	TableName    string `db:"table_name"`
	SeatCapacity int    `db:"seat_capacity" table:"resto_table"`
	GuestCount   int    `db:"guest_count"`
	TableStatus  Status `db:"table_status"`
}

func (TableListing) GetJoinQuery() string {
	return "JOIN resto_table ON resto_table.table_name = table_states.table_name"
}
