package dto

import (
	"resto/internal/domains/table/model"
	"resto/shared/constant"
	"resto/shared/timezone"
	"time"

	"github.com/google/uuid"
)

const (
	MessageAssigned = "Table assigned successfully"
	MessageReleased = "Table released successfully"
)

type AssignTableRequest struct {
	TableName  string `json:"tableName"  validate:"required,notblank,max=50"`
	GuestCount int    `json:"guestCount" validate:"gte=1"`
}

func (r *AssignTableRequest) ToModel(user string, at time.Time) model.TableState {
	return model.TableState{
		TableName:   r.TableName,
		TableStatus: model.StatusBusy,
		GuestCount:  r.GuestCount,
		Timestamp:   at,
		ModifiedBy:  user,
	}
}

type ReleaseTableRequest struct {
	TableName string `json:"tableName" validate:"required,notblank,max=50"`
}

func (r *ReleaseTableRequest) ToModel(user string, at time.Time) model.TableState {
	return model.TableState{
		TableName:   r.TableName,
		TableStatus: model.StatusEmpty,
		GuestCount:  0,
		Timestamp:   at,
		ModifiedBy:  user,
	}
}

// HistoryFromState builds the audit entry recorded alongside a state write.
func HistoryFromState(state model.TableState) model.TableStateHistory {
	return model.TableStateHistory{
		ID:          uuid.NewString(),
		TableName:   state.TableName,
		TableStatus: state.TableStatus,
		GuestCount:  state.GuestCount,
		Timestamp:   state.Timestamp,
		CreatedBy:   state.ModifiedBy,
	}
}

type TableResponse struct {
	TableName    string `json:"table_name"`
	SeatCapacity int    `json:"seat_capacity"`
	GuestCount   *int   `json:"guest_count,omitempty"`
}

// FromModel copies the listing. guest_count is only carried for busy tables.
func (r *TableResponse) FromModel(listing model.TableListing) {
	r.TableName = listing.TableName
	r.SeatCapacity = listing.SeatCapacity
	r.GuestCount = nil

	if listing.TableStatus == model.StatusBusy {
		guestCount := listing.GuestCount
		r.GuestCount = &guestCount
	}
}

// FromModels never returns nil so an empty listing encodes as [].
func FromModels(listings []model.TableListing) []TableResponse {
	res := make([]TableResponse, len(listings))

	for i, listing := range listings {
		res[i].FromModel(listing)
	}

	return res
}

type EmptyCountResponse struct {
	EmptyTablesCount int `json:"emptyTablesCount"`
}

type BusyCountResponse struct {
	BusyTablesCount int `json:"busyTablesCount"`
}

type CountsResponse struct {
	EmptyTablesCount int `json:"emptyTablesCount"`
	BusyTablesCount  int `json:"busyTablesCount"`
}

type EmptyTablesResponse struct {
	EmptyTables []TableResponse `json:"emptyTables"`
}

type BusyTablesResponse struct {
	BusyTables []TableResponse `json:"busyTables"`
}

// OverviewResponse is the payload of the table overview page.
type OverviewResponse struct {
	CountsResponse
	EmptyTables []TableResponse `json:"emptyTables"`
}

// Snapshot is the full read model returned after a transition.
type Snapshot struct {
	CountsResponse
	EmptyTables []TableResponse `json:"emptyTables"`
	BusyTables  []TableResponse `json:"busyTables"`
}

type TransitionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Snapshot
}

// TableStateChangedEvent is published after a transition commits.
type TableStateChangedEvent struct {
	TableName   string `json:"tableName"`
	TableStatus string `json:"tableStatus"`
	GuestCount  int    `json:"guestCount"`
	ChangedAt   string `json:"changedAt"`
	ChangedBy   string `json:"changedBy"`
}

func (e *TableStateChangedEvent) FromModel(state model.TableState) {
	e.TableName = state.TableName
	e.TableStatus = state.TableStatus.String()
	e.GuestCount = state.GuestCount
	e.ChangedAt = timezone.Format(state.Timestamp, constant.DateFormat)
	e.ChangedBy = state.ModifiedBy
}
