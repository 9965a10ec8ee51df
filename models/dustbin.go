package models

import (
	"time"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

type DustbinStatus string

const (
	DustbinStatusActive  DustbinStatus = "active"
	DustbinStatusFull    DustbinStatus = "full"
	DustbinStatusDamaged DustbinStatus = "damaged"
	DustbinStatusRemoved DustbinStatus = "removed"
)

// DustbinStatuses lists the valid status values in the order they are
// reported to clients in validation messages.
var DustbinStatuses = []DustbinStatus{
	DustbinStatusActive,
	DustbinStatusFull,
	DustbinStatusDamaged,
	DustbinStatusRemoved,
}

// IsValid reports whether s is one of the enumerated status values.
func (s DustbinStatus) IsValid() bool {
	for _, valid := range DustbinStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

type Dustbin struct {
	ID          int             `db:"id"          json:"id"`
	Latitude    decimal.Decimal `db:"latitude"    json:"latitude"`
	Longitude   decimal.Decimal `db:"longitude"   json:"longitude"`
	Address     *string         `db:"address"     json:"address"`
	Description *string         `db:"description" json:"description"`
	Status      DustbinStatus   `db:"status"      json:"status"`
	ReportedBy  *string         `db:"reported_by" json:"reported_by"`
	CreatedAt   time.Time       `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"  json:"updated_at"`
}

// DustbinUpdate is a sparse patch over a dustbin row. Only fields carrying
// a value are written; absent fields leave the column unchanged. A present
// Address/Description/ReportedBy holding a nil pointer clears the column.
type DustbinUpdate struct {
	Latitude    mo.Option[decimal.Decimal]
	Longitude   mo.Option[decimal.Decimal]
	Address     mo.Option[*string]
	Description mo.Option[*string]
	Status      mo.Option[DustbinStatus]
}

// IsEmpty reports whether the patch carries no fields at all.
func (u DustbinUpdate) IsEmpty() bool {
	return u.Latitude.IsAbsent() &&
		u.Longitude.IsAbsent() &&
		u.Address.IsAbsent() &&
		u.Description.IsAbsent() &&
		u.Status.IsAbsent()
}
