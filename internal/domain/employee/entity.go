package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a single directory record. The ID is supplied by the
// caller at creation time (E followed by a zero-padded number, e.g.
// E001) and never changes afterwards.
type Employee struct {
	ID        string
	Name      string
	Position  string
	Email     string
	Phone     string
	Salary    *decimal.Decimal
	HireDate  time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
