// Package records defines the concrete record types the site persists:
// contact leads and portfolio holdings.
package records

import (
	"time"

	"github.com/kumaryash98110-netizen/investcore/store"
)

// Lead is a contact-form submission. The id and CreatedAt are assigned by
// the system; the remaining fields come from the form as-is.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func (l Lead) RecordID() string { return l.ID }

func (l Lead) WithID(recordID string) Lead {
	l.ID = recordID
	return l
}

// NewLead builds an unsaved lead with CreatedAt stamped now. The id is
// assigned when the lead is added to a store.
func NewLead(name, email, phone, note string) Lead {
	return Lead{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
}

// OpenLeads opens the lead collection stored under key.
func OpenLeads(p store.Provider, key string, opts ...store.Option[Lead]) *store.Store[Lead] {
	return store.Open[Lead](p, key, opts...)
}
