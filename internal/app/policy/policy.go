package policy

import (
	"github.com/edwestfieldjr/BP-Tracker/internal/app/ds"
)

// Actor is the identity a request acts as. The zero value is anonymous.
type Actor struct {
	ID      uint
	IsAdmin bool
}

func (a Actor) IsAnonymous() bool {
	return a.ID == 0
}

// CanViewUser allows a user to see their own profile; admins see everyone.
func CanViewUser(actor Actor, targetUserID uint) bool {
	if actor.IsAnonymous() {
		return false
	}
	return actor.ID == targetUserID || actor.IsAdmin
}

// CanViewPatient allows the supervising user or an admin.
func CanViewPatient(actor Actor, patient *ds.Patient) bool {
	if actor.IsAnonymous() {
		return false
	}
	return actor.ID == patient.PrimaryUserID || actor.IsAdmin
}

// CanEditPatient matches CanViewPatient: supervision implies write access.
func CanEditPatient(actor Actor, patient *ds.Patient) bool {
	return CanViewPatient(actor, patient)
}

// CanEditReading delegates to the owning patient's rule.
func CanEditReading(actor Actor, patient *ds.Patient) bool {
	return CanEditPatient(actor, patient)
}
