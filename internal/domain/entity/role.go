package entity

// Role name constants. Roles are a closed set; RoleReceptionist is the default
// for new accounts.
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
	RoleDoctor       = "doctor"
	RolePharmacist   = "pharmacist"
	RoleNurse        = "nurse"
)

// AllRoles lists every valid role name.
var AllRoles = []string{RoleAdmin, RoleReceptionist, RoleDoctor, RolePharmacist, RoleNurse}

// IsValidRole reports whether name belongs to the closed role set.
func IsValidRole(name string) bool {
	for _, r := range AllRoles {
		if r == name {
			return true
		}
	}
	return false
}
