package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role is the single role assigned to a signed-in user.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RolePurchase  Role = "Purchase"
	RoleApprover  Role = "Approver"
	RoleAccounts  Role = "Accounts"
	RoleStores    Role = "Stores"
	RoleLogistics Role = "Logistics"
	RoleSales     Role = "Sales"
)

// AllRoles lists every role known to the console.
func AllRoles() []Role {
	return []Role{RoleAdmin, RolePurchase, RoleApprover, RoleAccounts, RoleStores, RoleLogistics, RoleSales}
}

// User describes the operator of the current session as supplied by the auth backend.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Role         Role   `json:"role"`
	Organization string `json:"organization"`
}

// Initial returns the avatar letter shown in the header.
func (u User) Initial() string {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
