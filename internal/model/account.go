package model

import "fmt"

// Profile is implemented by Volunteer, Commander and HR.
type Profile interface {
	Role() Role
	ProfileID() uint
	AttachUser(userID uint)
}

func (v *Volunteer) Role() Role { return RoleVolunteer }
func (v *Volunteer) ProfileID() uint { return v.ID }
func (v *Volunteer) AttachUser(id uint) { v.UserID = id }
func (c *Commander) Role() Role { return RoleCommander }
func (c *Commander) ProfileID() uint { return c.ID }
func (c *Commander) AttachUser(id uint) { c.UserID = id }
func (h *HR) Role() Role { return RoleHR }
func (h *HR) ProfileID() uint { return h.ID }
func (h *HR) AttachUser(id uint) { h.UserID = id }

// Account is a user together with its role profile.
type Account struct {
	User    *User
	Profile Profile
}

// NewAccount pairs a user with a profile. The user's role is taken from the
// profile so the two can never disagree.
func NewAccount(user *User, profile Profile) (*Account, error) {
	if user == nil || profile == nil {
		return nil, fmt.Errorf("account requires a user and a profile")
	}
	user.Role = profile.Role()
	return &Account{User: user, Profile: profile}, nil
}

func (a *Account) Role() Role {
	return a.Profile.Role()
}

func (a *Account) Volunteer() (*Volunteer, bool) {
	v, ok := a.Profile.(*Volunteer)
	return v, ok
}

func (a *Account) Commander() (*Commander, bool) {
	c, ok := a.Profile.(*Commander)
	return c, ok
}

func (a *Account) HR() (*HR, bool) {
	h, ok := a.Profile.(*HR)
	return h, ok
}
