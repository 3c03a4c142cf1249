package entity

import "testing"

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleGuest, RoleGuest, true},
		{RoleGuest, RoleUser, false},
		{RoleUser, RoleUser, true},
		{RoleUser, RoleStaff, false},
		{RoleStaff, RoleUser, true},
		{RoleStaff, RoleAdmin, false},
		{RoleAdmin, RoleGuest, true},
		{RoleAdmin, RoleAdmin, true},
	}

	for _, c := range cases {
		if got := c.role.AtLeast(c.min); got != c.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", c.role, c.min, got, c.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for r := RoleGuest; r <= RoleAdmin; r++ {
		if !r.Valid() {
			t.Errorf("role %d should be valid", r)
		}
	}
	if Role(-1).Valid() {
		t.Error("role -1 should be invalid")
	}
	if Role(4).Valid() {
		t.Error("role 4 should be invalid")
	}
}

func TestRoleString(t *testing.T) {
	cases := map[Role]string{
		RoleGuest: "guest",
		RoleUser:  "user",
		RoleStaff: "staff",
		RoleAdmin: "admin",
		Role(99):  "unknown",
	}

	for role, want := range cases {
		if got := role.String(); got != want {
			t.Errorf("Role(%d).String() = %q, want %q", role, got, want)
		}
	}
}
