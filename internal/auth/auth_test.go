package auth

import "testing"

func TestCanAccess(t *testing.T) {
	cases := []struct {
		name     string
		role     string
		required []string
		want     bool
	}{
		{"empty required passes any role", RoleViewer, nil, true},
		{"superadmin passes everything", RoleSuperAdmin, []string{RoleAdmin}, true},
		{"role in required", RoleAdmin, []string{RoleLeader, RoleAdmin}, true},
		{"role not in required", RoleStaff, []string{RoleAdmin}, false},
		{"viewer denied admin route", RoleViewer, []string{RoleAdmin, RoleLeader}, false},
		{"unknown role denied", "INTERN", []string{RoleAdmin}, false},
	}

	for _, tc := range cases {
		if got := CanAccess(tc.role, tc.required...); got != tc.want {
			t.Fatalf("%s: CanAccess(%q, %v) = %v, want %v", tc.name, tc.role, tc.required, got, tc.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range Roles {
		if !ValidRole(r) {
			t.Fatalf("role %s should be valid", r)
		}
	}
	if ValidRole("EMPLOYEE") {
		t.Fatalf("EMPLOYEE is not part of the role enumeration")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	a := New("test-signing-key")

	access, refresh, err := a.GenerateTokens(7, RoleLeader)
	if err != nil {
		t.Fatalf("generating tokens: %v", err)
	}

	claims, err := a.ValidateToken(access)
	if err != nil {
		t.Fatalf("validating access token: %v", err)
	}
	if claims.UserId != 7 || claims.Role != RoleLeader {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := a.ValidateRefreshToken(access); err == nil {
		t.Fatalf("access token must not pass refresh validation")
	}
	if _, err := a.ValidateRefreshToken(refresh); err != nil {
		t.Fatalf("validating refresh token: %v", err)
	}
}

func TestValidateTokenRejectsForeignKey(t *testing.T) {
	a := New("key-one")
	b := New("key-two")

	access, _, err := a.GenerateTokens(1, RoleStaff)
	if err != nil {
		t.Fatalf("generating tokens: %v", err)
	}
	if _, err := b.ValidateToken(access); err == nil {
		t.Fatalf("token signed with another key must be rejected")
	}
}
