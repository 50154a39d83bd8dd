package auth

import (
	_ "embed"
	"fmt"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	RoleAdmin          = "Admin"
	RoleSuperintendent = "Superintendent"
	RoleCID            = "CID"
	RoleNCO            = "NCO"

	PermissionAll = "all"
)

const (
	PermManageUsers         = "manage_users"
	PermViewCases           = "view_cases"
	PermEditCase            = "edit_case"
	PermCreateCriminal      = "create_criminal"
	PermEditCriminal        = "edit_criminal"
	PermCreateInvestigation = "create_investigation"
	PermEditInvestigation   = "edit_investigation"
	PermCreateFIR           = "create_fir"
	PermViewAuditLogs       = "view_audit_logs"
	PermGenerateReports     = "generate_reports"
)

//go:embed permissions.yml
var permissionsYAML []byte

// PermissionTable maps role names to the permissions they hold. It is
// immutable after loading.
type PermissionTable struct {
	Roles map[string][]string `yaml:"roles" json:"roles"`
}

// LoadPermissionTable parses the embedded table.
func LoadPermissionTable() (*PermissionTable, error) {
	return ParsePermissionTable(permissionsYAML)
}

func ParsePermissionTable(data []byte) (*PermissionTable, error) {
	var t PermissionTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse permission table: %w", err)
	}
	if len(t.Roles) == 0 {
		return nil, fmt.Errorf("permission table has no roles")
	}
	return &t, nil
}

// MustLoadPermissionTable panics if the embedded table is malformed.
func MustLoadPermissionTable() *PermissionTable {
	t, err := LoadPermissionTable()
	if err != nil {
		panic(err)
	}
	return t
}

// Permissions returns a copy of the role's permissions; unknown roles have none.
func (t *PermissionTable) Permissions(role string) []string {
	return slices.Clone(t.Roles[role])
}

// Allows reports whether role holds permission directly or through "all".
func (t *PermissionTable) Allows(role, permission string) bool {
	perms := t.Roles[role]
	return slices.Contains(perms, permission) || slices.Contains(perms, PermissionAll)
}

func (t *PermissionTable) RoleNames() []string {
	names := make([]string, 0, len(t.Roles))
	for name := range t.Roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
