package client

import "slices"

const wildcardPermission = "all"

type Section struct {
	Name    string
	View    string
	Actions []string
}

type navItem struct {
	name       string
	view       string
	permission string
	actions    []navAction
}

type navAction struct {
	name       string
	permission string
	roles      []string
}

// Dashboard and Cases are shown to every role.
var navItems = []navItem{
	{name: "Dashboard", view: "dashboard"},
	{name: "Cases", view: "cases", actions: []navAction{
		{name: "Register FIR", permission: "create_fir"},
		{name: "Edit case", permission: "edit_case"},
	}},
	{name: "Criminals", view: "criminals", permission: "view_criminals", actions: []navAction{
		{name: "Add criminal", permission: "create_criminal"},
		{name: "Update wanted status", permission: "edit_criminal"},
	}},
	{name: "Investigations", view: "investigations", permission: "view_investigations", actions: []navAction{
		{name: "Open investigation", permission: "create_investigation"},
		{name: "Update investigation", permission: "edit_investigation"},
	}},
	{name: "Police Staff", view: "staff", permission: "view_staff", actions: []navAction{
		{name: "Add staff", roles: []string{"Admin", "Superintendent"}},
	}},
	{name: "User Management", view: "users", permission: "manage_users"},
	{name: "Audit Logs", view: "audit", permission: "view_audit_logs"},
	{name: "Reports", view: "reports", permission: "generate_reports", actions: []navAction{
		{name: "Export cases", permission: "generate_reports"},
	}},
	{name: "Settings", view: "settings", permission: "system_settings"},
}

// Navigation lists the sections and actions role may use. It only decides
// what to show; the server checks every request again.
func Navigation(table map[string][]string, role string) []Section {
	perms := table[role]
	has := func(p string) bool {
		return p == "" || slices.Contains(perms, wildcardPermission) || slices.Contains(perms, p)
	}

	var out []Section
	for _, item := range navItems {
		if !has(item.permission) {
			continue
		}
		section := Section{Name: item.name, View: item.view}
		for _, a := range item.actions {
			if len(a.roles) > 0 && !slices.Contains(a.roles, role) {
				continue
			}
			if a.permission != "" && !has(a.permission) {
				continue
			}
			section.Actions = append(section.Actions, a.name)
		}
		out = append(out, section)
	}
	return out
}
