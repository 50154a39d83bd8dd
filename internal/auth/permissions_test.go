package auth_test

import (
	"github.com/frahmantamala/crms/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PermissionTable", func() {
	var table *auth.PermissionTable

	BeforeEach(func() {
		table = auth.MustLoadPermissionTable()
	})

	It("defines exactly the four roles", func() {
		Expect(table.RoleNames()).To(Equal([]string{"Admin", "CID", "NCO", "Superintendent"}))
	})

	DescribeTable("Allows",
		func(role, permission string, expected bool) {
			Expect(table.Allows(role, permission)).To(Equal(expected))
		},
		Entry("admin wildcard covers anything", "Admin", "view_audit_logs", true),
		Entry("admin wildcard covers create_fir", "Admin", "create_fir", true),
		Entry("NCO registers FIRs", "NCO", "create_fir", true),
		Entry("NCO cannot edit cases", "NCO", "edit_case", false),
		Entry("CID edits criminals", "CID", "edit_criminal", true),
		Entry("CID cannot manage users", "CID", "manage_users", false),
		Entry("Superintendent reads audit logs", "Superintendent", "view_audit_logs", true),
		Entry("Superintendent cannot create investigations", "Superintendent", "create_investigation", false),
		Entry("unknown role has nothing", "Janitor", "view_cases", false),
	)

	It("grants every gated permission to at least one role besides Admin", func() {
		gates := []string{
			auth.PermEditCase, auth.PermCreateCriminal, auth.PermEditCriminal,
			auth.PermCreateInvestigation, auth.PermEditInvestigation, auth.PermCreateFIR,
			auth.PermViewAuditLogs, auth.PermGenerateReports, auth.PermViewCases,
		}
		for _, p := range gates {
			var holders []string
			for _, role := range []string{auth.RoleSuperintendent, auth.RoleCID, auth.RoleNCO} {
				if table.Allows(role, p) {
					holders = append(holders, role)
				}
			}
			Expect(holders).NotTo(BeEmpty(), p)
		}
		Expect(table.Allows(auth.RoleAdmin, auth.PermManageUsers)).To(BeTrue())
	})

	It("returns copies so callers cannot edit the table", func() {
		perms := table.Permissions("NCO")
		perms[0] = "all"
		Expect(table.Allows("NCO", "manage_users")).To(BeFalse())
	})

	It("rejects an empty document", func() {
		_, err := auth.ParsePermissionTable([]byte("roles: {}"))
		Expect(err).To(HaveOccurred())
	})
})
