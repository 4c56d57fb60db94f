package rbac

// Role names carried in the JWT role claim.
const (
	RoleAdmin  = "ADMIN"
	RoleUser   = "USER"
	RoleViewer = "VIEWER"
)

// casbinModel is a plain RBAC model: subject is the caller's role, object is
// the resource noun, action is the operation.
const casbinModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type rule struct {
	role     string
	resource string
	action   string
}

var domainResources = []string{
	"employee", "contract", "document", "upload", "project", "team", "setting",
}

// policyRules is the fixed authorization matrix. VIEWER is read-only, USER
// may create/update domain entities, ADMIN additionally deletes, manages
// users and settings, and reads the audit trail.
func policyRules() []rule {
	rules := make([]rule, 0, 64)

	for _, res := range domainResources {
		rules = append(rules, rule{RoleViewer, res, "read"})
	}
	for _, res := range domainResources {
		if res == "setting" {
			continue // settings writes are admin-only
		}
		rules = append(rules,
			rule{RoleUser, res, "create"},
			rule{RoleUser, res, "update"},
		)
	}
	for _, res := range domainResources {
		rules = append(rules, rule{RoleAdmin, res, "delete"})
	}
	rules = append(rules,
		rule{RoleAdmin, "setting", "create"},
		rule{RoleAdmin, "setting", "update"},
		rule{RoleAdmin, "user", "read"},
		rule{RoleAdmin, "user", "create"},
		rule{RoleAdmin, "user", "update"},
		rule{RoleAdmin, "user", "delete"},
		rule{RoleAdmin, "audit", "read"},
	)

	return rules
}

// roleInheritance: ADMIN ⊇ USER ⊇ VIEWER.
var roleInheritance = [][2]string{
	{RoleAdmin, RoleUser},
	{RoleUser, RoleViewer},
}
