package app

type permissionSeed struct {
	Resource string
	Action   string
	Label    string
	Category string
}

// permissionCatalog lists every resource/action pair the routes check.
var permissionCatalog = []permissionSeed{
	{"candidate", "read", "View candidates", "Candidates"},
	{"candidate", "create", "Add candidates", "Candidates"},
	{"candidate", "update", "Edit candidate profiles", "Candidates"},
	{"candidate", "move_stage", "Move candidates between stages", "Candidates"},
	{"candidate", "delete", "Delete candidates", "Candidates"},

	{"interview", "read", "View interviews", "Interviews"},
	{"interview", "schedule", "Schedule interviews", "Interviews"},
	{"interview", "update", "Update interview outcome", "Interviews"},
	{"interview", "delete", "Delete interviews", "Interviews"},

	{"feedback", "read", "View interview feedback", "Interviews"},
	{"feedback", "create", "Submit interview feedback", "Interviews"},

	{"offer_letter", "read", "View offers and salary breakdowns", "Offers"},
	{"offer_letter", "create", "Draft offer letters", "Offers"},
	{"offer_letter", "send", "Send offer letters", "Offers"},
	{"offer_letter", "respond", "Record offer responses", "Offers"},
	{"offer_letter", "delete", "Delete draft offers", "Offers"},

	{"email_template", "read", "View email templates", "Settings"},
	{"email_template", "manage", "Manage email templates", "Settings"},

	{"company", "read", "View company registrations", "Settings"},
	{"company", "update", "Edit company profile", "Settings"},

	{"user", "read", "View team members", "Team"},
	{"user", "create", "Invite team members", "Team"},
	{"user", "update", "Manage team member accounts", "Team"},

	{"role", "read", "View roles", "Team"},
	{"role", "manage", "Manage roles and permissions", "Team"},
}

// defaultRoleGrants are the grants a freshly seeded company starts with.
// OWNER gets the whole catalogue; "*" grants every action on a resource.
var defaultRoleGrants = map[string]map[string][]string{
	"ADMIN": {
		"candidate": {"*"}, "interview": {"*"}, "feedback": {"*"}, "offer_letter": {"*"},
		"email_template": {"*"}, "company": {"*"}, "user": {"*"}, "role": {"*"},
	},
	"HR": {
		"candidate": {"*"}, "interview": {"*"}, "feedback": {"read"}, "offer_letter": {"*"},
		"email_template": {"*"}, "company": {"read"}, "user": {"read"},
	},
	"RECRUITER": {
		"candidate":      {"read", "create", "update", "move_stage"},
		"interview":      {"read", "schedule", "update"},
		"feedback":       {"read"},
		"offer_letter":   {"read", "create"},
		"email_template": {"read"},
		"user":           {"read"},
	},
	"HIRING_MANAGER": {
		"candidate":    {"read", "move_stage"},
		"interview":    {"read", "schedule"},
		"feedback":     {"read", "create"},
		"offer_letter": {"read"},
	},
	"INTERVIEWER": {
		"candidate": {"read"},
		"interview": {"read", "update"},
		"feedback":  {"read", "create"},
	},
}

func grantedTo(role string, p permissionSeed) bool {
	if role == "OWNER" {
		return true
	}
	for _, action := range defaultRoleGrants[role][p.Resource] {
		if action == "*" || action == p.Action {
			return true
		}
	}
	return false
}
