package workflow

// Actor identifies who is attempting an action, as supplied by the session
// layer.
type Actor struct {
	ID   uint
	Role string
}

// RoleGate is the stateless capability check. Two axes apply: ownership
// (the actor is the entity's requester/author) and role membership. An
// action is permitted when at least one axis that covers it matches.
type RoleGate struct {
	DataOfficerRoles    []string
	EditorialAdminRoles []string
}

var requesterOnlyActions = map[Action]bool{
	ActionUploadPayment: true,
	ActionSubmitSKM:     true,
}

// AllowRequest answers whether the actor may perform a lifecycle action on
// a request owned by ownerID. Requester-only actions need ownership; staff
// actions need a data-office role; neither axis covers the other's actions.
func (g RoleGate) AllowRequest(actor Actor, action Action, ownerID uint) bool {
	if requesterOnlyActions[action] {
		return actor.ID == ownerID
	}
	return contains(g.DataOfficerRoles, actor.Role)
}

// AllowContent answers the editorial side: authors submit their own drafts
// for review, editorial admins decide and archive.
func (g RoleGate) AllowContent(actor Actor, action ContentAction, authorID uint) bool {
	if action == ContentActionSubmitForReview {
		return actor.ID == authorID || contains(g.EditorialAdminRoles, actor.Role)
	}
	return contains(g.EditorialAdminRoles, actor.Role)
}

// IsDataOfficer reports role-axis membership alone, used for staff-wide
// reads such as listing every request.
func (g RoleGate) IsDataOfficer(actor Actor) bool {
	return contains(g.DataOfficerRoles, actor.Role)
}

// IsEditorialAdmin reports membership in the editorial decision roles.
func (g RoleGate) IsEditorialAdmin(actor Actor) bool {
	return contains(g.EditorialAdminRoles, actor.Role)
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
