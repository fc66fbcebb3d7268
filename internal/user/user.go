package user

import "strings"

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleTechnician Role = "TECHNICIAN"
	RoleWorker     Role = "WORKER"
)

// Permission is a granular access token. VIEW_*/MANAGE_* tokens with the
// same suffix form a pair: MANAGE implies VIEW, and dropping VIEW drops
// MANAGE.
type Permission string

const (
	PermViewAnalytics   Permission = "VIEW_ANALYTICS"
	PermManageUsers     Permission = "MANAGE_USERS"
	PermViewInventory   Permission = "VIEW_INVENTORY"
	PermManageInventory Permission = "MANAGE_INVENTORY"
	PermViewFinance     Permission = "VIEW_FINANCE"
	PermViewTasks       Permission = "VIEW_TASKS"
	PermManageTasks     Permission = "MANAGE_TASKS"
	PermViewLogs        Permission = "VIEW_LOGS"
	PermManageLogs      Permission = "MANAGE_LOGS"
	PermOperationsLogs  Permission = "ACCESS_OPERATIONS_LOGS"
	PermTechOpsLogs     Permission = "ACCESS_TECH_OPS_LOGS"
	PermEditRecords     Permission = "EDIT_RECORDS"
	PermViewVisitors    Permission = "VIEW_VISITORS"
	PermManageVisitors  Permission = "MANAGE_VISITORS"
	PermViewLogistics   Permission = "VIEW_LOGISTICS"
	PermManageLogistics Permission = "MANAGE_LOGISTICS"
	PermViewAttendance  Permission = "VIEW_ATTENDANCE"
	PermViewWaterLevel  Permission = "VIEW_WATER_LEVEL"
	PermViewMachines    Permission = "VIEW_MACHINES"
	PermManageSystem    Permission = "MANAGE_SYSTEM"
)

// AllPermissions is the full grant the root user always holds.
var AllPermissions = []Permission{
	PermViewAnalytics, PermManageUsers, PermViewInventory, PermManageInventory,
	PermViewFinance, PermViewTasks, PermManageTasks, PermViewLogs,
	PermManageLogs, PermOperationsLogs, PermTechOpsLogs, PermEditRecords,
	PermViewVisitors, PermManageVisitors, PermViewLogistics, PermManageLogistics,
	PermViewAttendance, PermViewWaterLevel, PermViewMachines, PermManageSystem,
}

// RootUserID is the distinguished account that always has every
// permission and cannot be deleted.
const RootUserID = "u1"

type User struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Role           Role         `json:"role"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"passwordHash,omitempty"`
	Permissions    []Permission `json:"permissions"`
	Department     string       `json:"department,omitempty"`
	JobTitle       string       `json:"jobTitle,omitempty"`
	PhotoURL       string       `json:"photoUrl,omitempty"`
	WorkerCategory string       `json:"workerCategory,omitempty"`
}

func (u *User) IsRoot() bool {
	return u.ID == RootUserID
}

// HasPermission checks the stored permission list; the root user passes
// regardless of what is stored.
func (u *User) HasPermission(p Permission) bool {
	if u.IsRoot() {
		return true
	}
	for _, perm := range u.Permissions {
		if perm == p {
			return true
		}
	}
	return false
}

// pairedView returns the VIEW_* partner of a MANAGE_* token.
func pairedView(p Permission) (Permission, bool) {
	s := string(p)
	if strings.HasPrefix(s, "MANAGE_") {
		return Permission("VIEW_" + strings.TrimPrefix(s, "MANAGE_")), true
	}
	return "", false
}

// pairedManage returns the MANAGE_* partner of a VIEW_* token.
func pairedManage(p Permission) (Permission, bool) {
	s := string(p)
	if strings.HasPrefix(s, "VIEW_") {
		return Permission("MANAGE_" + strings.TrimPrefix(s, "VIEW_")), true
	}
	return "", false
}

func hasPerm(perms []Permission, p Permission) bool {
	for _, perm := range perms {
		if perm == p {
			return true
		}
	}
	return false
}

func removePerm(perms []Permission, p Permission) []Permission {
	out := perms[:0]
	for _, perm := range perms {
		if perm != p {
			out = append(out, perm)
		}
	}
	return out
}
