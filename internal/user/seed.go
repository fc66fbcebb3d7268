package user

import "golang.org/x/crypto/bcrypt"

// InitialPassword is assigned to seeded accounts and to accounts created
// without an explicit password. An admin reset assigns ResetPasswordTo.
const (
	InitialPassword = "123"
	ResetPasswordTo = "123456"
)

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on cost bounds; the defaults are in range
		panic(err)
	}
	return string(hash)
}

// DefaultUsers seeds the user collection on first access: the plant's
// standing staff roster. The root user u1 keeps full access regardless
// of the stored list.
func DefaultUsers() []User {
	initial := mustHash(InitialPassword)

	return []User{
		{
			ID: RootUserID, Name: "Yasin", Role: RoleAdmin, Email: "yasin@evergreen.com",
			PasswordHash: initial,
			Permissions:  append([]Permission(nil), AllPermissions...),
			Department:   "Secure Vault", JobTitle: "Mechatronics Engineer / System Architect",
		},
		{
			ID: "u2", Name: "Jisha", Role: RoleAdmin, Email: "jisha@evergreen.com",
			PasswordHash: initial,
			Permissions: []Permission{
				PermViewAnalytics, PermManageUsers, PermViewInventory, PermManageInventory,
				PermViewFinance, PermManageTasks, PermViewLogs, PermOperationsLogs,
				PermTechOpsLogs, PermViewLogistics, PermManageLogistics, PermViewVisitors,
				PermManageVisitors, PermViewAttendance, PermViewWaterLevel, PermViewMachines,
				PermViewTasks, PermEditRecords,
			},
			Department: "Management", JobTitle: "CMD",
		},
		{
			ID: "u3", Name: "Akshay", Role: RoleAdmin, Email: "akshay@evergreen.com",
			PasswordHash: initial,
			Permissions: []Permission{
				PermViewAnalytics, PermViewInventory, PermManageInventory, PermManageTasks,
				PermViewLogs, PermOperationsLogs, PermTechOpsLogs, PermViewLogistics,
				PermManageLogistics, PermViewWaterLevel, PermViewAttendance, PermViewMachines,
				PermViewTasks, PermEditRecords,
			},
			Department: "Engineering", JobTitle: "Plant Engineer",
		},
		{
			ID: "u4", Name: "Hassan", Role: RoleSupervisor, Email: "hassan@evergreen.com",
			PasswordHash: initial,
			Permissions: []Permission{
				PermViewLogs, PermManageTasks, PermViewAnalytics, PermViewWaterLevel,
				PermViewAttendance, PermViewMachines, PermViewTasks,
			},
			Department: "Safety", JobTitle: "Safety Officer",
		},
		{
			ID: "u5", Name: "Abdullah", Role: RoleTechnician, Email: "abdullah@evergreen.com",
			PasswordHash: initial,
			Permissions: []Permission{
				PermViewLogs, PermManageLogs, PermTechOpsLogs, PermViewAttendance,
				PermViewMachines, PermViewTasks,
			},
			Department: "Secure Vault", JobTitle: "IT Technician",
		},
		{
			ID: "u6", Name: "Muhammed", Role: RoleTechnician, Email: "muhammed@evergreen.com",
			PasswordHash: initial,
			Permissions: []Permission{
				PermViewLogs, PermManageLogs, PermTechOpsLogs, PermViewAttendance,
				PermViewMachines, PermViewTasks,
			},
			Department: "Secure Vault", JobTitle: "Electrical Engineer",
		},
		{
			ID: "u7", Name: "Ammar", Role: RoleAdmin, Email: "ammar@evergreen.com",
			PasswordHash: initial,
			Permissions: []Permission{
				PermViewAnalytics, PermViewFinance, PermManageUsers, PermViewLogs,
				PermViewAttendance,
			},
			Department: "Finance/HR", JobTitle: "Senior Finance & HR",
		},
		{
			ID: "u8", Name: "Fathima", Role: RoleAdmin, Email: "fathima@evergreen.com",
			PasswordHash: initial,
			Permissions:  []Permission{PermViewFinance, PermViewLogs, PermViewAttendance},
			Department:   "Finance", JobTitle: "Junior Finance",
		},
		{
			ID: "u9", Name: "KING", Role: RoleSupervisor, Email: "king@evergreen.com",
			PasswordHash: initial,
			Permissions: []Permission{
				PermManageTasks, PermViewLogs, PermManageLogs, PermOperationsLogs,
				PermViewInventory, PermManageInventory, PermViewLogistics, PermManageLogistics,
				PermViewAnalytics, PermViewAttendance, PermViewWaterLevel, PermViewMachines,
				PermViewTasks, PermEditRecords,
			},
			Department: "Operations", JobTitle: "Supervisor",
		},
		{
			ID: "w6", Name: "Akthar", Role: RoleSupervisor, Email: "akthar@evergreen.com",
			PasswordHash: initial,
			Permissions: []Permission{
				PermViewVisitors, PermManageVisitors, PermViewLogs, PermViewAttendance,
			},
			Department: "Security", JobTitle: "Security Officer",
		},
		{ID: "w1", Name: "Safther", Role: RoleWorker, Email: "safther@evergreen.com", PasswordHash: initial, Permissions: []Permission{PermViewAnalytics, PermViewTasks}, Department: "Ops"},
		{ID: "w2", Name: "Shafeeq", Role: RoleWorker, Email: "shafeeq@evergreen.com", PasswordHash: initial, Permissions: []Permission{PermViewAnalytics, PermViewTasks}, Department: "Ops"},
		{ID: "w3", Name: "Thamveer", Role: RoleWorker, Email: "thamveer@evergreen.com", PasswordHash: initial, Permissions: []Permission{PermViewAnalytics, PermViewTasks}, Department: "Ops"},
		{ID: "w4", Name: "Humphrey", Role: RoleWorker, Email: "humphrey@evergreen.com", PasswordHash: initial, Permissions: []Permission{PermViewAnalytics, PermViewTasks}, Department: "Ops"},
		{ID: "w5", Name: "Rashid", Role: RoleWorker, Email: "rashid@evergreen.com", PasswordHash: initial, Permissions: []Permission{PermViewAnalytics, PermViewTasks}, Department: "Ops"},
	}
}
