package rest

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/plantworks/facilityops/internal/attendance"
	"github.com/plantworks/facilityops/internal/insights"
	"github.com/plantworks/facilityops/internal/inventory"
	"github.com/plantworks/facilityops/internal/logistics"
	"github.com/plantworks/facilityops/internal/machine"
	"github.com/plantworks/facilityops/internal/maintenance"
	"github.com/plantworks/facilityops/internal/sysconfig"
	"github.com/plantworks/facilityops/internal/task"
	"github.com/plantworks/facilityops/internal/transport/middleware"
	"github.com/plantworks/facilityops/internal/user"
	"github.com/plantworks/facilityops/internal/visitor"
	"github.com/plantworks/facilityops/internal/worklog"
)

// Handlers bundles every mounted handler so the server wiring stays in
// one place.
type Handlers struct {
	User        *user.Handler
	Inventory   *inventory.Handler
	WorkLog     *worklog.Handler
	Logistics   *logistics.Handler
	Visitor     *visitor.Handler
	Maintenance *maintenance.Handler
	Task        *task.Handler
	Attendance  *attendance.Handler
	Machine     *machine.Handler
	SysConfig   *sysconfig.Handler
	Insights    *insights.Handler
	Admin       *AdminHandler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.Identity)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/users", func(ur chi.Router) {
			ur.Get("/", h.User.GetUsers)
			ur.Get("/workers", h.User.GetWorkers)
			ur.Post("/", h.User.CreateUser)
			ur.Get("/{id}", h.User.GetUser)
			ur.Put("/{id}", h.User.UpdateUser)
			ur.Delete("/{id}", h.User.DeleteUser)
			ur.Put("/{id}/photo", h.User.UpdatePhoto)
			ur.Post("/{id}/permissions/toggle", h.User.TogglePermission)
			ur.Put("/{id}/permissions", h.User.SetPermissions)
			ur.Post("/{id}/password/reset", h.User.ResetPassword)
			ur.Put("/{id}/password", h.User.SetPassword)
			ur.Post("/{id}/password/change", h.User.ChangePassword)
		})

		r.Route("/inventory", func(ir chi.Router) {
			ir.Get("/", h.Inventory.GetItems)
			ir.Post("/", h.Inventory.CreateItem)
			ir.Get("/export", h.Inventory.Export)
			ir.Post("/import", h.Inventory.Import)
			ir.Get("/{id}", h.Inventory.GetItem)
			ir.Put("/{id}", h.Inventory.UpdateItem)
			ir.Delete("/{id}", h.Inventory.DeleteItem)
			ir.Post("/{id}/move-to-sales", h.Inventory.MoveToSales)
		})

		r.Route("/logs", func(lr chi.Router) {
			lr.Get("/", h.WorkLog.GetLogs)
			lr.Post("/", h.WorkLog.CreateLog)
			lr.Get("/export", h.WorkLog.Export)
			lr.Post("/import", h.WorkLog.Import)
			lr.Get("/performance/yesterday", h.WorkLog.YesterdaySummary)
			lr.Post("/batch/preview", h.WorkLog.PreviewBatch)
			lr.Post("/batch/confirm", h.WorkLog.ConfirmBatch)
			lr.Get("/{id}", h.WorkLog.GetLog)
			lr.Put("/{id}", h.WorkLog.UpdateLog)
			lr.Patch("/{id}/status", h.WorkLog.SetStatus)
			lr.Delete("/{id}", h.WorkLog.DeleteLog)
		})

		r.Route("/logistics", func(lr chi.Router) {
			lr.Get("/", h.Logistics.GetEntries)
			lr.Post("/", h.Logistics.CreateEntry)
			lr.Get("/export", h.Logistics.Export)
			lr.Post("/import", h.Logistics.Import)
			lr.Get("/{id}", h.Logistics.GetEntry)
			lr.Put("/{id}", h.Logistics.UpdateEntry)
			lr.Delete("/{id}", h.Logistics.DeleteEntry)
		})

		r.Route("/visitors", func(vr chi.Router) {
			vr.Get("/", h.Visitor.GetVisitors)
			vr.Post("/", h.Visitor.CheckIn)
			vr.Get("/export", h.Visitor.Export)
			vr.Post("/import", h.Visitor.Import)
			vr.Put("/{id}", h.Visitor.UpdateVisitor)
			vr.Post("/{id}/checkout", h.Visitor.Checkout)
			vr.Delete("/{id}", h.Visitor.DeleteVisitor)
		})

		r.Route("/maintenance", func(mr chi.Router) {
			mr.Get("/", h.Maintenance.GetTasks)
			mr.Post("/", h.Maintenance.ScheduleTask)
			mr.Get("/upcoming", h.Maintenance.GetUpcoming)
			mr.Get("/export", h.Maintenance.Export)
			mr.Post("/import", h.Maintenance.Import)
			mr.Patch("/{id}/status", h.Maintenance.UpdateStatus)
			mr.Delete("/{id}", h.Maintenance.DeleteTask)
		})

		r.Route("/tasks", func(tr chi.Router) {
			tr.Get("/", h.Task.GetTasks)
			tr.Post("/", h.Task.CreateTask)
			tr.Get("/export", h.Task.Export)
			tr.Get("/{id}", h.Task.GetTask)
			tr.Patch("/{id}/status", h.Task.UpdateStatus)
			tr.Delete("/{id}", h.Task.DeleteTask)
		})

		r.Route("/attendance", func(ar chi.Router) {
			ar.Get("/", h.Attendance.GetRecords)
			ar.Post("/", h.Attendance.Mark)
			ar.Post("/bulk", h.Attendance.BulkSave)
			ar.Get("/export", h.Attendance.Export)
			ar.Post("/import", h.Attendance.Import)
		})

		r.Route("/machines", func(mr chi.Router) {
			mr.Get("/", h.Machine.GetMachines)
			mr.Post("/", h.Machine.CreateMachine)
			mr.Post("/sync", h.Machine.SyncTelemetry)
			mr.Get("/{id}", h.Machine.GetMachine)
			mr.Put("/{id}", h.Machine.UpdateMachine)
			mr.Delete("/{id}", h.Machine.DeleteMachine)
			mr.Post("/{id}/toggle", h.Machine.ToggleMachine)
		})

		r.Route("/config", func(cr chi.Router) {
			cr.Get("/", h.SysConfig.GetConfig)
			cr.Put("/remark", h.SysConfig.UpdateRemark)
			cr.Put("/backup-url", h.SysConfig.UpdateBackupURL)
			cr.Get("/water-levels", h.SysConfig.GetWaterLevels)
			cr.Put("/water-levels", h.SysConfig.UpdateWaterLevels)
			cr.Route("/options/{kind}", func(or chi.Router) {
				or.Get("/", h.SysConfig.GetOptions)
				or.Post("/", h.SysConfig.AddOption)
				or.Put("/", h.SysConfig.RenameOption)
				or.Delete("/", h.SysConfig.RemoveOption)
			})
		})

		if h.Insights != nil {
			r.Route("/insights", func(ir chi.Router) {
				ir.Get("/inventory", h.Insights.InventoryInsights)
				ir.Get("/efficiency", h.Insights.EfficiencyAnalysis)
			})
		}

		r.Route("/admin", func(ar chi.Router) {
			ar.Get("/backup", h.Admin.Backup)
			ar.Post("/restore", h.Admin.Restore)
			ar.Post("/reset", h.Admin.Reset)
		})
	})
}
