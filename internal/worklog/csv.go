package worklog

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/plantworks/facilityops/internal/csvcodec"
)

// csvFields is the exported column set. userId is deliberately absent,
// the export is a reporting artifact keyed on the display name.
var csvFields = []string{
	"id", "date", "userName", "category", "taskDescription",
	"materialType", "weightProcessedKg", "quantityProcessed",
	"hoursWorked", "startTime", "endTime", "breakStartTime",
	"breakEndTime", "status", "testType", "testOutcome",
	"diagnosticsResult", "problemDescription", "solutionDescription",
	"softwareName", "storageType", "storageSize", "deviceType",
}

const csvTitle = "WorkLogs"

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func toCSVRecord(l WorkLog) csvcodec.Record {
	return csvcodec.Record{
		"id":                  l.ID,
		"date":                l.Date,
		"userName":            l.UserName,
		"category":            string(l.Category),
		"taskDescription":     l.TaskDescription,
		"materialType":        l.MaterialType,
		"weightProcessedKg":   formatFloat(l.WeightProcessedKg),
		"quantityProcessed":   formatFloat(l.QuantityProcessed),
		"hoursWorked":         formatFloat(l.HoursWorked),
		"startTime":           l.StartTime,
		"endTime":             l.EndTime,
		"breakStartTime":      l.BreakStartTime,
		"breakEndTime":        l.BreakEndTime,
		"status":              string(l.Status),
		"testType":            l.TestType,
		"testOutcome":         l.TestOutcome,
		"diagnosticsResult":   l.DiagnosticsResult,
		"problemDescription":  l.ProblemDescription,
		"solutionDescription": l.SolutionDescription,
		"softwareName":        l.SoftwareName,
		"storageType":         l.StorageType,
		"storageSize":         l.StorageSize,
		"deviceType":          l.DeviceType,
	}
}

func applyCSVRecord(l *WorkLog, rec csvcodec.Record) {
	if rec.Has("date") {
		l.Date = rec.Get("date")
	}
	if rec.Has("userName") {
		l.UserName = rec.Get("userName")
	}
	if rec.Has("category") {
		l.Category = WorkCategory(rec.Get("category"))
	}
	if rec.Has("taskDescription") {
		l.TaskDescription = rec.Get("taskDescription")
	}
	if rec.Has("materialType") {
		l.MaterialType = rec.Get("materialType")
	}
	if rec.Has("weightProcessedKg") {
		l.WeightProcessedKg = rec.Float("weightProcessedKg")
	}
	if rec.Has("quantityProcessed") {
		l.QuantityProcessed = rec.Float("quantityProcessed")
	}
	if rec.Has("hoursWorked") {
		l.HoursWorked = rec.Float("hoursWorked")
	}
	if rec.Has("startTime") {
		l.StartTime = rec.Get("startTime")
	}
	if rec.Has("endTime") {
		l.EndTime = rec.Get("endTime")
	}
	if rec.Has("breakStartTime") {
		l.BreakStartTime = rec.Get("breakStartTime")
	}
	if rec.Has("breakEndTime") {
		l.BreakEndTime = rec.Get("breakEndTime")
	}
	if rec.Has("status") {
		l.Status = ApprovalStatus(rec.Get("status"))
	}
	if rec.Has("testType") {
		l.TestType = rec.Get("testType")
	}
	if rec.Has("testOutcome") {
		l.TestOutcome = rec.Get("testOutcome")
	}
	if rec.Has("diagnosticsResult") {
		l.DiagnosticsResult = rec.Get("diagnosticsResult")
	}
	if rec.Has("problemDescription") {
		l.ProblemDescription = rec.Get("problemDescription")
	}
	if rec.Has("solutionDescription") {
		l.SolutionDescription = rec.Get("solutionDescription")
	}
	if rec.Has("softwareName") {
		l.SoftwareName = rec.Get("softwareName")
	}
	if rec.Has("storageType") {
		l.StorageType = rec.Get("storageType")
	}
	if rec.Has("storageSize") {
		l.StorageSize = rec.Get("storageSize")
	}
	if rec.Has("deviceType") {
		l.DeviceType = rec.Get("deviceType")
	}
}

// ExportCSV renders the given logs, typically the result of a filtered
// GetAll, to the standard column set.
func (s *Service) ExportCSV(logs []WorkLog) (string, string) {
	rows := make([]csvcodec.Record, len(logs))
	for i, l := range logs {
		rows[i] = toCSVRecord(l)
	}
	return csvcodec.Filename(csvTitle), csvcodec.Encode(rows, csvFields)
}

// ImportCSV upserts rows by id. Rows with a known id merge-overwrite
// the stored log; new rows are inserted as already approved, since an
// import is treated as historical backfill rather than fresh entry.
// Imported rows never touch inventory.
func (s *Service) ImportCSV(text string) (csvcodec.ImportStats, error) {
	var stats csvcodec.ImportStats

	logs, err := s.load()
	if err != nil {
		return stats, err
	}

	for _, rec := range csvcodec.Decode(text) {
		id := rec.Get("id")
		found := false
		if id != "" {
			for i := range logs {
				if logs[i].ID == id {
					applyCSVRecord(&logs[i], rec)
					stats.Updated++
					found = true
					break
				}
			}
		}
		if found {
			continue
		}

		l := WorkLog{
			ID:       id,
			UserID:   "unknown",
			UserName: "Unknown",
			Date:     DayStamp(time.Now()),
			Category: CategoryOtherProd,
			Status:   StatusApproved,
		}
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		if rec.Has("userId") {
			l.UserID = rec.Get("userId")
		}
		applyCSVRecord(&l, rec)
		logs = append(logs, l)
		stats.Created++
	}

	if err := s.save(logs); err != nil {
		return stats, err
	}
	s.logger.Info("work logs imported from CSV", "created", stats.Created, "updated", stats.Updated)
	return stats, nil
}
