package usecase

import (
	"testing"
	"time"

	"main/model"
)

func entry(taskID string, day, durationSec int64) model.TimeEntry {
	start := time.Date(2024, 3, int(day), 9, 0, 0, 0, time.UTC)
	return model.TimeEntry{
		EntryID:   taskID + "-e",
		TaskID:    taskID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(durationSec) * time.Second),
		Duration:  durationSec,
	}
}

func TestBuildTimeReportTotals(t *testing.T) {
	project := &model.Project{
		Tasks: []model.ProjectTask{
			{TaskID: "t1", TimeEntries: []model.TimeEntry{entry("t1", 1, 600), entry("t1", 2, 300)}},
			{TaskID: "t2", TimeEntries: []model.TimeEntry{entry("t2", 1, 900)}},
		},
	}

	report := BuildTimeReport(project, time.Time{}, time.Time{})

	if report.TotalTime != 1800 {
		t.Errorf("TotalTime = %d, want 1800", report.TotalTime)
	}
	if report.ByTask["t1"] != 900 || report.ByTask["t2"] != 900 {
		t.Errorf("ByTask = %v", report.ByTask)
	}
	if report.ByDate["2024-03-01"] != 1500 {
		t.Errorf("ByDate[2024-03-01] = %d, want 1500", report.ByDate["2024-03-01"])
	}
	if len(report.Entries) != 3 {
		t.Errorf("len(Entries) = %d, want 3", len(report.Entries))
	}
}

func TestBuildTimeReportWindow(t *testing.T) {
	project := &model.Project{
		Tasks: []model.ProjectTask{
			{TaskID: "t1", TimeEntries: []model.TimeEntry{
				entry("t1", 1, 600),
				entry("t1", 5, 300),
				entry("t1", 9, 120),
			}},
		},
	}

	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	report := BuildTimeReport(project, start, end)

	if report.TotalTime != 300 {
		t.Errorf("TotalTime = %d, want 300", report.TotalTime)
	}
	if len(report.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(report.Entries))
	}
	if report.Entries[0].Duration != 300 {
		t.Errorf("kept wrong entry: %+v", report.Entries[0])
	}
}

func TestBuildTimeReportEmptyProject(t *testing.T) {
	report := BuildTimeReport(&model.Project{}, time.Time{}, time.Time{})
	if report.TotalTime != 0 || len(report.Entries) != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}
