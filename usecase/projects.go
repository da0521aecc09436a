package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

type ProjectsService struct {
	ProjectsRepo *repository.ProjectsRepo
}

func NewProjectsService(repo *repository.ProjectsRepo) *ProjectsService {
	return &ProjectsService{ProjectsRepo: repo}
}

// BuildTimeReport aggregates a project's time entries inside the window.
// Zero start/end times leave that side of the window open.
func BuildTimeReport(project *model.Project, start, end time.Time) model.TimeReport {
	report := model.TimeReport{
		ByTask:  map[string]int64{},
		ByDate:  map[string]int64{},
		Entries: []model.TimeEntry{},
	}

	for _, task := range project.Tasks {
		for _, entry := range task.TimeEntries {
			if !start.IsZero() && entry.StartTime.Before(start) {
				continue
			}
			if !end.IsZero() && entry.EndTime.After(end) {
				continue
			}

			report.TotalTime += entry.Duration
			report.ByTask[task.TaskID] += entry.Duration
			report.ByDate[utils.ToISODate(entry.StartTime)] += entry.Duration
			report.Entries = append(report.Entries, entry)
		}
	}

	return report
}

func (svc *ProjectsService) GetUserProjects(ctx context.Context, userID string) ([]*model.Project, error) {
	return svc.ProjectsRepo.GetUserProjects(ctx, userID)
}

func (svc *ProjectsService) CreateProject(ctx context.Context, project *model.Project) error {
	if project.UserID == "" {
		return errors.New("user ID is required")
	}
	if project.Title == "" {
		return errors.New("project title is required")
	}

	if project.ProjectID == "" {
		project.ProjectID = utils.GenerateID()
	}
	now := time.Now()
	project.Status = model.ProjectActive
	project.Tasks = []model.ProjectTask{}
	project.TimeSpent = 0
	project.CreatedAt = now
	project.UpdatedAt = now

	return svc.ProjectsRepo.CreateProject(ctx, project)
}

func (svc *ProjectsService) UpdateProject(ctx context.Context, projectID, userID string, updates *model.Project) error {
	switch updates.Status {
	case "", model.ProjectActive, model.ProjectPending, model.ProjectCompleted, model.ProjectArchived:
	default:
		return errors.New("invalid project status")
	}
	return svc.ProjectsRepo.UpdateProject(ctx, projectID, userID, updates)
}

// AddTask appends a task to the project document.
func (svc *ProjectsService) AddTask(ctx context.Context, projectID, userID string, task *model.ProjectTask) (*model.ProjectTask, error) {
	if task.Title == "" {
		return nil, errors.New("task title is required")
	}

	now := time.Now()
	task.TaskID = utils.GenerateID()
	task.TimeEntries = []model.TimeEntry{}
	task.TimeSpent = 0
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := svc.ProjectsRepo.PushTask(ctx, projectID, userID, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (svc *ProjectsService) UpdateTask(ctx context.Context, projectID, userID, taskID string, updates *model.ProjectTask) error {
	project, err := svc.ProjectsRepo.GetProject(ctx, projectID, userID)
	if err != nil {
		return err
	}

	found := false
	for i := range project.Tasks {
		if project.Tasks[i].TaskID == taskID {
			project.Tasks[i].Title = updates.Title
			project.Tasks[i].Description = updates.Description
			project.Tasks[i].Complete = updates.Complete
			project.Tasks[i].UpdatedAt = time.Now()
			found = true
			break
		}
	}
	if !found {
		return errors.New("task not found")
	}

	return svc.ProjectsRepo.ReplaceTasks(ctx, projectID, userID, project.Tasks, project.TimeSpent)
}

// AddTimeEntry records time against a task, accumulating both the task's
// and the project's totals.
func (svc *ProjectsService) AddTimeEntry(ctx context.Context, projectID, userID string, entry model.TimeEntry) error {
	if entry.Duration <= 0 {
		return errors.New("entry duration must be positive")
	}

	project, err := svc.ProjectsRepo.GetProject(ctx, projectID, userID)
	if err != nil {
		return err
	}

	entry.EntryID = utils.GenerateID()

	found := false
	for i := range project.Tasks {
		if project.Tasks[i].TaskID == entry.TaskID {
			project.Tasks[i].TimeEntries = append(project.Tasks[i].TimeEntries, entry)
			project.Tasks[i].TimeSpent += entry.Duration
			project.Tasks[i].UpdatedAt = time.Now()
			found = true
			break
		}
	}
	if !found {
		return errors.New("task not found")
	}

	return svc.ProjectsRepo.ReplaceTasks(ctx, projectID, userID, project.Tasks, project.TimeSpent+entry.Duration)
}

func (svc *ProjectsService) DeleteProject(ctx context.Context, projectID, userID string) error {
	return svc.ProjectsRepo.DeleteProject(ctx, projectID, userID)
}

// GetTimeReport aggregates tracked time for a project over a window.
func (svc *ProjectsService) GetTimeReport(ctx context.Context, projectID, userID string, start, end time.Time) (*model.TimeReport, error) {
	project, err := svc.ProjectsRepo.GetProject(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	report := BuildTimeReport(project, start, end)
	return &report, nil
}
