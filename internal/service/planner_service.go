package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"famify/internal/models"
	"famify/internal/repository"
)

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidCategory = errors.New("invalid event category")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
)

// PlannerService covers the calendar side of the app: events, tasks, meal
// plans, reminders and notes.
type PlannerService struct {
	eventRepo    *repository.EventRepository
	taskRepo     *repository.TaskRepository
	mealPlanRepo *repository.MealPlanRepository
	reminderRepo *repository.ReminderRepository
	noteRepo     *repository.NoteRepository
}

// NewPlannerService creates a new planner service
func NewPlannerService(
	eventRepo *repository.EventRepository,
	taskRepo *repository.TaskRepository,
	mealPlanRepo *repository.MealPlanRepository,
	reminderRepo *repository.ReminderRepository,
	noteRepo *repository.NoteRepository,
) *PlannerService {
	return &PlannerService{
		eventRepo:    eventRepo,
		taskRepo:     taskRepo,
		mealPlanRepo: mealPlanRepo,
		reminderRepo: reminderRepo,
		noteRepo:     noteRepo,
	}
}

var validCategories = map[string]bool{
	models.CategoryHealth:   true,
	models.CategoryFamily:   true,
	models.CategoryActivity: true,
	models.CategoryChores:   true,
	models.CategoryOther:    true,
}

// CreateEvent validates and stores a calendar event
func (s *PlannerService) CreateEvent(event *models.Event) (*models.Event, error) {
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return nil, ErrEmptyTitle
	}
	if event.Category == "" {
		event.Category = models.CategoryOther
	}
	if !validCategories[event.Category] {
		return nil, ErrInvalidCategory
	}
	if event.EndTime != nil && event.EndTime.Before(event.StartTime) {
		return nil, fmt.Errorf("event end time precedes start time")
	}
	return s.eventRepo.Create(event)
}

// ListEvents retrieves a family's events within [from, to)
func (s *PlannerService) ListEvents(familyID int64, from, to time.Time) ([]models.Event, error) {
	return s.eventRepo.ListByFamilyRange(familyID, from, to)
}

// DeleteEvent removes an event, scoped to the family
func (s *PlannerService) DeleteEvent(eventID, familyID int64) error {
	return s.eventRepo.Delete(eventID, familyID)
}

// CreateTask validates and stores a task
func (s *PlannerService) CreateTask(task *models.Task) (*models.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return nil, ErrEmptyTitle
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	switch task.Priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		return nil, ErrInvalidPriority
	}
	return s.taskRepo.Create(task)
}

// ListTasks retrieves all of a family's tasks
func (s *PlannerService) ListTasks(familyID int64) ([]models.Task, error) {
	return s.taskRepo.ListByFamily(familyID)
}

// SetTaskCompleted toggles a task's completion state
func (s *PlannerService) SetTaskCompleted(taskID, familyID int64, completed bool) error {
	return s.taskRepo.SetCompleted(taskID, familyID, completed)
}

// DeleteTask removes a task, scoped to the family
func (s *PlannerService) DeleteTask(taskID, familyID int64) error {
	return s.taskRepo.Delete(taskID, familyID)
}

// CreateMealPlan validates and stores a planned meal
func (s *PlannerService) CreateMealPlan(plan *models.MealPlan) (*models.MealPlan, error) {
	if _, err := time.Parse("2006-01-02", plan.Date); err != nil {
		return nil, ErrInvalidDate
	}
	switch plan.MealType {
	case models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack:
	default:
		return nil, ErrInvalidMealType
	}
	plan.Description = strings.TrimSpace(plan.Description)
	if plan.Description == "" {
		return nil, fmt.Errorf("meal description is required")
	}
	return s.mealPlanRepo.Create(plan)
}

// ListMealPlans retrieves planned meals within [from, to], dates as YYYY-MM-DD
func (s *PlannerService) ListMealPlans(familyID int64, from, to string) ([]models.MealPlan, error) {
	for _, d := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, ErrInvalidDate
		}
	}
	return s.mealPlanRepo.ListByDateRange(familyID, from, to)
}

// DeleteMealPlan removes a planned meal, scoped to the family
func (s *PlannerService) DeleteMealPlan(planID, familyID int64) error {
	return s.mealPlanRepo.Delete(planID, familyID)
}

// CreateReminder validates and stores a reminder
func (s *PlannerService) CreateReminder(reminder *models.Reminder) (*models.Reminder, error) {
	reminder.Title = strings.TrimSpace(reminder.Title)
	if reminder.Title == "" {
		return nil, ErrEmptyTitle
	}
	return s.reminderRepo.Create(reminder)
}

// ListReminders retrieves a user's reminders in a family
func (s *PlannerService) ListReminders(familyID, userID int64) ([]models.Reminder, error) {
	return s.reminderRepo.ListByUser(familyID, userID)
}

// SetReminderCompleted toggles a reminder's completion state
func (s *PlannerService) SetReminderCompleted(reminderID, familyID int64, completed bool) error {
	return s.reminderRepo.SetCompleted(reminderID, familyID, completed)
}

// CreateNote validates and stores a note
func (s *PlannerService) CreateNote(note *models.Note) (*models.Note, error) {
	note.Title = strings.TrimSpace(note.Title)
	if note.Title == "" {
		return nil, ErrEmptyTitle
	}
	return s.noteRepo.Create(note)
}

// ListNotes retrieves a family's notes
func (s *PlannerService) ListNotes(familyID int64) ([]models.Note, error) {
	return s.noteRepo.ListByFamily(familyID)
}

// UpdateNote rewrites a note's title and content
func (s *PlannerService) UpdateNote(noteID, familyID int64, title, content string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	return s.noteRepo.Update(noteID, familyID, title, content)
}

// Dashboard is the "today" view: everything happening for a family today
type Dashboard struct {
	Events    []models.Event    `json:"events"`
	Tasks     []models.Task     `json:"tasks"`
	Meals     []models.MealPlan `json:"meals"`
	Reminders []models.Reminder `json:"reminders"`
	Notes     []models.Note     `json:"notes"`
}

// GetDashboard assembles the today view. The five reads are independent, so
// they run concurrently.
func (s *PlannerService) GetDashboard(ctx context.Context, familyID, userID int64) (*Dashboard, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	today := dayStart.Format("2006-01-02")

	dashboard := &Dashboard{}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		events, err := s.eventRepo.ListByFamilyRange(familyID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to load today's events: %w", err)
		}
		dashboard.Events = events
		return nil
	})
	g.Go(func() error {
		tasks, err := s.taskRepo.ListDueInRange(familyID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to load today's tasks: %w", err)
		}
		dashboard.Tasks = tasks
		return nil
	})
	g.Go(func() error {
		meals, err := s.mealPlanRepo.ListByDateRange(familyID, today, today)
		if err != nil {
			return fmt.Errorf("failed to load today's meals: %w", err)
		}
		dashboard.Meals = meals
		return nil
	})
	g.Go(func() error {
		reminders, err := s.reminderRepo.ListInRange(familyID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to load today's reminders: %w", err)
		}
		dashboard.Reminders = reminders
		return nil
	})
	g.Go(func() error {
		notes, err := s.noteRepo.ListByFamily(familyID)
		if err != nil {
			return fmt.Errorf("failed to load notes: %w", err)
		}
		dashboard.Notes = notes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}
