package handlers

import (
	"net/http"
	"strconv"
	"time"

	"famify/internal/models"
	"famify/internal/service"
)

// PlannerHandler handles calendar endpoints: events, tasks, meal plans,
// reminders, notes and the combined dashboard.
type PlannerHandler struct {
	plannerService *service.PlannerService
}

// NewPlannerHandler creates a new planner handler
func NewPlannerHandler(plannerService *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

// pathID parses a numeric path parameter
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// parseTimeRange reads from/to query params (RFC 3339). Defaults to the
// coming week when absent.
func parseTimeRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 7)

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}

// ListEvents returns the family's events in a time range
func (h *PlannerHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	from, to, err := parseTimeRange(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid time range", err)
		return
	}

	events, err := h.plannerService.ListEvents(family.Family.ID, from, to)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list events", err)
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}

type createEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Location    string     `json:"location"`
	Category    string     `json:"category"`
	AssignedTo  []int64    `json:"assigned_to"`
}

// CreateEvent adds a calendar event
func (h *PlannerHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	event, err := h.plannerService.CreateEvent(&models.Event{
		FamilyID:    family.Family.ID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Category:    req.Category,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   user.ID,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, event)
}

// DeleteEvent removes an event
func (h *PlannerHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	eventID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID", err)
		return
	}
	if err := h.plannerService.DeleteEvent(eventID, family.Family.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete event", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// ListTasks returns all of the family's tasks
func (h *PlannerHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	tasks, err := h.plannerService.ListTasks(family.Family.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}
	respondWithJSON(w, http.StatusOK, tasks)
}

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"`
	AssignedTo  int64      `json:"assigned_to"`
}

// CreateTask adds a task
func (h *PlannerHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	task, err := h.plannerService.CreateTask(&models.Task{
		FamilyID:    family.Family.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   user.ID,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, task)
}

type completionRequest struct {
	Completed bool `json:"completed"`
}

// SetTaskCompleted toggles a task's completion state
func (h *PlannerHandler) SetTaskCompleted(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	taskID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid task ID", err)
		return
	}
	var req completionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.plannerService.SetTaskCompleted(taskID, family.Family.ID, req.Completed); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update task", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// DeleteTask removes a task
func (h *PlannerHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	taskID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid task ID", err)
		return
	}
	if err := h.plannerService.DeleteTask(taskID, family.Family.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete task", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// ListMealPlans returns planned meals for a date range (default: this week)
func (h *PlannerHandler) ListMealPlans(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	now := time.Now()
	from := now.Format("2006-01-02")
	to := now.AddDate(0, 0, 7).Format("2006-01-02")
	if v := r.URL.Query().Get("from"); v != "" {
		from = v
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to = v
	}

	plans, err := h.plannerService.ListMealPlans(family.Family.ID, from, to)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plans)
}

type createMealPlanRequest struct {
	Date        string `json:"date"`
	MealType    string `json:"meal_type"`
	Description string `json:"description"`
}

// CreateMealPlan adds a planned meal
func (h *PlannerHandler) CreateMealPlan(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	var req createMealPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	plan, err := h.plannerService.CreateMealPlan(&models.MealPlan{
		FamilyID:    family.Family.ID,
		Date:        req.Date,
		MealType:    req.MealType,
		Description: req.Description,
		CreatedBy:   user.ID,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, plan)
}

// DeleteMealPlan removes a planned meal
func (h *PlannerHandler) DeleteMealPlan(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	planID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid meal plan ID", err)
		return
	}
	if err := h.plannerService.DeleteMealPlan(planID, family.Family.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete meal plan", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// ListReminders returns the user's reminders in the active family
func (h *PlannerHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	reminders, err := h.plannerService.ListReminders(family.Family.ID, user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list reminders", err)
		return
	}
	respondWithJSON(w, http.StatusOK, reminders)
}

type createReminderRequest struct {
	Title    string    `json:"title"`
	RemindAt time.Time `json:"remind_at"`
}

// CreateReminder adds a personal reminder
func (h *PlannerHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	var req createReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	reminder, err := h.plannerService.CreateReminder(&models.Reminder{
		FamilyID:  family.Family.ID,
		UserID:    user.ID,
		Title:     req.Title,
		RemindAt:  req.RemindAt,
		CreatedBy: user.ID,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, reminder)
}

// SetReminderCompleted toggles a reminder's completion state
func (h *PlannerHandler) SetReminderCompleted(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	reminderID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid reminder ID", err)
		return
	}
	var req completionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.plannerService.SetReminderCompleted(reminderID, family.Family.ID, req.Completed); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update reminder", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// ListNotes returns the family's notes
func (h *PlannerHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	notes, err := h.plannerService.ListNotes(family.Family.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list notes", err)
		return
	}
	respondWithJSON(w, http.StatusOK, notes)
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateNote adds a shared note
func (h *PlannerHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	note, err := h.plannerService.CreateNote(&models.Note{
		FamilyID:  family.Family.ID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: user.ID,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, note)
}

// UpdateNote rewrites a note
func (h *PlannerHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	noteID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid note ID", err)
		return
	}
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.plannerService.UpdateNote(noteID, family.Family.ID, req.Title, req.Content); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// GetDashboard returns the family's combined today view
func (h *PlannerHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	dashboard, err := h.plannerService.GetDashboard(r.Context(), family.Family.ID, user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load dashboard", err)
		return
	}
	respondWithJSON(w, http.StatusOK, dashboard)
}
