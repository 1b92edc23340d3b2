package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"famify/internal/models"
	"famify/internal/repository"
	"famify/internal/security"
)

// Seeder populates the database with the demo family dataset. The batch is
// dependency-ordered: users, then the family and memberships, then content
// rows referencing them. The first error aborts the remaining steps; rows
// already written stay in place (best-effort batch, no rollback). Running the
// seeder twice fails on the duplicate demo user emails.
type Seeder struct {
	userRepo         *repository.UserRepository
	familyRepo       *repository.FamilyRepository
	eventRepo        *repository.EventRepository
	taskRepo         *repository.TaskRepository
	listRepo         *repository.ListRepository
	mealPlanRepo     *repository.MealPlanRepository
	reminderRepo     *repository.ReminderRepository
	noteRepo         *repository.NoteRepository
	postRepo         *repository.PostRepository
	notificationRepo *repository.NotificationRepository

	clock    *Clock
	password string
}

// NewSeeder creates a seeder. An empty password selects the default demo
// password.
func NewSeeder(
	userRepo *repository.UserRepository,
	familyRepo *repository.FamilyRepository,
	eventRepo *repository.EventRepository,
	taskRepo *repository.TaskRepository,
	listRepo *repository.ListRepository,
	mealPlanRepo *repository.MealPlanRepository,
	reminderRepo *repository.ReminderRepository,
	noteRepo *repository.NoteRepository,
	postRepo *repository.PostRepository,
	notificationRepo *repository.NotificationRepository,
	password string,
) *Seeder {
	if password == "" {
		password = demoPassword
	}
	return &Seeder{
		userRepo:         userRepo,
		familyRepo:       familyRepo,
		eventRepo:        eventRepo,
		taskRepo:         taskRepo,
		listRepo:         listRepo,
		mealPlanRepo:     mealPlanRepo,
		reminderRepo:     reminderRepo,
		noteRepo:         noteRepo,
		postRepo:         postRepo,
		notificationRepo: notificationRepo,
		clock:            NewClock(),
		password:         password,
	}
}

// run state carried between steps
type seedState struct {
	johnID   int64
	patricia int64
	familyID int64
	postIDs  map[string]int64 // fixture key -> inserted post id
}

// userID maps a fixture person to a created user id
func (st *seedState) userID(p person) int64 {
	if p == patricia {
		return st.patricia
	}
	return st.johnID
}

// Run executes the seed batch
func (s *Seeder) Run(ctx context.Context) error {
	st := &seedState{postIDs: make(map[string]int64)}

	steps := []struct {
		name string
		fn   func(*seedState) error
	}{
		{"users", s.seedUsers},
		{"family", s.seedFamily},
		{"events", s.seedEvents},
		{"tasks", s.seedTasks},
		{"lists", s.seedLists},
		{"meal plans", s.seedMealPlans},
		{"reminders", s.seedReminders},
		{"notes", s.seedNotes},
		{"posts", s.seedPosts},
		{"notifications", s.seedNotifications},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Printf("Seeding %s...", step.name)
		if err := step.fn(st); err != nil {
			return fmt.Errorf("seeding %s: %w", step.name, err)
		}
	}

	log.Printf("Seed completed. Demo credentials: %s / %s (family %q)",
		johnEmail, s.password, demoFamilyName)
	return nil
}

func (s *Seeder) seedUsers(st *seedState) error {
	hash, err := security.HashPassword(s.password)
	if err != nil {
		return err
	}

	johnUser, err := s.userRepo.CreateUser(johnEmail, hash, johnName, true)
	if err != nil {
		return err
	}
	patriciaUser, err := s.userRepo.CreateUser(patriciaEmail, hash, patriciaName, true)
	if err != nil {
		return err
	}

	st.johnID = johnUser.ID
	st.patricia = patriciaUser.ID
	return nil
}

func (s *Seeder) seedFamily(st *seedState) error {
	// CreateFamily already adds the creator as a parent member
	family, err := s.familyRepo.CreateFamily(demoFamilyName, st.johnID)
	if err != nil {
		return err
	}
	st.familyID = family.ID

	if _, err := s.familyRepo.AddMember(family.ID, st.patricia, models.RoleParent); err != nil {
		return err
	}
	return nil
}

func (s *Seeder) seedEvents(st *seedState) error {
	for _, f := range eventFixtures {
		start := s.clock.TimeToday(f.Hour, f.Minute).AddDate(0, 0, f.Day)

		assignees := make([]int64, 0, len(f.AssignedTo))
		for _, p := range f.AssignedTo {
			assignees = append(assignees, st.userID(p))
		}

		_, err := s.eventRepo.Create(&models.Event{
			FamilyID:   st.familyID,
			Title:      f.Title,
			StartTime:  start,
			Category:   f.Category,
			AssignedTo: assignees,
			CreatedBy:  st.userID(f.CreatedBy),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedTasks(st *seedState) error {
	for _, f := range taskFixtures {
		var due time.Time
		if f.AtHour >= 0 {
			due = s.clock.TimeToday(f.AtHour, f.AtMinute).AddDate(0, 0, f.DueDay)
		} else {
			due = s.clock.DateTimeOffset(f.DueDay)
		}

		task := &models.Task{
			FamilyID:    st.familyID,
			Title:       f.Title,
			DueDate:     &due,
			IsCompleted: f.Completed,
			Priority:    f.Priority,
			CreatedBy:   st.userID(f.CreatedBy),
		}
		if f.AssignedTo != nobody {
			task.AssignedTo = st.userID(f.AssignedTo)
		}
		if _, err := s.taskRepo.Create(task); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedLists(st *seedState) error {
	for _, f := range listFixtures {
		list, err := s.listRepo.CreateList(&models.List{
			FamilyID:  st.familyID,
			Title:     f.Title,
			Type:      f.Type,
			CreatedBy: st.userID(f.CreatedBy),
		})
		if err != nil {
			return err
		}

		for i, item := range f.Items {
			_, err := s.listRepo.AddItem(&models.ListItem{
				ListID:    list.ID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				Unit:      item.Unit,
				IsChecked: item.Checked,
				SortOrder: i + 1,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedMealPlans(st *seedState) error {
	for _, f := range mealPlanFixtures {
		_, err := s.mealPlanRepo.Create(&models.MealPlan{
			FamilyID:    st.familyID,
			Date:        s.clock.DateOnlyOffset(f.Day),
			MealType:    f.MealType,
			Description: f.Description,
			CreatedBy:   st.userID(f.CreatedBy),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedReminders(st *seedState) error {
	for _, f := range reminderFixtures {
		_, err := s.reminderRepo.Create(&models.Reminder{
			FamilyID:  st.familyID,
			UserID:    st.userID(f.User),
			Title:     f.Title,
			RemindAt:  s.clock.TimeToday(f.Hour, f.Minute).AddDate(0, 0, f.Day),
			CreatedBy: st.userID(f.User),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedNotes(st *seedState) error {
	for _, f := range noteFixtures {
		_, err := s.noteRepo.Create(&models.Note{
			FamilyID:  st.familyID,
			Title:     f.Title,
			Content:   f.Content,
			CreatedBy: st.userID(f.CreatedBy),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// seedPosts inserts posts one at a time, recording each generated id under
// the fixture's key. Likes and comments then resolve their target post by
// key, so reordering the post fixtures cannot silently re-point them.
func (s *Seeder) seedPosts(st *seedState) error {
	for _, f := range postFixtures {
		post, err := s.postRepo.CreatePost(&models.Post{
			FamilyID:   st.familyID,
			AuthorID:   st.userID(f.Author),
			Content:    f.Content,
			Visibility: models.VisibilityFamily,
		})
		if err != nil {
			return err
		}
		st.postIDs[f.Key] = post.ID
	}

	for _, f := range likeFixtures {
		postID, ok := st.postIDs[f.PostKey]
		if !ok {
			return fmt.Errorf("like references unknown post fixture %q", f.PostKey)
		}
		if _, err := s.postRepo.AddLike(postID, st.userID(f.User)); err != nil {
			return err
		}
	}

	for _, f := range commentFixtures {
		postID, ok := st.postIDs[f.PostKey]
		if !ok {
			return fmt.Errorf("comment references unknown post fixture %q", f.PostKey)
		}
		if _, err := s.postRepo.AddComment(postID, st.userID(f.User), f.Content); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedNotifications(st *seedState) error {
	for _, f := range notificationFixtures {
		_, err := s.notificationRepo.Create(&models.Notification{
			UserID:   st.userID(f.User),
			FamilyID: st.familyID,
			Type:     f.Type,
			Title:    f.Title,
			Message:  f.Message,
			IsRead:   f.Read,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
