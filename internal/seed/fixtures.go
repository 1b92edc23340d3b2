package seed

// Demo dataset for "The Johnsons". Dates are expressed as day offsets from
// the seeder's clock so the demo always lands around the day it is run.

// person identifies one of the two demo users inside fixture definitions
type person int

const (
	john person = iota
	patricia
	nobody person = -1
)

const (
	demoFamilyName = "The Johnsons"
	demoPassword   = "Demo123!"
	johnEmail      = "john@famify-demo.com"
	johnName       = "John"
	patriciaEmail  = "patricia@famify-demo.com"
	patriciaName   = "Patricia"
)

type eventFixture struct {
	Title      string
	Day        int // offset from today
	Hour       int
	Minute     int
	Category   string
	AssignedTo []person
	CreatedBy  person
}

var eventFixtures = []eventFixture{
	{Title: "Julia's Health Checkup", Day: 0, Hour: 14, Category: "health", AssignedTo: []person{patricia}, CreatedBy: patricia},
	{Title: "Family Dinner", Day: 0, Hour: 19, Category: "family", AssignedTo: []person{john, patricia}, CreatedBy: john},
	{Title: "Piano Lessons", Day: 0, Hour: 16, Category: "activity", CreatedBy: john},
	{Title: "Weekend Shopping", Day: 5, Hour: 10, Category: "chores", AssignedTo: []person{patricia}, CreatedBy: patricia},
	{Title: "Soccer Practice", Day: 1, Hour: 15, Category: "activity", AssignedTo: []person{john}, CreatedBy: john},
	{Title: "Dentist Appointment", Day: 1, Hour: 10, Category: "health", CreatedBy: patricia},
	{Title: "Movie Night", Day: 4, Hour: 20, Category: "family", AssignedTo: []person{john, patricia}, CreatedBy: john},
	{Title: "Grocery Run", Day: 5, Hour: 11, Category: "chores", AssignedTo: []person{john}, CreatedBy: john},
	{Title: "Play Date", Day: 2, Hour: 14, Category: "family", CreatedBy: patricia},
	{Title: "Swimming Class", Day: 3, Hour: 9, Category: "activity", CreatedBy: john},
	{Title: "PTA Meeting", Day: 3, Hour: 18, Category: "other", AssignedTo: []person{patricia}, CreatedBy: patricia},
	{Title: "Sunday Brunch", Day: 6, Hour: 10, Minute: 30, Category: "family", AssignedTo: []person{john, patricia}, CreatedBy: john},
}

type taskFixture struct {
	Title      string
	DueDay     int
	AtHour     int // -1 means keep the clock's time of day
	AtMinute   int
	Completed  bool
	Priority   string
	AssignedTo person
	CreatedBy  person
}

var taskFixtures = []taskFixture{
	{Title: "Pay electricity bill", DueDay: -7, AtHour: -1, Priority: "high", AssignedTo: patricia, CreatedBy: patricia},
	{Title: "Pick up kids from soccer practice", DueDay: -1, AtHour: -1, Priority: "medium", AssignedTo: john, CreatedBy: john},
	{Title: "Prepare dinner", DueDay: 0, AtHour: 18, Priority: "medium", AssignedTo: john, CreatedBy: john},
	{Title: "Parent-teacher conference", DueDay: 1, AtHour: -1, Priority: "high", AssignedTo: nobody, CreatedBy: patricia},
	{Title: "Book summer camp", DueDay: 3, AtHour: -1, Priority: "medium", AssignedTo: patricia, CreatedBy: patricia},
	{Title: "Fix bathroom faucet", DueDay: 5, AtHour: -1, Priority: "low", AssignedTo: john, CreatedBy: john},
	{Title: "Order school supplies", DueDay: 2, AtHour: -1, Priority: "medium", AssignedTo: patricia, CreatedBy: patricia},
	{Title: "Schedule family photo", DueDay: -2, AtHour: -1, Completed: true, Priority: "low", AssignedTo: john, CreatedBy: john},
}

type listFixture struct {
	Title     string
	Type      string
	CreatedBy person
	Items     []listItemFixture
}

type listItemFixture struct {
	Name     string
	Quantity string
	Unit     string
	Checked  bool
}

var listFixtures = []listFixture{
	{
		Title: "Grocery Shopping", Type: "grocery", CreatedBy: patricia,
		Items: []listItemFixture{
			{Name: "Chicken", Quantity: "1", Unit: "kg"},
			{Name: "Tomatoes", Quantity: "500", Unit: "g"},
			{Name: "Orange Juice", Quantity: "1", Unit: "L"},
			{Name: "Bread", Quantity: "500", Unit: "g", Checked: true},
			{Name: "Milk", Quantity: "2", Unit: "L"},
			{Name: "Eggs", Quantity: "12", Unit: "pcs"},
			{Name: "Rice", Quantity: "1", Unit: "kg"},
			{Name: "Apples", Quantity: "6", Unit: "pcs"},
		},
	},
	{
		Title: "Back to School", Type: "shopping", CreatedBy: john,
		Items: []listItemFixture{
			{Name: "Backpack", Quantity: "1", Checked: true},
			{Name: "Notebooks", Quantity: "5"},
			{Name: "Pencils", Quantity: "12"},
			{Name: "Lunch box", Quantity: "1"},
			{Name: "Water bottle", Quantity: "1", Checked: true},
		},
	},
}

type mealPlanFixture struct {
	Day         int
	MealType    string
	Description string
	CreatedBy   person
}

var mealPlanFixtures = []mealPlanFixture{
	{Day: 0, MealType: "dinner", Description: "Grilled Fish 🐟 • Sautéed Vegetables • Strawberry Cheesecake 🧁", CreatedBy: patricia},
	{Day: 1, MealType: "breakfast", Description: "Soft Bread 🍞 • Hot Chocolate ☕", CreatedBy: john},
	{Day: 1, MealType: "lunch", Description: "Tomato Salad 🍅 • Yogurt 🥛", CreatedBy: patricia},
	{Day: 2, MealType: "dinner", Description: "Pasta Bolognese 🍝 • Garlic Bread 🧄", CreatedBy: john},
	{Day: 3, MealType: "breakfast", Description: "Pancakes 🥞 • Fresh Juice 🍊", CreatedBy: patricia},
	{Day: 4, MealType: "lunch", Description: "Chicken Wrap 🌯 • Fruit Salad 🍇", CreatedBy: john},
	{Day: 5, MealType: "dinner", Description: "Homemade Pizza 🍕 • Caesar Salad 🥗", CreatedBy: patricia},
	{Day: 6, MealType: "breakfast", Description: "Eggs Benedict 🍳 • Avocado Toast 🥑", CreatedBy: john},
	{Day: 6, MealType: "dinner", Description: "BBQ Chicken 🍗 • Corn on the Cob 🌽 • Coleslaw", CreatedBy: patricia},
}

type reminderFixture struct {
	Title  string
	Day    int
	Hour   int
	Minute int
	User   person
}

var reminderFixtures = []reminderFixture{
	{Title: "Take vitamins", Day: 0, Hour: 9, User: patricia},
	{Title: "Turn off the oven", Day: 0, Hour: 18, User: john},
	{Title: "Call dentist", Day: 0, Hour: 14, User: patricia},
	{Title: "Pick up dry cleaning", Day: 1, Hour: 10, User: john},
	{Title: "Water the plants", Day: 1, Hour: 7, User: patricia},
}

type noteFixture struct {
	Title     string
	Content   string
	CreatedBy person
}

var noteFixtures = []noteFixture{
	{Title: "Julia's Note", Content: "HEY MOMMY! I LOVE YOU SO MUCH! 💖", CreatedBy: john},
	{Title: "Budget", Content: "Grocery budget this week: $150. Farmers market on Saturday.", CreatedBy: patricia},
	{Title: "Piano Recital", Content: "Julia's piano recital June 15th — invite grandparents! Buy flowers.", CreatedBy: john},
}

// Posts are keyed so that likes and comments can reference them by name
// instead of by insertion position.
type postFixture struct {
	Key     string
	Author  person
	Content string
}

var postFixtures = []postFixture{
	{Key: "first-tooth", Author: john, Content: "Julia lost her first tooth today! 🦷 So proud!"},
	{Key: "hiking-trip", Author: patricia, Content: "Family hiking trip was amazing! 🏔️"},
	{Key: "first-day-of-school", Author: john, Content: "First day of school! They grow up so fast 😢💕"},
	{Key: "homemade-pasta", Author: patricia, Content: "Made homemade pasta tonight 👩‍🍳"},
	{Key: "soccer-win", Author: john, Content: "Soccer team won their first game! ⚽🏆"},
	{Key: "game-night", Author: patricia, Content: "Sunday game night — Julia destroyed us at Uno 😂"},
	{Key: "garden", Author: john, Content: "Planted a garden with the kids 🌱"},
	{Key: "family-picture", Author: patricia, Content: "Julia drew the most beautiful family picture 🎨"},
}

type likeFixture struct {
	PostKey string
	User    person
}

var likeFixtures = []likeFixture{
	{PostKey: "first-tooth", User: patricia},
	{PostKey: "hiking-trip", User: john},
	{PostKey: "first-day-of-school", User: patricia},
	{PostKey: "soccer-win", User: patricia},
}

type commentFixture struct {
	PostKey string
	User    person
	Content string
}

var commentFixtures = []commentFixture{
	{PostKey: "first-tooth", User: patricia, Content: "So sweet! Time flies 💕"},
	{PostKey: "hiking-trip", User: john, Content: "Best day ever! 🎉"},
	{PostKey: "game-night", User: john, Content: "She is the Uno champion! 😄"},
}

type notificationFixture struct {
	User    person
	Type    string
	Title   string
	Message string
	Read    bool
}

var notificationFixtures = []notificationFixture{
	{User: patricia, Type: "task", Title: "Task Assigned", Message: "John assigned you: Pay electricity bill"},
	{User: john, Type: "event", Title: "Upcoming Event", Message: "Soccer Practice tomorrow at 3 PM"},
	{User: patricia, Type: "like", Title: "New Like", Message: "John liked your post", Read: true},
	{User: john, Type: "comment", Title: "New Comment", Message: "Patricia commented on your post"},
}
