package nav

// A View identifies the screen a renderer shows for a route.
type View string

const (
	HackathonCreateView View = "hackathon-create"
	HackathonDetailView View = "hackathon-detail"
	HackathonListView   View = "hackathon-list"
	LoginView           View = "login"
	ProfileView         View = "profile"
	RegisterView        View = "register"
)

// String implements fmt.Stringer.
func (v View) String() string { return string(v) }

// Route names of DefaultTable.
const (
	CreateHackathonName = "CreateHackathon"
	HackathonDetailName = "HackathonDetail"
	HackathonListName   = "HackathonList"
	HackathonsName      = "Hackathons"
	LoginName           = "Login"
	ProfileName         = "Profile"
	RegisterName        = "Register"
)

// LoginPath is where unauthenticated navigations to protected routes end up.
const LoginPath = "/login"

// A Descriptor declares a single route.
//
// Path is absolute for top-level Descriptors and relative to the parent for Children.
type Descriptor struct {
	Path         string
	Name         string
	View         View
	RequiresAuth bool
	Children     []Descriptor
}

// DefaultDescriptors returns the routes of the application in declaration order.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		{Path: "/", Name: HackathonListName, View: HackathonListView},
		{Path: "/register", Name: RegisterName, View: RegisterView},
		{Path: LoginPath, Name: LoginName, View: LoginView},
		{Path: "/profile", Name: ProfileName, View: ProfileView, RequiresAuth: true},
		{Path: "/hackathons", Name: HackathonsName, View: HackathonListView},
		{Path: "/hackathons/:id", Name: HackathonDetailName, View: HackathonDetailView, RequiresAuth: true},
		{Path: "/hackathons/create", Name: CreateHackathonName, View: HackathonCreateView, RequiresAuth: true},
	}
}

// DefaultTable constructs the Table of the application's routes.
func DefaultTable() *Table {
	t, err := NewTable(DefaultDescriptors()...)
	if err != nil {
		panic(err)
	}

	return t
}
