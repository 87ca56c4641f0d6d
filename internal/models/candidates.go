package models

// Candidate is one search result. The concrete type is one of Job, Company,
// Post, Person, Service, Group, Event or Course; switch on the type (or on
// Category()) to read the payload.
type Candidate interface {
	CandidateID() string
	Category() Category
	candidate()
}

type Job struct {
	ID          string   `json:"id" toml:"id"`
	Title       string   `json:"title" toml:"title"`
	Company     string   `json:"company" toml:"company"`
	Location    string   `json:"location" toml:"location"`
	Type        string   `json:"type" toml:"type"`
	Salary      string   `json:"salary" toml:"salary"`
	PostedTime  string   `json:"postedTime" toml:"posted_time"`
	Description string   `json:"description" toml:"description"`
	Skills      []string `json:"skills" toml:"skills"`
	Featured    bool     `json:"featured,omitempty" toml:"featured"`
	Remote      bool     `json:"remote,omitempty" toml:"remote"`
	Experience  string   `json:"experience,omitempty" toml:"experience"`
	Industry    string   `json:"industry,omitempty" toml:"industry"`
	Logo        string   `json:"logo,omitempty" toml:"logo"`
}

type Company struct {
	ID          string  `json:"id" toml:"id"`
	Name        string  `json:"name" toml:"name"`
	Industry    string  `json:"industry" toml:"industry"`
	Location    string  `json:"location" toml:"location"`
	Employees   string  `json:"employees" toml:"employees"`
	Rating      float64 `json:"rating" toml:"rating"`
	Description string  `json:"description" toml:"description"`
	OpenJobs    int     `json:"openJobs" toml:"open_jobs"`
	Featured    bool    `json:"featured,omitempty" toml:"featured"`
	Logo        string  `json:"logo,omitempty" toml:"logo"`
}

// Author is the person a Post is attributed to.
type Author struct {
	Name   string `json:"name" toml:"name"`
	Title  string `json:"title" toml:"title"`
	Avatar string `json:"avatar,omitempty" toml:"avatar"`
}

type Post struct {
	ID        string `json:"id" toml:"id"`
	Author    Author `json:"author" toml:"author"`
	Content   string `json:"content" toml:"content"`
	Timestamp string `json:"timestamp" toml:"timestamp"`
	Likes     int    `json:"likes" toml:"likes"`
	Comments  int    `json:"comments" toml:"comments"`
	Shares    int    `json:"shares" toml:"shares"`
	Image     string `json:"image,omitempty" toml:"image"`
}

type Person struct {
	ID      string `json:"id" toml:"id"`
	Name    string `json:"name" toml:"name"`
	Title   string `json:"title" toml:"title"`
	Company string `json:"company" toml:"company"`
}

type Service struct {
	ID          string   `json:"id" toml:"id"`
	Title       string   `json:"title" toml:"title"`
	Provider    string   `json:"provider" toml:"provider"`
	Price       string   `json:"price" toml:"price"`
	Rating      float64  `json:"rating" toml:"rating"`
	Description string   `json:"description" toml:"description"`
	Skills      []string `json:"skills" toml:"skills"`
}

type Group struct {
	ID          string `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Members     string `json:"members" toml:"members"`
	Description string `json:"description" toml:"description"`
	Topic       string `json:"category" toml:"category"`
}

type Event struct {
	ID        string `json:"id" toml:"id"`
	Title     string `json:"title" toml:"title"`
	Date      string `json:"date" toml:"date"`
	Location  string `json:"location" toml:"location"`
	Attendees string `json:"attendees" toml:"attendees"`
	Type      string `json:"type" toml:"type"`
}

type Course struct {
	ID         string  `json:"id" toml:"id"`
	Title      string  `json:"title" toml:"title"`
	Instructor string  `json:"instructor" toml:"instructor"`
	Duration   string  `json:"duration" toml:"duration"`
	Level      string  `json:"level" toml:"level"`
	Price      string  `json:"price" toml:"price"`
	Rating     float64 `json:"rating" toml:"rating"`
}

func (j Job) CandidateID() string     { return j.ID }
func (c Company) CandidateID() string { return c.ID }
func (p Post) CandidateID() string    { return p.ID }
func (p Person) CandidateID() string  { return p.ID }
func (s Service) CandidateID() string { return s.ID }
func (g Group) CandidateID() string   { return g.ID }
func (e Event) CandidateID() string   { return e.ID }
func (c Course) CandidateID() string  { return c.ID }

func (Job) Category() Category     { return CategoryJob }
func (Company) Category() Category { return CategoryCompany }
func (Post) Category() Category    { return CategoryPost }
func (Person) Category() Category  { return CategoryPerson }
func (Service) Category() Category { return CategoryService }
func (Group) Category() Category   { return CategoryGroup }
func (Event) Category() Category   { return CategoryEvent }
func (Course) Category() Category  { return CategoryCourse }

func (Job) candidate()     {}
func (Company) candidate() {}
func (Post) candidate()    {}
func (Person) candidate()  {}
func (Service) candidate() {}
func (Group) candidate()   {}
func (Event) candidate()   {}
func (Course) candidate()  {}
