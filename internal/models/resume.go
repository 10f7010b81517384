package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StructuredResume is the shape the extraction prompt asks the model for.
// Field names double as the JSON contract with the model and the front end.
type StructuredResume struct {
	ProfessionalSummary string       `bson:"professional_summary" json:"professional_summary"`
	Skills              []string     `bson:"skills" json:"skills"`
	PersonalInfo        PersonalInfo `bson:"personal_info" json:"personal_info"`
	Experience          []Experience `bson:"experience" json:"experience"`
	Projects            []Project    `bson:"projects" json:"projects"`
	Education           []Education  `bson:"education" json:"education"`
}

type PersonalInfo struct {
	FullName   string `bson:"full_name" json:"full_name"`
	Profession string `bson:"profession" json:"profession"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone" json:"phone"`
	Location   string `bson:"location" json:"location"`
	LinkedIn   string `bson:"linkedIn" json:"linkedIn"`
	Website    string `bson:"website" json:"website"`
}

type Experience struct {
	Company     string `bson:"company" json:"company"`
	Position    string `bson:"position" json:"position"`
	StartDate   string `bson:"start_date" json:"start_date"`
	EndDate     string `bson:"end_date" json:"end_date"`
	Description string `bson:"description" json:"description"`
	IsCurrent   bool   `bson:"is_current" json:"is_current"`
}

type Project struct {
	Name        string `bson:"name" json:"name"`
	Type        string `bson:"type" json:"type"`
	Description string `bson:"description" json:"description"`
}

type Education struct {
	Institution    string `bson:"institution" json:"institution"`
	Degree         string `bson:"degree" json:"degree"`
	Field          string `bson:"field" json:"field"`
	GraduationDate string `bson:"graduation_date" json:"graduation_date"`
	GPA            string `bson:"gpa" json:"gpa"`
}

// Resume is the persisted document in the "resumes" collection.
type Resume struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID string             `bson:"user_id" json:"userId"`
	Title  string             `bson:"title" json:"title"`

	StructuredResume `bson:",inline"`

	// object path of the uploaded original, when archiving is enabled
	SourceFile string `bson:"source_file,omitempty" json:"sourceFile,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// NewResume combines parsed model output with its owner and title.
func NewResume(userID, title string, data StructuredResume) *Resume {
	now := time.Now().UTC()
	return &Resume{
		UserID:           userID,
		Title:            title,
		StructuredResume: data,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ResumeSummary is the list projection of a resume.
type ResumeSummary struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
