package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Score types recorded in the mark log.
const (
	ScoreTypeMentor  = "Mentor"
	ScoreTypeCCE     = "CCE"
	ScoreTypePenalty = "Penalty"
	ScoreTypeCredit  = "Credit"
)

// JSONB custom type for JSON fields
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSONB)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, j)
}

// scanJSON decodes a raw database value into dest, leaving dest untouched on NULL.
func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	}
	return nil
}

// Base model with UUID
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// ExtraMark is a single extracurricular/program mark for one academic year.
type ExtraMark struct {
	MarkID       uuid.UUID  `json:"mark_id"`
	AcademicYear string     `json:"academic_year"`
	ProgramID    *uuid.UUID `json:"program_id,omitempty"`
	ProgramName  string     `json:"program_name"`
	Mark         float64    `json:"mark"`
	Date         time.Time  `json:"date"`
}

type ExtraMarkList []ExtraMark

func (l ExtraMarkList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *ExtraMarkList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// MentorMark holds the mentor's mark for one academic year.
// At most one entry per academic year exists on a student.
type MentorMark struct {
	AcademicYear string  `json:"academic_year"`
	Mark         float64 `json:"mark"`
}

type MentorMarkList []MentorMark

func (l MentorMarkList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *MentorMarkList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// CceSubjectMark is one (subject, phase) assessment mark inside a CCE group.
type CceSubjectMark struct {
	SubjectName string  `json:"subject_name"`
	Phase       string  `json:"phase"`
	Mark        float64 `json:"mark"`
}

// CceMark groups phase assessment marks by academic year and class name.
// At most one group per (academic_year, class_name) exists on a student;
// subjects within a group are unique by (subject_name, phase).
type CceMark struct {
	AcademicYear string           `json:"academic_year"`
	ClassName    string           `json:"class_name"`
	Subjects     []CceSubjectMark `json:"subjects"`
}

type CceMarkList []CceMark

func (l CceMarkList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *CceMarkList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// MarkItem is a class-level credit or penalty entry.
type MarkItem struct {
	MarkID       uuid.UUID `json:"mark_id"`
	AcademicYear string    `json:"academic_year"`
	Item         string    `json:"item"`
	Score        float64   `json:"score"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
}

type MarkItemList []MarkItem

func (l MarkItemList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *MarkItemList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *UUIDList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// PKVPhaseMark is a single phase mark inside a PKV entry.
type PKVPhaseMark struct {
	Phase string    `json:"phase"`
	Mark  float64   `json:"mark"`
	Date  time.Time `json:"date"`
}

// PKVEntry groups phase marks by academic year and semester.
type PKVEntry struct {
	AcademicYear string         `json:"academic_year"`
	Semester     string         `json:"semester"`
	Marks        []PKVPhaseMark `json:"marks"`
}

type PKVEntryList []PKVEntry

func (l PKVEntryList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *PKVEntryList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// User represents system users (admin/teacher)
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(20);not null" json:"role"`
	FullName     string `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	Meta         JSONB  `gorm:"type:json" json:"meta"`
}

// Class represents a class. Subjects behave as a set; credits and penalties
// are the authoritative ledger entries for class-level aggregation.
type Class struct {
	BaseModel
	Name      string       `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	IconURL   string       `gorm:"type:varchar(500)" json:"icon_url"`
	Subjects  StringList   `gorm:"type:json" json:"subjects"`
	Credits   MarkItemList `gorm:"type:json" json:"credits"`
	Penalties MarkItemList `gorm:"type:json" json:"penalties"`
}

// Student represents a student and owns its per-category mark collections.
type Student struct {
	BaseModel
	AdmissionNo string         `gorm:"type:varchar(50);not null;uniqueIndex" json:"admission_no"`
	FirstName   string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string         `gorm:"type:varchar(100);not null" json:"last_name"`
	Gender      string         `gorm:"type:varchar(10)" json:"gender"`
	ClassID     *uuid.UUID     `gorm:"type:char(36);index" json:"class_id"`
	ExtraMarks  ExtraMarkList  `gorm:"type:json" json:"extra_marks"`
	MentorMarks MentorMarkList `gorm:"type:json" json:"mentor_marks"`
	CceMarks    CceMarkList    `gorm:"type:json" json:"cce_marks"`
	Class       *Class         `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

// Program is an extracurricular program with a time window and eligibility.
type Program struct {
	BaseModel
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Criteria        string    `gorm:"type:text" json:"criteria"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null" json:"end_date"`
	EligibleClasses UUIDList  `gorm:"type:json" json:"eligible_classes"`
}

// Theme is a display label over an inclusive score band. Ranges of
// non-deleted themes are pairwise non-overlapping.
type Theme struct {
	BaseModel
	Label   string  `gorm:"type:varchar(100);not null" json:"label"`
	MinMark float64 `gorm:"not null" json:"min_mark"`
	MaxMark float64 `gorm:"not null" json:"max_mark"`
}

// PKVRecord holds a student's supplementary phase marks, one entry per
// (academic_year, semester), one mark per phase inside an entry.
type PKVRecord struct {
	BaseModel
	StudentID uuid.UUID    `gorm:"type:char(36);not null;uniqueIndex" json:"student_id"`
	Entries   PKVEntryList `gorm:"type:json" json:"entries"`
	Student   *Student     `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// Semester gates PKV mark writes: locked semesters reject add/update.
type Semester struct {
	BaseModel
	Name   string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Locked bool   `gorm:"default:false" json:"locked"`
}

// MarkLog is an audit projection of scoring actions, keyed by
// (user_id, academic_year, title). It is never read for aggregation.
type MarkLog struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:char(36);not null;index:idx_marklog_user_year" json:"user_id"`
	MarkID       uuid.UUID `gorm:"type:char(36)" json:"mark_id"`
	AcademicYear string    `gorm:"type:varchar(20);not null;index:idx_marklog_user_year" json:"academic_year"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Score        float64   `gorm:"not null" json:"score"`
	Date         time.Time `json:"date"`
	ScoreType    string    `gorm:"type:varchar(20);not null" json:"score_type"`
}

// RefreshToken stores refresh tokens for revocation
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index" json:"user_id"`
	Token     string    `gorm:"type:varchar(500);uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	Revoked   bool      `gorm:"default:false;index" json:"revoked"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (r *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
