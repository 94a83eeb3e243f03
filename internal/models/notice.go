package models

import "time"

// NoticeAudience defines who can see a notice.
type NoticeAudience string

const (
	AudienceAll      NoticeAudience = "all"
	AudienceStudents NoticeAudience = "students"
	AudienceTeachers NoticeAudience = "teachers"
)

// Valid returns true when the audience is a supported value.
func (a NoticeAudience) Valid() bool {
	switch a {
	case AudienceAll, AudienceStudents, AudienceTeachers:
		return true
	default:
		return false
	}
}

// VisibleTo reports whether a notice targeted at this audience is
// shown to the given role. "all" is always included.
func (a NoticeAudience) VisibleTo(role UserRole) bool {
	return a == AudienceAll || string(a) == string(role)+"s"
}

// NoticePriority enumerates notice urgency levels.
type NoticePriority string

const (
	PriorityLow    NoticePriority = "low"
	PriorityMedium NoticePriority = "medium"
	PriorityHigh   NoticePriority = "high"
)

// Valid returns true when the priority is a supported value.
func (p NoticePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Notice is an append-only announcement, newest first.
type Notice struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	Author         string         `json:"author"`
	AuthorRole     UserRole       `json:"authorRole"`
	TargetAudience NoticeAudience `json:"targetAudience"`
	Date           time.Time      `json:"date"`
	Priority       NoticePriority `json:"priority"`
}
