package entity

import (
	"fmt"
	"time"
)

const AnyYear = "Any Year"

type RecruitmentPost struct {
	ID               string     `json:"id" firestore:"id"`
	RecruiterID      string     `json:"recruiter_id" firestore:"recruiterId"`
	RecruiterName    string     `json:"recruiter_name" firestore:"recruiterName"`
	RecruiterCollege string     `json:"recruiter_college" firestore:"recruiterCollege"`
	Purpose          string     `json:"purpose" firestore:"purpose"`
	MaxStudents      int        `json:"max_students" firestore:"maxStudents"`
	Event            string     `json:"event" firestore:"event"`
	Qualities        string     `json:"qualities" firestore:"qualities"`
	Years            []string   `json:"years" firestore:"years"`
	Description      string     `json:"description" firestore:"description"`
	IsActive         bool       `json:"is_active" firestore:"isActive"`
	CreatedAt        time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty" firestore:"updatedAt,omitempty"`
}

// InquiryText is the opening message sent when a student answers this post.
func (p *RecruitmentPost) InquiryText() string {
	return fmt.Sprintf("Hi! I'm interested in joining your team for \"%s\". Let's discuss!", p.Purpose)
}

// InquiryNotice is what the recruiter is told when someone answers this post.
func (p *RecruitmentPost) InquiryNotice() string {
	return fmt.Sprintf("Someone is interested in your recruitment post: \"%s\"", p.Purpose)
}

// NormalizeYears returns years, or the "Any Year" default when empty.
func NormalizeYears(years []string) []string {
	if len(years) == 0 {
		return []string{AnyYear}
	}
	return years
}
