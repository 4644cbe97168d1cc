// Package policy decides what an authenticated user may do with an exam.
package policy

import (
	"strings"

	"github.com/SAP-F-2025/practice-exam-service/internal/auth"
	"github.com/SAP-F-2025/practice-exam-service/internal/models"
)

// Denial reasons reported with 403 responses
const (
	ReasonNotOwner   = "not_owner"
	ReasonSampleExam = "sample_exam"
	ReasonNotAdmin   = "not_admin"
)

// Policy holds the exam access rules for one configured admin
type Policy struct {
	adminEmail string
}

// New builds a policy whose admin is the principal with adminEmail. An empty
// adminEmail grants admin rights to nobody.
func New(adminEmail string) *Policy {
	return &Policy{adminEmail: strings.ToLower(strings.TrimSpace(adminEmail))}
}

// IsAdmin reports whether user is the configured admin. Emails compare
// case-insensitively.
func (p *Policy) IsAdmin(user *auth.User) bool {
	if user == nil || p.adminEmail == "" {
		return false
	}
	return strings.ToLower(strings.TrimSpace(user.Email)) == p.adminEmail
}

// CanReadExam reports whether user may view exam. Samples are readable by
// everyone, other exams only by their owner or the admin.
func (p *Policy) CanReadExam(user *auth.User, exam *models.Exam) bool {
	if user == nil || exam == nil {
		return false
	}
	return exam.IsOwnedBy(user.ID) || exam.IsSample || p.IsAdmin(user)
}

// CanDeleteOwnedExam applies the owner route rule: the caller must own the
// exam and the exam must not be a sample. Admin rights do not apply here.
func (p *Policy) CanDeleteOwnedExam(user *auth.User, exam *models.Exam) (bool, string) {
	if user == nil || exam == nil || !exam.IsOwnedBy(user.ID) {
		return false, ReasonNotOwner
	}
	if exam.IsSample {
		return false, ReasonSampleExam
	}
	return true, ""
}

// CanDeleteAnyExam applies the admin route rule: admin only, regardless of
// ownership or sample flag.
func (p *Policy) CanDeleteAnyExam(user *auth.User) (bool, string) {
	if !p.IsAdmin(user) {
		return false, ReasonNotAdmin
	}
	return true, ""
}
