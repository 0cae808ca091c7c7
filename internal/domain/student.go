package domain

// Student represents a registered student account. UID is the
// university-issued numeric identifier and is unique across students.
type Student struct {
	ID           int64   `json:"id"`
	UID          int64   `json:"uid"`
	Name         string  `json:"uname"`
	DOB          string  `json:"dob"`
	Email        string  `json:"umail"`
	Mobile       string  `json:"umobile"`
	Gender       string  `json:"ugender"`
	PasswordHash string  `json:"-"`
	Major        string  `json:"major"`
	Semester     string  `json:"semester"`
	Clubs        []int64 `json:"clubs"`     // confirmed club CIDs
	PendingClubs []int64 `json:"pen_clubs"` // CIDs with a pending application
}

// StudentUpdate carries the profile fields a student may edit.
// Nil means "leave unchanged".
type StudentUpdate struct {
	DOB      *string `json:"dob,omitempty"`
	Email    *string `json:"umail,omitempty"`
	Mobile   *string `json:"umobile,omitempty"`
	Gender   *string `json:"ugender,omitempty"`
	Major    *string `json:"major,omitempty"`
	Semester *string `json:"semester,omitempty"`
}

// MemberOf reports whether the student holds a confirmed membership in
// the club with the given CID.
func (s *Student) MemberOf(cid int64) bool {
	return containsID(s.Clubs, cid)
}

// HasPendingApplication reports whether the student has an outstanding
// application to the club with the given CID.
func (s *Student) HasPendingApplication(cid int64) bool {
	return containsID(s.PendingClubs, cid)
}

// ApplyDecision mirrors an evaluation decision onto the student's club
// lists: approved puts the CID on the confirmed list, pending on the
// pending list, rejected on neither. Returns whether either list
// changed.
func (s *Student) ApplyDecision(cid int64, action EvaluationAction) bool {
	var c1, c2 bool
	switch action {
	case EvaluationApproved:
		s.PendingClubs, c1 = removeID(s.PendingClubs, cid)
		s.Clubs, c2 = appendID(s.Clubs, cid)
	case EvaluationPending:
		s.Clubs, c1 = removeID(s.Clubs, cid)
		s.PendingClubs, c2 = appendID(s.PendingClubs, cid)
	default:
		s.Clubs, c1 = removeID(s.Clubs, cid)
		s.PendingClubs, c2 = removeID(s.PendingClubs, cid)
	}
	return c1 || c2
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// removeID returns ids without id, preserving order. The second return
// reports whether anything was removed.
func removeID(ids []int64, id int64) ([]int64, bool) {
	out := ids[:0:0]
	removed := false
	for _, v := range ids {
		if v == id {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out, removed
}

// appendID appends id if absent, keeping set semantics on the slice.
func appendID(ids []int64, id int64) ([]int64, bool) {
	if containsID(ids, id) {
		return ids, false
	}
	return append(ids, id), true
}
