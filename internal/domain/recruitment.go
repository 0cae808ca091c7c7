package domain

type RecruitmentStatus string

// The open/closed flag keeps the reference wire values.
const (
	RecruitmentStatusOpen   RecruitmentStatus = "yes"
	RecruitmentStatusClosed RecruitmentStatus = "no"
)

type EvaluationAction string

const (
	EvaluationApproved EvaluationAction = "approved"
	EvaluationRejected EvaluationAction = "rejected"
	EvaluationPending  EvaluationAction = "pending"
)

// Valid reports whether the action is one of the three evaluation
// decisions. Anything else must be refused before any record is read.
func (a EvaluationAction) Valid() bool {
	switch a {
	case EvaluationApproved, EvaluationRejected, EvaluationPending:
		return true
	}
	return false
}

// Recruitment is one club's recruiting drive for one semester. The
// (ClubID, Semester) pair is unique. Each applicant UID lives in
// exactly one of the three status lists.
type Recruitment struct {
	ID                  int64             `json:"id"`
	ClubID              int64             `json:"clubId"`
	ClubName            string            `json:"clubName"`
	Semester            string            `json:"semester"`
	Status              RecruitmentStatus `json:"status"`
	ApplicationDeadline *string           `json:"application_deadline"`
	Description         string            `json:"description"`
	Pending             []int64           `json:"pending_std"`
	Approved            []int64           `json:"approved_std"`
	Rejected            []int64           `json:"rejected_std"`
	CreatedOn           string            `json:"createdAt"`
	UpdatedOn           string            `json:"updatedAt"`
}

// HasApplicant reports whether the UID appears in any of the three
// status lists.
func (r *Recruitment) HasApplicant(uid int64) bool {
	return containsID(r.Pending, uid) || containsID(r.Approved, uid) || containsID(r.Rejected, uid)
}

// StatusOf derives the applicant's current status. Callers must only
// pass UIDs known to be applicants; unknown UIDs report pending, which
// matches the reference behavior.
func (r *Recruitment) StatusOf(uid int64) EvaluationAction {
	if containsID(r.Approved, uid) {
		return EvaluationApproved
	}
	if containsID(r.Rejected, uid) {
		return EvaluationRejected
	}
	return EvaluationPending
}

// SetApplicantStatus moves the UID into the list for action, removing
// it from the other two. Returns whether any list changed, so a repeat
// of the same decision is a no-op.
func (r *Recruitment) SetApplicantStatus(uid int64, action EvaluationAction) bool {
	known := r.HasApplicant(uid)
	prev := r.StatusOf(uid)

	r.Pending, _ = removeID(r.Pending, uid)
	r.Approved, _ = removeID(r.Approved, uid)
	r.Rejected, _ = removeID(r.Rejected, uid)
	switch action {
	case EvaluationApproved:
		r.Approved = append(r.Approved, uid)
	case EvaluationRejected:
		r.Rejected = append(r.Rejected, uid)
	default:
		r.Pending = append(r.Pending, uid)
	}
	return !known || prev != action
}

// Applicant is a recruitment applicant joined with the student fields
// the club review screen shows, plus the derived status.
type Applicant struct {
	UID      int64            `json:"uid"`
	Name     string           `json:"uname"`
	Email    string           `json:"umail"`
	Mobile   string           `json:"umobile"`
	Gender   string           `json:"ugender"`
	Major    string           `json:"major"`
	Semester string           `json:"semester"`
	Status   EvaluationAction `json:"status"`
}

// ActiveRecruitment is an open drive joined with its club's identity,
// as shown on the student-facing "clubs recruiting now" listing.
type ActiveRecruitment struct {
	ID                  int64   `json:"_id"`
	ClubID              int64   `json:"clubId"`
	ClubCID             int64   `json:"cid"`
	ClubName            string  `json:"clubName"`
	Semester            string  `json:"semester"`
	ApplicationDeadline *string `json:"application_deadline"`
	Description         string  `json:"description"`
	CreatedOn           string  `json:"createdAt"`
}
