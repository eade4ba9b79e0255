package queue

import "time"

// Queue is one defense session of a subject. Entries are kept in ranked order.
type Queue struct {
	ID        uint      `json:"id"`
	SubjectID uint      `json:"subject_id"`
	IsActive  bool      `json:"is_active"`
	Config    Config    `json:"config"`
	Entries   []Entry   `json:"entries"`
	CreatedAt time.Time `json:"created_at"`
	// Version is bumped by the store on every committed write.
	Version int64 `json:"version"`
}

// New returns an open, empty session for subjectID.
func New(subjectID uint, cfg Config, now time.Time) *Queue {
	return &Queue{
		SubjectID: subjectID,
		IsActive:  true,
		Config:    cfg,
		Entries:   []Entry{},
		CreatedAt: now,
	}
}

// Clone returns a deep copy; mutating it never touches q.
func (q *Queue) Clone() *Queue {
	c := *q
	c.Entries = make([]Entry, len(q.Entries))
	for i, e := range q.Entries {
		c.Entries[i] = e.clone()
	}
	return &c
}

func (q *Queue) find(studentID uint) (int, bool) {
	for i, e := range q.Entries {
		if e.StudentID == studentID {
			return i, true
		}
	}
	return -1, false
}

// Entry returns the booking of studentID.
func (q *Queue) Entry(studentID uint) (Entry, bool) {
	i, ok := q.find(studentID)
	if !ok {
		return Entry{}, false
	}
	return q.Entries[i].clone(), true
}

// MinActiveLab is the lowest lab in play, or false for a queue with no active entries.
func (q *Queue) MinActiveLab() (int, bool) {
	minLab, _, ok := minActiveLab(q.Entries)
	return minLab, ok
}

func (q *Queue) rerank() {
	q.Entries = Rank(q.Entries, q.Config)
}

// Join appends a waiting entry for studentID and re-ranks.
func (q *Queue) Join(studentID uint, labNumber int, position *int, now time.Time) (Entry, error) {
	if labNumber < 1 {
		return Entry{}, invalidArgument("lab_number", "must be positive, got %d", labNumber)
	}
	if err := CanJoin(q, studentID, labNumber); err != nil {
		return Entry{}, err
	}
	if err := checkSeat(q, position); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		StudentID: studentID,
		LabNumber: labNumber,
		JoinedAt:  now,
		Status:    StatusWaiting,
	}
	if position != nil {
		p := *position
		entry.Position = &p
	}
	q.Entries = append(q.Entries, entry)
	q.rerank()
	return entry.clone(), nil
}

// Remove drops the entry of studentID and re-ranks. Leave and kick both end here.
func (q *Queue) Remove(studentID uint) error {
	i, ok := q.find(studentID)
	if !ok {
		return ErrEntryNotFound
	}
	q.Entries = append(q.Entries[:i:i], q.Entries[i+1:]...)
	q.rerank()
	return nil
}

// ChangeStatus moves the entry of studentID to status. Entering failed from any
// other status consumes one attempt.
func (q *Queue) ChangeStatus(studentID uint, status Status) (Entry, error) {
	i, ok := q.find(studentID)
	if !ok {
		return Entry{}, ErrEntryNotFound
	}
	e := &q.Entries[i]
	if q.Config.StrictTransitions && !CanTransition(e.Status, status) {
		return Entry{}, &TransitionError{From: e.Status, To: status}
	}
	if status == StatusFailed && e.Status != StatusFailed {
		e.AttemptsUsed++
	}
	e.Status = status
	updated := e.clone()
	q.rerank()
	return updated, nil
}

// Toggle flips whether the queue accepts joins and returns the new state.
func (q *Queue) Toggle() bool {
	q.IsActive = !q.IsActive
	return q.IsActive
}

var transitions = map[Status][]Status{
	StatusWaiting:   {StatusPreparing, StatusSkipped},
	StatusPreparing: {StatusDefending, StatusWaiting},
	StatusDefending: {StatusCompleted, StatusFailed},
	StatusFailed:    {StatusWaiting},
}

// CanTransition reports whether from -> to is in the strict transition graph.
// Setting the current status again is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
