package queue

// labLookahead is how far past the lowest in-progress lab a student may book.
const labLookahead = 2

// CanJoin checks a join request against q. It must be evaluated on the same
// snapshot the insertion is applied to.
func CanJoin(q *Queue, studentID uint, labNumber int) error {
	if !q.IsActive {
		return ErrQueueClosed
	}
	if _, ok := q.find(studentID); ok {
		return ErrDuplicateEntry
	}
	if q.Config.MinMaxRuleEnabled {
		if minLab, _, ok := minActiveLab(q.Entries); ok {
			maxAllowed := minLab + labLookahead
			if labNumber > maxAllowed {
				return &LabLimitError{LabNumber: labNumber, MinLab: minLab, MaxAllowed: maxAllowed}
			}
		}
	}
	return nil
}

// checkSeat rejects a seat outside 1..MaxSlots or one held by an active entry.
func checkSeat(q *Queue, position *int) error {
	if position == nil {
		return nil
	}
	p := *position
	if p < 1 || p > q.Config.MaxSlots {
		return invalidArgument("position", "must be between 1 and %d, got %d", q.Config.MaxSlots, p)
	}
	for _, e := range q.Entries {
		if e.Status.Active() && e.Position != nil && *e.Position == p {
			return &SeatTakenError{Position: p, StudentID: e.StudentID}
		}
	}
	return nil
}
