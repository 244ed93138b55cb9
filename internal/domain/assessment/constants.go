package assessment

const (
	StatusInvited    = "invited"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

const (
	QuestionTypeRating   = "rating"
	QuestionTypeYesNo    = "yes_no"
	QuestionTypeFreeText = "free_text"
)
