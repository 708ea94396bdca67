package badge

// Action is the closed set of counted activity kinds.
type Action string

const (
	ActionPost     Action = "post"
	ActionAnswer   Action = "answer"
	ActionQuestion Action = "question"
	ActionComment  Action = "comment"
	ActionLike     Action = "like"
)

func (a Action) Valid() bool {
	switch a {
	case ActionPost, ActionAnswer, ActionQuestion, ActionComment, ActionLike:
		return true
	}
	return false
}

// Milestone pairs a counter threshold with the badge it awards. Thresholds
// are ascending and awarded on exact equality, so a counter jump past a
// threshold (which cannot happen with single increments) would not re-fire.
type Milestone struct {
	Threshold int
	Badge     string
}

// First-action badges, awarded when the counter reaches exactly 1.
var firstBadges = map[Action]string{
	ActionPost:     "First Post",
	ActionAnswer:   "Helper",
	ActionQuestion: "Curious Mind",
	ActionComment:  "Conversationalist",
	ActionLike:     "Supporter",
}

var milestones = map[Action][]Milestone{
	ActionPost: {
		{10, "Rising Writer-10 Posts"},
		{25, "Active Writer-25 Posts"},
		{50, "Dedicated Writer-50 Posts"},
		{100, "Prolific Writer-100 Posts"},
		{200, "Master Writer-200 Posts"},
		{500, "Legendary Writer-500 Posts"},
	},
	ActionAnswer: {
		{10, "Rising Helper-10 Answers"},
		{25, "Active Helper-25 Answers"},
		{50, "Dedicated Helper-50 Answers"},
		{100, "Prolific Helper-100 Answers"},
		{250, "Master Helper-250 Answers"},
		{500, "Legendary Helper-500 Answers"},
	},
	ActionQuestion: {
		{5, "Rising Asker-5 Questions"},
		{15, "Active Asker-15 Questions"},
		{30, "Dedicated Asker-30 Questions"},
		{50, "Prolific Asker-50 Questions"},
		{100, "Master Asker-100 Questions"},
		{250, "Legendary Asker-250 Questions"},
	},
	ActionComment: {
		{20, "Rising Commenter-20 Comments"},
		{50, "Active Commenter-50 Comments"},
		{100, "Dedicated Commenter-100 Comments"},
		{200, "Prolific Commenter-200 Comments"},
		{500, "Legendary Commenter-500 Comments"},
	},
	ActionLike: {
		{50, "Rising Supporter-50 Likes"},
		{100, "Active Supporter-100 Likes"},
		{250, "Dedicated Supporter-250 Likes"},
		{500, "Prolific Supporter-500 Likes"},
		{1000, "Legendary Supporter-1000 Likes"},
	},
}
