package content

// DiscussionGuide is a structured framework for facilitating a nonpartisan
// civic conversation.
type DiscussionGuide struct {
	Title            string
	Subtitle         string
	Icon             string
	Duration         string
	GroupSize        string
	Overview         string
	GroundRules      []string
	OpeningQuestions []string
	DeeperQuestions  []string
	ClosingQuestions []string
	FacilitatorTips  []string
	Takeaways        []string
}

// UniversalGroundRules are the baseline conversation rules shared by every
// guide. Individual guides may extend them.
var UniversalGroundRules = []string{
	"Listen to understand, not to respond",
	"Speak from your own experience using \"I\" statements",
	"Assume good intentions from others",
	"Respect that reasonable people can disagree",
	"Keep confidentiality - share ideas, not names",
	"One voice at a time - no interrupting",
	"Challenge ideas, not people",
	"It's okay to change your mind",
}
