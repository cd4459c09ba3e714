package content

// PoliticalIssue is a balanced explainer presenting an issue from multiple
// perspectives. It describes the debate, it does not pick a side.
type PoliticalIssue struct {
	Name           string
	Icon           string
	Summary        string
	KeyQuestions   []string
	Perspectives   []IssuePerspective
	CommonGround   string
	KeyTerms       []KeyTerm
	FurtherReading []IssueResource
}

// IssuePerspective is one side's framing of an issue, stated in its own
// strongest terms, paired with the common criticism of it.
type IssuePerspective struct {
	Label            string
	CoreArgument     string
	SupportingPoints []string
	CommonCriticism  string
	ExamplePolicy    string
}

// KeyTerm defines vocabulary readers will encounter around an issue. UsedBy
// notes when a term signals a perspective; empty means neutral.
type KeyTerm struct {
	Term       string
	Definition string
	UsedBy     string
}

// IssueResource is a further-reading link, labeled with its lean.
type IssueResource struct {
	Title       string
	URL         string
	Perspective string
}

// IssueDisclaimer is shown before any issue content.
const IssueDisclaimer = "This section presents multiple perspectives on controversial issues. We're not telling you which view is correct. We're helping you understand the debate.\n\n" +
	"You'll find thoughtful people on all sides of these issues. Understanding WHY people disagree is the first step to productive conversation."
