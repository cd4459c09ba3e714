package content

// DiscussionGuides is the full set of conversation guides, in display order.
var DiscussionGuides = []DiscussionGuide{
	{
		Title:     "Talking Across the Table",
		Subtitle:  "Navigating political conversations with family and friends",
		Icon:      "person.3.fill",
		Duration:  "Ongoing / As needed",
		GroupSize: "2-10 people",
		Overview: "Holiday gatherings and family events often bring together people with different political views. This guide helps you navigate these conversations with grace, maintain relationships, and maybe even find unexpected common ground.\n\n" +
			"Remember: The goal isn't to change minds. It's to understand each other better and preserve the relationships that matter most.",
		GroundRules: []string{
			"Relationships matter more than winning arguments",
			"You can leave a conversation at any time",
			"Ask questions out of genuine curiosity",
			"It's okay to say \"I don't know\" or \"I'll think about that\"",
			"Avoid labels and generalizations",
			"Find the person behind the position",
		},
		OpeningQuestions: []string{
			"What's something you're hopeful about for our community?",
			"What local issue affects you or your family the most?",
			"What's a value you hold that guides how you vote?",
			"What do you wish more people understood about your perspective?",
		},
		DeeperQuestions: []string{
			"Can you help me understand how you came to that view?",
			"What experiences shaped your thinking on this?",
			"What would need to be true for you to see it differently?",
			"Is there anything about the other side's argument you find reasonable?",
			"What's a time you changed your mind about something political?",
		},
		ClosingQuestions: []string{
			"What's one thing we actually agree on?",
			"What did I say that surprised you?",
			"How can we stay connected even when we disagree?",
			"What's something positive we can do together in our community?",
		},
		FacilitatorTips: []string{
			"If things get heated, pivot to shared memories or common concerns",
			"Use 'bridging' phrases: \"I hear you saying...\" or \"Help me understand...\"",
			"It's okay to set boundaries: \"I'd rather not discuss that today\"",
			"Model curiosity by asking follow-up questions",
			"Acknowledge emotions: \"I can see this matters a lot to you\"",
		},
		Takeaways: []string{
			"You don't have to resolve every disagreement",
			"Finding one point of agreement is a success",
			"People remember how you made them feel, not what you said",
			"You can disagree and still love each other",
		},
	},
	{
		Title:     "Understanding Your Neighbor",
		Subtitle:  "A conversation guide for bridging political divides",
		Icon:      "house.and.flag.fill",
		Duration:  "45-60 minutes",
		GroupSize: "2-6 people",
		Overview: "Most Americans have more in common than our political discourse suggests. This guide helps facilitate a structured conversation between people who vote differently, focusing on shared values and mutual understanding.\n\n" +
			"Based on research showing that face-to-face conversations reduce polarization more than any other intervention.",
		GroundRules: UniversalGroundRules,
		OpeningQuestions: []string{
			"What do you love most about living in South Dakota?",
			"What does being a good citizen mean to you?",
			"What's a challenge facing our community that concerns you?",
			"What would you want your kids or grandkids to know about democracy?",
		},
		DeeperQuestions: []string{
			"When you think about voting, what values guide your decisions?",
			"What's something your own party gets wrong?",
			"What's a policy issue where you feel torn or uncertain?",
			"If you could change one thing about how our government works, what would it be?",
			"What would it take to restore trust in our institutions?",
			"Do you think compromise is possible? What would it look like?",
		},
		ClosingQuestions: []string{
			"What did you learn about me that surprised you?",
			"Where do our values actually overlap?",
			"What's one thing we could work on together locally?",
			"Would you be willing to have another conversation like this?",
		},
		FacilitatorTips: []string{
			"Start with personal stories, not policy positions",
			"When someone shares a view you disagree with, respond with curiosity: \"Tell me more\"",
			"Look for the underlying value behind each position",
			"If someone says something factually incorrect, gently redirect rather than correct",
			"End on a positive note, even if you still disagree",
		},
		Takeaways: []string{
			"Most people want similar things: safety, opportunity, fairness",
			"We disagree on how to get there, not where we're going",
			"Understanding doesn't require agreement",
			"One conversation won't change everything, but it's a start",
		},
	},
	{
		Title:     "Our Community, Our Future",
		Subtitle:  "Discussing local issues that affect us all",
		Icon:      "building.2.fill",
		Duration:  "60-90 minutes",
		GroupSize: "4-12 people",
		Overview: "Local issues affect our daily lives more than national politics, yet we often spend more time debating distant issues than the ones in our own backyard.\n\n" +
			"This guide helps community members discuss local challenges and opportunities in a productive, solution-oriented way.",
		GroundRules: append(append([]string{}, UniversalGroundRules...),
			"Focus on local issues, not national politics",
			"Everyone's experience in this community is valid",
			"Propose solutions, not just problems",
		),
		OpeningQuestions: []string{
			"How long have you lived here? What brought you to this community?",
			"What do you appreciate most about our town or county?",
			"What's changed in our community over the past 10 years, for better or worse?",
			"If you could show a visitor one thing about our community, what would it be?",
		},
		DeeperQuestions: []string{
			"What local issue keeps you up at night?",
			"Where should our tax dollars be prioritized?",
			"How can we attract and keep young people in our community?",
			"What's working well in our local government? What isn't?",
			"How do we balance growth with preserving what makes us special?",
			"What role should citizens play in local decision-making?",
		},
		ClosingQuestions: []string{
			"What's one local issue we seem to agree on?",
			"What's a small, concrete step our community could take?",
			"How can we stay engaged beyond this conversation?",
			"Who else should be part of these discussions?",
		},
		FacilitatorTips: []string{
			"Keep discussions focused on local, actionable issues",
			"Encourage people to speak from their own experience",
			"If national politics come up, gently redirect: \"How does that play out locally?\"",
			"Make sure quieter voices get heard",
			"Capture action items and follow up",
		},
		Takeaways: []string{
			"Local change is possible and meaningful",
			"Showing up at city council matters more than online debates",
			"Your neighbors are your best allies for local improvement",
			"Democracy works best when we start at home",
		},
	},
}
