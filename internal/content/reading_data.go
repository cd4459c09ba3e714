package content

// ReadingCategories is the curated civic reading list, organized by topic.
var ReadingCategories = []ReadingCategory{
	{
		Name:        "Understanding Polarization",
		Icon:        "arrow.left.arrow.right",
		Description: "Why we're so divided and how we got here",
		Books: []Book{
			{
				Title:             "Why We're Polarized",
				Author:            "Ezra Klein",
				Year:              2020,
				Description:       "Explores how media, identity, and political parties have created a self-reinforcing cycle of division.",
				WhyIncluded:       "Clear, accessible explanation of polarization dynamics from across the political spectrum.",
				PurchaseURL:       "https://www.simonandschuster.com/books/Why-Were-Polarized/Ezra-Klein/9781476700366",
				LibrarySearchTerm: "Why We're Polarized Ezra Klein",
			},
			{
				Title:             "The Righteous Mind",
				Author:            "Jonathan Haidt",
				Year:              2012,
				Description:       "Why good people are divided by politics and religion. Explores moral foundations theory.",
				WhyIncluded:       "Helps you understand why people hold different values, and why they're not crazy.",
				LibrarySearchTerm: "The Righteous Mind Jonathan Haidt",
			},
			{
				Title:             "Uncivil Agreement",
				Author:            "Lilliana Mason",
				Year:              2018,
				Description:       "How politics became our identity and why that makes compromise so hard.",
				WhyIncluded:       "Academic but accessible look at how partisan identity shapes everything.",
				LibrarySearchTerm: "Uncivil Agreement Lilliana Mason",
			},
			{
				Title:             "The Big Sort",
				Author:            "Bill Bishop",
				Year:              2008,
				Description:       "How Americans have sorted themselves into like-minded communities.",
				WhyIncluded:       "Explains geographic polarization and why we rarely encounter different views.",
				LibrarySearchTerm: "The Big Sort Bill Bishop",
			},
			{
				Title:             "Strangers in Their Own Land",
				Author:            "Arlie Russell Hochschild",
				Year:              2016,
				Description:       "A sociologist's journey into the heart of the American right.",
				WhyIncluded:       "Empathetic, nuanced portrait of conservative Americans without condescension.",
				LibrarySearchTerm: "Strangers in Their Own Land Hochschild",
			},
		},
	},
	{
		Name:        "Bridging Divides",
		Icon:        "person.2.fill",
		Description: "Practical approaches to talking across differences",
		Books: []Book{
			{
				Title:             "Beyond Your Bubble",
				Author:            "Tania Israel",
				Year:              2020,
				Description:       "How to connect across the political divide, skills and strategies.",
				WhyIncluded:       "Practical, evidence-based guide to having productive political conversations.",
				LibrarySearchTerm: "Beyond Your Bubble Tania Israel",
			},
			{
				Title:             "I Think You're Wrong (But I'm Listening)",
				Author:            "Sarah Stewart Holland & Beth Silvers",
				Year:              2019,
				Description:       "A guide to grace-filled political conversations from two friends on opposite sides.",
				WhyIncluded:       "Written by the hosts of Pantsuit Politics podcast, one progressive, one conservative.",
				LibrarySearchTerm: "I Think You're Wrong But I'm Listening",
			},
			{
				Title:             "High Conflict",
				Author:            "Amanda Ripley",
				Year:              2021,
				Description:       "Why we get trapped in conflict and how to get out.",
				WhyIncluded:       "Explores how conflict escalates and what helps de-escalate it.",
				LibrarySearchTerm: "High Conflict Amanda Ripley",
			},
			{
				Title:             "Braving the Wilderness",
				Author:            "Brené Brown",
				Year:              2017,
				Description:       "The quest for true belonging and the courage to stand alone.",
				WhyIncluded:       "On finding belonging without abandoning your values or demonizing others.",
				LibrarySearchTerm: "Braving the Wilderness Brene Brown",
			},
		},
	},
}
