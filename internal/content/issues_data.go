package content

// Issues is the issue explorer's table of contents, in display order.
var Issues = []PoliticalIssue{
	{
		Name:    "Immigration",
		Icon:    "globe.americas.fill",
		Summary: "How should America handle people who want to come here, both legally and illegally?",
		KeyQuestions: []string{
			"What should happen to undocumented immigrants already here?",
			"How many legal immigrants should we accept each year?",
			"What criteria should we use for admitting immigrants?",
			"How should we secure the border?",
			"Should there be a path to citizenship for DACA recipients?",
		},
		Perspectives: []IssuePerspective{
			{
				Label:        "Progressive View",
				CoreArgument: "Immigration strengthens America. We should create more pathways to legal status and treat immigrants humanely.",
				SupportingPoints: []string{
					"Immigrants contribute to the economy and pay taxes",
					"America was built by immigrants",
					"Family separation and detention are inhumane",
					"Undocumented immigrants are often fleeing violence",
					"Most undocumented immigrants have been here for years and are integrated into communities",
				},
				CommonCriticism: "Critics say this approach encourages illegal immigration and doesn't address legitimate security concerns.",
				ExamplePolicy:   "Path to citizenship for DACA recipients and long-term residents",
			},
			{
				Label:        "Conservative View",
				CoreArgument: "We must enforce existing laws, secure the border, and prioritize legal immigration that serves American interests.",
				SupportingPoints: []string{
					"A nation has the right to control its borders",
					"Illegal immigration is unfair to those who follow the rules",
					"Unchecked immigration can strain public services",
					"Some immigrants pose security risks",
					"American workers face wage competition from illegal labor",
				},
				CommonCriticism: "Critics say this approach is inhumane and ignores the economic benefits of immigration.",
				ExamplePolicy:   "Complete border wall, mandatory E-Verify for employers",
			},
			{
				Label:        "Libertarian View",
				CoreArgument: "Free movement of people, like free trade, benefits everyone. Government restrictions on immigration violate individual liberty.",
				SupportingPoints: []string{
					"People should be free to live and work where they choose",
					"Immigrants create economic value",
					"Most immigration restrictions are arbitrary",
					"Free markets require free movement of labor",
				},
				CommonCriticism: "Critics say open borders are impractical and ignore national security and social cohesion concerns.",
				ExamplePolicy:   "Greatly expanded legal immigration with minimal restrictions",
			},
		},
		CommonGround: "Most Americans support some form of legal immigration and believe we should treat immigrants humanely. The disagreement is often about numbers, criteria, and what to do about those already here illegally.",
		KeyTerms: []KeyTerm{
			{Term: "DACA", Definition: "Deferred Action for Childhood Arrivals, an Obama-era program protecting undocumented immigrants brought as children"},
			{Term: "Undocumented immigrant", Definition: "Person living in the US without legal authorization", UsedBy: "Often used by progressives"},
			{Term: "Illegal alien", Definition: "Person living in the US without legal authorization", UsedBy: "Often used by conservatives"},
			{Term: "Asylum seeker", Definition: "Person fleeing persecution who requests protection in another country"},
			{Term: "Chain migration", Definition: "Family-based immigration allowing citizens to sponsor relatives", UsedBy: "Often used critically by conservatives"},
			{Term: "Family reunification", Definition: "Immigration policy allowing citizens to sponsor relatives", UsedBy: "Often used supportively by progressives"},
		},
		FurtherReading: []IssueResource{
			{Title: "Migration Policy Institute", URL: "https://www.migrationpolicy.org/", Perspective: "Nonpartisan"},
			{Title: "Center for Immigration Studies", URL: "https://cis.org/", Perspective: "Right-leaning"},
			{Title: "American Immigration Council", URL: "https://www.americanimmigrationcouncil.org/", Perspective: "Left-leaning"},
		},
	},
	{
		Name:    "Healthcare",
		Icon:    "heart.text.square.fill",
		Summary: "How should Americans get and pay for healthcare?",
		KeyQuestions: []string{
			"Should healthcare be a right or a personal responsibility?",
			"What role should government play in healthcare?",
			"How do we control rising healthcare costs?",
			"Should there be a public option or single-payer system?",
			"How should we handle pre-existing conditions?",
		},
		Perspectives: []IssuePerspective{
			{
				Label:        "Progressive View",
				CoreArgument: "Healthcare is a human right. Government should ensure universal coverage, either through single-payer or a strong public option.",
				SupportingPoints: []string{
					"The US spends more on healthcare with worse outcomes than other developed nations",
					"Medical bills are the leading cause of bankruptcy",
					"Employer-based insurance traps people in jobs",
					"Other countries provide universal coverage at lower cost",
					"Preventive care saves money long-term",
				},
				CommonCriticism: "Critics say government-run healthcare leads to long waits, rationing, and reduced innovation.",
				ExamplePolicy:   "Medicare for All, single-payer system",
			},
			{
				Label:        "Conservative View",
				CoreArgument: "Free-market competition and individual choice produce better healthcare than government programs. Government involvement increases costs and reduces quality.",
				SupportingPoints: []string{
					"America leads the world in medical innovation",
					"Government programs are inefficient and bureaucratic",
					"People should choose their own coverage based on their needs",
					"Competition drives down prices and improves quality",
					"Personal responsibility encourages healthy choices",
				},
				CommonCriticism: "Critics say market-based healthcare leaves millions uninsured and allows insurers to deny coverage.",
				ExamplePolicy:   "Health Savings Accounts, interstate insurance competition, reduced regulations",
			},
			{
				Label:        "Moderate/Bipartisan View",
				CoreArgument: "We should fix what's broken in our current system without completely replacing it. Expand access while preserving choice.",
				SupportingPoints: []string{
					"Build on the existing system rather than starting over",
					"Protect pre-existing condition coverage",
					"Add a public option for those who want it",
					"Use market mechanisms where they work",
					"Address prescription drug prices",
				},
				CommonCriticism: "Critics on the left say this doesn't go far enough; critics on the right say it's still too much government.",
				ExamplePolicy:   "ACA expansion with public option, drug price negotiation",
			},
		},
		CommonGround: "Most Americans agree that healthcare is too expensive, that people with pre-existing conditions should be protected, and that no one should go bankrupt from medical bills. The disagreement is about HOW to achieve these goals.",
		KeyTerms: []KeyTerm{
			{Term: "Single-payer", Definition: "System where government pays for all healthcare (like Medicare for everyone)"},
			{Term: "Public option", Definition: "Government-run insurance plan that competes with private insurers"},
			{Term: "Universal coverage", Definition: "System ensuring everyone has health insurance"},
			{Term: "Pre-existing condition", Definition: "Health issue that exists before getting insurance"},
			{Term: "Medicare", Definition: "Government health insurance for people 65+"},
			{Term: "Medicaid", Definition: "Government health insurance for low-income people"},
		},
		FurtherReading: []IssueResource{
			{Title: "Kaiser Family Foundation", URL: "https://www.kff.org/", Perspective: "Nonpartisan"},
			{Title: "Heritage Foundation Health Policy", URL: "https://www.heritage.org/health-care-reform", Perspective: "Right-leaning"},
			{Title: "Commonwealth Fund", URL: "https://www.commonwealthfund.org/", Perspective: "Left-leaning"},
		},
	},
}
