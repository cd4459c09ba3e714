package content

// Documents is the founding documents reference table. Bookmark rows key on
// the slug ids, so they must never change once shipped.
var Documents = []Document{
	{
		Id:       "declaration-of-independence",
		Title:    "Declaration of Independence",
		Subtitle: "The announcement of American independence",
		Year:     1776,
		Category: "Founding",
		Icon:     "scroll",
		Content:  "We hold these truths to be self-evident, that all men are created equal, that they are endowed by their Creator with certain unalienable Rights, that among these are Life, Liberty and the pursuit of Happiness. That to secure these rights, Governments are instituted among Men, deriving their just powers from the consent of the governed.",
	},
	{
		Id:       "constitution",
		Title:    "The Constitution",
		Subtitle: "The supreme law of the land",
		Year:     1787,
		Category: "Founding",
		Icon:     "building.columns",
		Content:  "We the People of the United States, in Order to form a more perfect Union, establish Justice, insure domestic Tranquility, provide for the common defence, promote the general Welfare, and secure the Blessings of Liberty to ourselves and our Posterity, do ordain and establish this Constitution for the United States of America.",
	},
	{
		Id:       "bill-of-rights",
		Title:    "Bill of Rights",
		Subtitle: "The first ten amendments",
		Year:     1791,
		Category: "Amendments",
		Icon:     "list.number",
		Content:  "Congress shall make no law respecting an establishment of religion, or prohibiting the free exercise thereof; or abridging the freedom of speech, or of the press; or the right of the people peaceably to assemble, and to petition the Government for a redress of grievances.",
	},
	{
		Id:       "federalist-10",
		Title:    "Federalist No. 10",
		Subtitle: "Madison on factions and the extended republic",
		Year:     1787,
		Category: "Federalist Papers",
		Icon:     "text.book.closed",
		Content:  "Among the numerous advantages promised by a well constructed Union, none deserves to be more accurately developed than its tendency to break and control the violence of faction. The friend of popular governments never finds himself so much alarmed for their character and fate, as when he contemplates their propensity to this dangerous vice.",
	},
	{
		Id:       "federalist-51",
		Title:    "Federalist No. 51",
		Subtitle: "Checks and balances between the departments",
		Year:     1788,
		Category: "Federalist Papers",
		Icon:     "text.book.closed",
		Content:  "Ambition must be made to counteract ambition. The interest of the man must be connected with the constitutional rights of the place. It may be a reflection on human nature, that such devices should be necessary to control the abuses of government. But what is government itself, but the greatest of all reflections on human nature?",
	},
	{
		Id:       "gettysburg-address",
		Title:    "Gettysburg Address",
		Subtitle: "Lincoln's dedication at Gettysburg",
		Year:     1863,
		Category: "Speeches",
		Icon:     "mic",
		Content:  "Four score and seven years ago our fathers brought forth on this continent, a new nation, conceived in Liberty, and dedicated to the proposition that all men are created equal. It is rather for us to be here dedicated to the great task remaining before us, that government of the people, by the people, for the people, shall not perish from the earth.",
	},
	{
		Id:       "emancipation-proclamation",
		Title:    "Emancipation Proclamation",
		Subtitle: "Freedom declared in the rebelling states",
		Year:     1863,
		Category: "Speeches",
		Icon:     "scroll",
		Content:  "All persons held as slaves within any State or designated part of a State, the people whereof shall then be in rebellion against the United States, shall be then, thenceforward, and forever free; and the Executive Government of the United States, including the military and naval authority thereof, will recognize and maintain the freedom of such persons.",
	},
	{
		Id:       "sd-constitution",
		Title:    "South Dakota Constitution",
		Subtitle: "The state's founding charter",
		Year:     1889,
		Category: "South Dakota",
		Icon:     "flag",
		Content:  "We, the people of South Dakota, grateful to Almighty God for our civil and religious liberties, in order to form a more perfect and independent government, establish justice, insure tranquility, provide for the common defense, promote the general welfare and preserve to ourselves and to our posterity the blessings of liberty, do ordain and establish this Constitution for the state of South Dakota.",
	},
}
