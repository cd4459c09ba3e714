package content

// CivicsQuestions is the full set of 100 USCIS naturalization test
// questions. Source: U.S. Citizenship and Immigration Services.
var CivicsQuestions = []CivicsQuestion{
	{Id: 1, Question: "What is the supreme law of the land?", Answer: "The Constitution", Category: CategoryAmericanGovernment},
	{Id: 2, Question: "What does the Constitution do?", Answer: "Sets up the government, defines the government, and protects basic rights of Americans", Category: CategoryAmericanGovernment},
	{Id: 3, Question: "The idea of self-government is in the first three words of the Constitution. What are these words?", Answer: "We the People", Category: CategoryAmericanGovernment},
	{Id: 4, Question: "What is an amendment?", Answer: "A change or addition to the Constitution", Category: CategoryAmericanGovernment},
	{Id: 5, Question: "What do we call the first ten amendments to the Constitution?", Answer: "The Bill of Rights", Category: CategoryAmericanGovernment},
	{Id: 6, Question: "What is one right or freedom from the First Amendment?", Answer: "Speech, religion, assembly, press, or petition the government", Category: CategoryAmericanGovernment},
	{Id: 7, Question: "How many amendments does the Constitution have?", Answer: "27", Category: CategoryAmericanGovernment},
	{Id: 8, Question: "What did the Declaration of Independence do?", Answer: "Announced our independence from Great Britain, declared our independence, and said the United States is free", Category: CategoryAmericanGovernment},
	{Id: 9, Question: "What are two rights in the Declaration of Independence?", Answer: "Life, liberty, and the pursuit of happiness", Category: CategoryAmericanGovernment},
	{Id: 10, Question: "What is freedom of religion?", Answer: "You can practice any religion, or not practice a religion", Category: CategoryAmericanGovernment},
	{Id: 11, Question: "What is the economic system in the United States?", Answer: "Capitalist economy or market economy", Category: CategoryAmericanGovernment},
	{Id: 12, Question: "What is the \"rule of law\"?", Answer: "Everyone must follow the law. Leaders must obey the law. Government must obey the law. No one is above the law.", Category: CategoryAmericanGovernment},
	{Id: 13, Question: "Name one branch or part of the government.", Answer: "Congress, Legislative, President, Executive, the courts, or Judicial", Category: CategoryAmericanGovernment},
	{Id: 14, Question: "What stops one branch of government from becoming too powerful?", Answer: "Checks and balances, or separation of powers", Category: CategoryAmericanGovernment},
	{Id: 15, Question: "Who is in charge of the executive branch?", Answer: "The President", Category: CategoryAmericanGovernment},
	{Id: 16, Question: "Who makes federal laws?", Answer: "Congress, the Senate and House of Representatives, or the U.S. Legislature", Category: CategoryAmericanGovernment},
	{Id: 17, Question: "What are the two parts of the U.S. Congress?", Answer: "The Senate and House of Representatives", Category: CategoryAmericanGovernment},
	{Id: 18, Question: "How many U.S. Senators are there?", Answer: "100", Category: CategoryAmericanGovernment},
	{Id: 19, Question: "We elect a U.S. Senator for how many years?", Answer: "6 years", Category: CategoryAmericanGovernment},
	{Id: 20, Question: "Who is one of your state's U.S. Senators now?", Answer: "Answers vary by state (South Dakota: John Thune, Mike Rounds)", Category: CategoryAmericanGovernment},
	{Id: 21, Question: "The House of Representatives has how many voting members?", Answer: "435", Category: CategoryAmericanGovernment},
	{Id: 22, Question: "We elect a U.S. Representative for how many years?", Answer: "2 years", Category: CategoryAmericanGovernment},
	{Id: 23, Question: "Name your U.S. Representative.", Answer: "Answers vary by district", Category: CategoryAmericanGovernment},
	{Id: 24, Question: "Who does a U.S. Senator represent?", Answer: "All people of the state", Category: CategoryAmericanGovernment},
	{Id: 25, Question: "Why do some states have more Representatives than other states?", Answer: "Because of the state's population, because they have more people, or because some states have more people", Category: CategoryAmericanGovernment},
	{Id: 26, Question: "We elect a President for how many years?", Answer: "4 years", Category: CategoryAmericanGovernment},
	{Id: 27, Question: "In what month do we vote for President?", Answer: "November", Category: CategoryAmericanGovernment},
	{Id: 28, Question: "What is the name of the President of the United States now?", Answer: "Current President (answers change with elections)", Category: CategoryAmericanGovernment},
	{Id: 29, Question: "What is the name of the Vice President of the United States now?", Answer: "Current Vice President (answers change with elections)", Category: CategoryAmericanGovernment},
	{Id: 30, Question: "If the President can no longer serve, who becomes President?", Answer: "The Vice President", Category: CategoryAmericanGovernment},
	{Id: 31, Question: "If both the President and the Vice President can no longer serve, who becomes President?", Answer: "The Speaker of the House", Category: CategoryAmericanGovernment},
	{Id: 32, Question: "Who is the Commander in Chief of the military?", Answer: "The President", Category: CategoryAmericanGovernment},
	{Id: 33, Question: "Who signs bills to become laws?", Answer: "The President", Category: CategoryAmericanGovernment},
	{Id: 34, Question: "Who vetoes bills?", Answer: "The President", Category: CategoryAmericanGovernment},
	{Id: 35, Question: "What does the President's Cabinet do?", Answer: "Advises the President", Category: CategoryAmericanGovernment},
	{Id: 36, Question: "What are two Cabinet-level positions?", Answer: "Secretary of State, Secretary of Treasury, Secretary of Defense, Attorney General, and others", Category: CategoryAmericanGovernment},
	{Id: 37, Question: "What does the judicial branch do?", Answer: "Reviews laws, explains laws, resolves disputes, and decides if a law goes against the Constitution", Category: CategoryAmericanGovernment},
	{Id: 38, Question: "What is the highest court in the United States?", Answer: "The Supreme Court", Category: CategoryAmericanGovernment},
	{Id: 39, Question: "How many justices are on the Supreme Court?", Answer: "9", Category: CategoryAmericanGovernment},
	{Id: 40, Question: "Who is the Chief Justice of the United States now?", Answer: "Current Chief Justice (check current appointment)", Category: CategoryAmericanGovernment},
	{Id: 41, Question: "Under our Constitution, some powers belong to the federal government. What is one power of the federal government?", Answer: "To print money, declare war, create an army, or make treaties", Category: CategoryAmericanGovernment},
	{Id: 42, Question: "Under our Constitution, some powers belong to the states. What is one power of the states?", Answer: "Provide schooling and education, provide protection (police), provide safety (fire departments), give a driver's license, or approve zoning and land use", Category: CategoryAmericanGovernment},
	{Id: 43, Question: "Who is the Governor of your state now?", Answer: "Current Governor (South Dakota: check current)", Category: CategoryAmericanGovernment},
	{Id: 44, Question: "What is the capital of your state?", Answer: "Pierre (South Dakota)", Category: CategoryAmericanGovernment},
	{Id: 45, Question: "What are the two major political parties in the United States?", Answer: "Democratic and Republican", Category: CategoryAmericanGovernment},
	{Id: 46, Question: "What is the political party of the President now?", Answer: "Current President's party (changes with elections)", Category: CategoryAmericanGovernment},
	{Id: 47, Question: "What is the name of the Speaker of the House of Representatives now?", Answer: "Current Speaker (check current)", Category: CategoryAmericanGovernment},
	{Id: 48, Question: "There are four amendments to the Constitution about who can vote. Describe one of them.", Answer: "Citizens 18 and older can vote. Any citizen can vote (women and men). A male citizen of any race can vote. You don't have to pay to vote.", Category: CategoryAmericanGovernment},
	{Id: 49, Question: "What is one responsibility that is only for United States citizens?", Answer: "Serve on a jury or vote in a federal election", Category: CategoryAmericanGovernment},
	{Id: 50, Question: "Name one right only for United States citizens.", Answer: "Vote in a federal election or run for federal office", Category: CategoryAmericanGovernment},
	{Id: 51, Question: "What are two rights of everyone living in the United States?", Answer: "Freedom of expression, freedom of speech, freedom of assembly, freedom to petition the government, freedom of religion, or the right to bear arms", Category: CategoryAmericanGovernment},
	{Id: 52, Question: "What do we show loyalty to when we say the Pledge of Allegiance?", Answer: "The United States and the flag", Category: CategoryAmericanGovernment},
	{Id: 53, Question: "What is one promise you make when you become a United States citizen?", Answer: "Give up loyalty to other countries, defend the Constitution and laws of the United States, obey the laws of the United States, serve in the U.S. military (if needed), serve the nation (if needed), or be loyal to the United States", Category: CategoryAmericanGovernment},
	{Id: 54, Question: "How old do citizens have to be to vote for President?", Answer: "18 and older", Category: CategoryAmericanGovernment},
	{Id: 55, Question: "What are two ways that Americans can participate in their democracy?", Answer: "Vote, join a political party, help with a campaign, join a civic group, join a community group, give an elected official your opinion, call Senators and Representatives, publicly support or oppose an issue or policy, run for office, or write to a newspaper", Category: CategoryAmericanGovernment},
	{Id: 56, Question: "When is the last day you can send in federal income tax forms?", Answer: "April 15", Category: CategoryAmericanGovernment},
	{Id: 57, Question: "When must all men register for the Selective Service?", Answer: "At age 18, or between 18 and 26", Category: CategoryAmericanGovernment},
	{Id: 58, Question: "What is one reason colonists came to America?", Answer: "Freedom, political liberty, religious freedom, economic opportunity, practice their religion, or escape persecution", Category: CategoryAmericanHistory},
	{Id: 59, Question: "Who lived in America before the Europeans arrived?", Answer: "American Indians or Native Americans", Category: CategoryAmericanHistory},
	{Id: 60, Question: "What group of people was taken to America and sold as slaves?", Answer: "Africans or people from Africa", Category: CategoryAmericanHistory},
	{Id: 61, Question: "Why did the colonists fight the British?", Answer: "Because of high taxes (taxation without representation), because the British army stayed in their houses, or because they didn't have self-government", Category: CategoryAmericanHistory},
	{Id: 62, Question: "Who wrote the Declaration of Independence?", Answer: "Thomas Jefferson", Category: CategoryAmericanHistory},
	{Id: 63, Question: "When was the Declaration of Independence adopted?", Answer: "July 4, 1776", Category: CategoryAmericanHistory},
	{Id: 64, Question: "There were 13 original states. Name three.", Answer: "New Hampshire, Massachusetts, Rhode Island, Connecticut, New York, New Jersey, Pennsylvania, Delaware, Maryland, Virginia, North Carolina, South Carolina, Georgia", Category: CategoryAmericanHistory},
	{Id: 65, Question: "What happened at the Constitutional Convention?", Answer: "The Constitution was written, or the Founding Fathers wrote the Constitution", Category: CategoryAmericanHistory},
	{Id: 66, Question: "When was the Constitution written?", Answer: "1787", Category: CategoryAmericanHistory},
	{Id: 67, Question: "The Federalist Papers supported the passage of the U.S. Constitution. Name one of the writers.", Answer: "James Madison, Alexander Hamilton, John Jay, or Publius", Category: CategoryAmericanHistory},
	{Id: 68, Question: "What is one thing Benjamin Franklin is famous for?", Answer: "U.S. diplomat, oldest member of the Constitutional Convention, first Postmaster General, writer of \"Poor Richard's Almanac\", or started the first free libraries", Category: CategoryAmericanHistory},
	{Id: 69, Question: "Who is the \"Father of Our Country\"?", Answer: "George Washington", Category: CategoryAmericanHistory},
	{Id: 70, Question: "Who was the first President?", Answer: "George Washington", Category: CategoryAmericanHistory},
	{Id: 71, Question: "What territory did the United States buy from France in 1803?", Answer: "The Louisiana Territory or Louisiana", Category: CategoryAmericanHistory},
	{Id: 72, Question: "Name one war fought by the United States in the 1800s.", Answer: "War of 1812, Mexican-American War, Civil War, or Spanish-American War", Category: CategoryAmericanHistory},
	{Id: 73, Question: "Name the U.S. war between the North and the South.", Answer: "The Civil War or the War between the States", Category: CategoryAmericanHistory},
	{Id: 74, Question: "Name one problem that led to the Civil War.", Answer: "Slavery, economic reasons, or states' rights", Category: CategoryAmericanHistory},
	{Id: 75, Question: "What was one important thing that Abraham Lincoln did?", Answer: "Freed the slaves (Emancipation Proclamation), saved (or preserved) the Union, or led the United States during the Civil War", Category: CategoryAmericanHistory},
	{Id: 76, Question: "What did the Emancipation Proclamation do?", Answer: "Freed the slaves, freed slaves in the Confederacy, freed slaves in the Confederate states, or freed slaves in most Southern states", Category: CategoryAmericanHistory},
	{Id: 77, Question: "What did Susan B. Anthony do?", Answer: "Fought for women's rights or fought for civil rights", Category: CategoryAmericanHistory},
	{Id: 78, Question: "Name one war fought by the United States in the 1900s.", Answer: "World War I, World War II, Korean War, Vietnam War, or Gulf War", Category: CategoryAmericanHistory},
	{Id: 79, Question: "Who was President during World War I?", Answer: "Woodrow Wilson", Category: CategoryAmericanHistory},
	{Id: 80, Question: "Who was President during the Great Depression and World War II?", Answer: "Franklin Roosevelt", Category: CategoryAmericanHistory},
	{Id: 81, Question: "Who did the United States fight in World War II?", Answer: "Japan, Germany, and Italy", Category: CategoryAmericanHistory},
	{Id: 82, Question: "Before he was President, Eisenhower was a general. What war was he in?", Answer: "World War II", Category: CategoryAmericanHistory},
	{Id: 83, Question: "During the Cold War, what was the main concern of the United States?", Answer: "Communism", Category: CategoryAmericanHistory},
	{Id: 84, Question: "What movement tried to end racial discrimination?", Answer: "Civil rights movement", Category: CategoryAmericanHistory},
	{Id: 85, Question: "What did Martin Luther King, Jr. do?", Answer: "Fought for civil rights or worked for equality for all Americans", Category: CategoryAmericanHistory},
	{Id: 86, Question: "What major event happened on September 11, 2001, in the United States?", Answer: "Terrorists attacked the United States", Category: CategoryAmericanHistory},
	{Id: 87, Question: "Name one American Indian tribe in the United States.", Answer: "Cherokee, Navajo, Sioux, Chippewa, Choctaw, Pueblo, Apache, Iroquois, Creek, Blackfeet, Seminole, Cheyenne, Arawak, Shawnee, Mohegan, Huron, Oneida, Lakota, Crow, Teton, Hopi, Inuit, and many others", Category: CategoryAmericanHistory},
	{Id: 88, Question: "Name one of the two longest rivers in the United States.", Answer: "Missouri River or Mississippi River", Category: CategoryIntegratedCivics},
	{Id: 89, Question: "What ocean is on the West Coast of the United States?", Answer: "Pacific Ocean", Category: CategoryIntegratedCivics},
	{Id: 90, Question: "What ocean is on the East Coast of the United States?", Answer: "Atlantic Ocean", Category: CategoryIntegratedCivics},
	{Id: 91, Question: "Name one U.S. territory.", Answer: "Puerto Rico, U.S. Virgin Islands, American Samoa, Northern Mariana Islands, or Guam", Category: CategoryIntegratedCivics},
	{Id: 92, Question: "Name one state that borders Canada.", Answer: "Maine, New Hampshire, Vermont, New York, Pennsylvania, Ohio, Michigan, Minnesota, North Dakota, Montana, Idaho, Washington, or Alaska", Category: CategoryIntegratedCivics},
	{Id: 93, Question: "Name one state that borders Mexico.", Answer: "California, Arizona, New Mexico, or Texas", Category: CategoryIntegratedCivics},
	{Id: 94, Question: "What is the capital of the United States?", Answer: "Washington, D.C.", Category: CategoryIntegratedCivics},
	{Id: 95, Question: "Where is the Statue of Liberty?", Answer: "New York Harbor or Liberty Island (also acceptable: New Jersey, near New York City, on the Hudson River)", Category: CategoryIntegratedCivics},
	{Id: 96, Question: "Why does the flag have 13 stripes?", Answer: "Because there were 13 original colonies or because the stripes represent the original colonies", Category: CategoryIntegratedCivics},
	{Id: 97, Question: "Why does the flag have 50 stars?", Answer: "Because there is one star for each state, because each star represents a state, or because there are 50 states", Category: CategoryIntegratedCivics},
	{Id: 98, Question: "What is the name of the national anthem?", Answer: "The Star-Spangled Banner", Category: CategoryIntegratedCivics},
	{Id: 99, Question: "When do we celebrate Independence Day?", Answer: "July 4", Category: CategoryIntegratedCivics},
	{Id: 100, Question: "Name two national U.S. holidays.", Answer: "New Year's Day, Martin Luther King Jr. Day, Presidents' Day, Memorial Day, Independence Day, Labor Day, Columbus Day, Veterans Day, Thanksgiving, Christmas", Category: CategoryIntegratedCivics},
}
