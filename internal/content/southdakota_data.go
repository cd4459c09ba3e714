package content

// SouthDakotaQuestions covers state, county and municipal government,
// focused on Pennington County and Rapid City.
// Source: sdlegislature.gov and local government sites.
var SouthDakotaQuestions = []SDQuestion{
	{Id: 1, Question: "When did South Dakota become a state?", Answer: "November 2, 1889 (40th state)", Category: SDCategoryState},
	{Id: 2, Question: "What is the capital of South Dakota?", Answer: "Pierre", Category: SDCategoryState},
	{Id: 3, Question: "What is South Dakota's state motto?", Answer: "Under God the People Rule", Category: SDCategoryState},
	{Id: 4, Question: "What is the state nickname of South Dakota?", Answer: "The Mount Rushmore State (also The Coyote State)", Category: SDCategoryState},
	{Id: 5, Question: "What is the state flower of South Dakota?", Answer: "Pasque Flower", Category: SDCategoryState},
	{Id: 6, Question: "What is the state bird of South Dakota?", Answer: "Ring-necked Pheasant", Category: SDCategoryState},
	{Id: 7, Question: "What is the state animal of South Dakota?", Answer: "Coyote", Category: SDCategoryState},
	{Id: 8, Question: "What is the state fish of South Dakota?", Answer: "Walleye", Category: SDCategoryState},
	{Id: 9, Question: "What are the three branches of South Dakota state government?", Answer: "Executive, Legislative, and Judicial", Category: SDCategoryState},
	{Id: 10, Question: "Who is the head of South Dakota's executive branch?", Answer: "The Governor", Category: SDCategoryState},
	{Id: 11, Question: "How long is a term for South Dakota's Governor?", Answer: "4 years", Category: SDCategoryState},
	{Id: 12, Question: "How many terms can South Dakota's Governor serve consecutively?", Answer: "2 terms (8 years)", Category: SDCategoryState},
	{Id: 13, Question: "Who becomes Governor if the current Governor cannot serve?", Answer: "The Lieutenant Governor", Category: SDCategoryState},
	{Id: 14, Question: "What is South Dakota's legislature called?", Answer: "The South Dakota Legislature", Category: SDCategoryState},
	{Id: 15, Question: "What are the two chambers of South Dakota's Legislature?", Answer: "Senate and House of Representatives", Category: SDCategoryState},
	{Id: 16, Question: "How many members are in the South Dakota Senate?", Answer: "35 Senators", Category: SDCategoryState},
	{Id: 17, Question: "How many members are in the South Dakota House of Representatives?", Answer: "70 Representatives", Category: SDCategoryState},
	{Id: 18, Question: "How long is a term for a South Dakota State Senator?", Answer: "2 years", Category: SDCategoryState},
	{Id: 19, Question: "How long is a term for a South Dakota State Representative?", Answer: "2 years", Category: SDCategoryState},
	{Id: 20, Question: "What is the highest court in South Dakota?", Answer: "The South Dakota Supreme Court", Category: SDCategoryState},
	{Id: 21, Question: "How many justices serve on the South Dakota Supreme Court?", Answer: "5 justices", Category: SDCategoryState},
	{Id: 22, Question: "How are South Dakota Supreme Court justices selected?", Answer: "Appointed by the Governor, then face retention elections", Category: SDCategoryState},
	{Id: 23, Question: "When was the South Dakota Constitution adopted?", Answer: "October 1, 1889", Category: SDCategoryState},
	{Id: 24, Question: "What is the supreme law of South Dakota?", Answer: "The South Dakota Constitution", Category: SDCategoryState},
	{Id: 25, Question: "What is an initiated measure in South Dakota?", Answer: "A law proposed directly by citizens through petition signatures", Category: SDCategoryState},
	{Id: 26, Question: "What is a referred law in South Dakota?", Answer: "A law passed by the Legislature that is referred to voters for approval", Category: SDCategoryState},
	{Id: 27, Question: "What is a constitutional amendment in South Dakota?", Answer: "A change to the state constitution, requiring voter approval", Category: SDCategoryState},
	{Id: 28, Question: "How many signatures are needed for an initiated measure in South Dakota?", Answer: "5% of votes cast in the last gubernatorial election", Category: SDCategoryState},
	{Id: 29, Question: "What is the minimum age to vote in South Dakota?", Answer: "18 years old", Category: SDCategoryState},
	{Id: 30, Question: "How long must you be a resident of South Dakota to vote?", Answer: "You must reside in the precinct for at least 30 days", Category: SDCategoryState},
	{Id: 31, Question: "Who is South Dakota's chief elections officer?", Answer: "The Secretary of State", Category: SDCategoryState},
	{Id: 32, Question: "When are general elections held in South Dakota?", Answer: "First Tuesday after the first Monday in November", Category: SDCategoryState},
	{Id: 33, Question: "What is the deadline to register to vote in South Dakota?", Answer: "15 days before the election", Category: SDCategoryState},
	{Id: 34, Question: "Can you register to vote on Election Day in South Dakota?", Answer: "No, South Dakota does not have same-day voter registration", Category: SDCategoryState},
	{Id: 35, Question: "How many U.S. Senators does South Dakota have?", Answer: "2 Senators", Category: SDCategoryState},
	{Id: 36, Question: "How many U.S. Representatives does South Dakota have?", Answer: "1 Representative (at-large)", Category: SDCategoryState},
	{Id: 37, Question: "Why does South Dakota only have one U.S. Representative?", Answer: "Due to its population size; each state gets at least one", Category: SDCategoryState},
	{Id: 38, Question: "What territory was South Dakota part of before statehood?", Answer: "Dakota Territory", Category: SDCategoryState},
	{Id: 39, Question: "What famous monument is located in South Dakota?", Answer: "Mount Rushmore", Category: SDCategoryState},
	{Id: 40, Question: "Which four presidents are carved on Mount Rushmore?", Answer: "Washington, Jefferson, Roosevelt (Theodore), and Lincoln", Category: SDCategoryState},
	{Id: 41, Question: "What Native American memorial is being carved in the Black Hills?", Answer: "Crazy Horse Memorial", Category: SDCategoryState},
	{Id: 42, Question: "What major event happened at Wounded Knee in 1890?", Answer: "The Wounded Knee Massacre", Category: SDCategoryState},
	{Id: 43, Question: "Name one Native American tribe with reservations in South Dakota.", Answer: "Oglala Lakota, Rosebud Sioux, Cheyenne River Sioux, Standing Rock Sioux, Crow Creek, Lower Brule, Yankton, Flandreau Santee, or Sisseton-Wahpeton", Category: SDCategoryState},
	{Id: 44, Question: "What is the largest Native American reservation in South Dakota?", Answer: "Pine Ridge Indian Reservation", Category: SDCategoryState},
	{Id: 45, Question: "What river forms the eastern border of South Dakota?", Answer: "The Big Sioux River (Missouri River forms part of southern border)", Category: SDCategoryState},
	{Id: 46, Question: "What river divides South Dakota into East River and West River?", Answer: "The Missouri River", Category: SDCategoryState},
	{Id: 47, Question: "What is the highest point in South Dakota?", Answer: "Black Elk Peak (formerly Harney Peak) at 7,242 feet", Category: SDCategoryState},
	{Id: 48, Question: "What are the Badlands?", Answer: "A rugged, eroded landscape in western South Dakota; now a National Park", Category: SDCategoryState},
	{Id: 49, Question: "How many counties are in South Dakota?", Answer: "66 counties", Category: SDCategoryState},
	{Id: 50, Question: "What is the county seat of Pennington County?", Answer: "Rapid City", Category: SDCategoryCounty},
	{Id: 51, Question: "When was Pennington County established?", Answer: "1875", Category: SDCategoryCounty},
	{Id: 52, Question: "Who is Pennington County named after?", Answer: "John L. Pennington, Governor of Dakota Territory (1874-1878)", Category: SDCategoryCounty},
	{Id: 53, Question: "What is the governing body of Pennington County called?", Answer: "Board of County Commissioners", Category: SDCategoryCounty},
	{Id: 54, Question: "How many County Commissioners does Pennington County have?", Answer: "5 Commissioners", Category: SDCategoryCounty},
	{Id: 55, Question: "How long is a term for a Pennington County Commissioner?", Answer: "4 years", Category: SDCategoryCounty},
	{Id: 56, Question: "What does the County Auditor do?", Answer: "Manages elections, maintains records, handles property taxes, and serves as clerk for the Commission", Category: SDCategoryCounty},
	{Id: 57, Question: "What does the County Treasurer do?", Answer: "Collects taxes, manages county funds, and handles motor vehicle registration", Category: SDCategoryCounty},
	{Id: 58, Question: "What does the County Sheriff do?", Answer: "Provides law enforcement for unincorporated areas and the county jail", Category: SDCategoryCounty},
	{Id: 59, Question: "What does the State's Attorney do at the county level?", Answer: "Prosecutes crimes, provides legal advice to county officials", Category: SDCategoryCounty},
	{Id: 60, Question: "What does the Register of Deeds do?", Answer: "Records and maintains property documents, deeds, and mortgages", Category: SDCategoryCounty},
	{Id: 61, Question: "What is the role of the County Coroner?", Answer: "Investigates deaths and determines cause of death", Category: SDCategoryCounty},
	{Id: 62, Question: "Are Pennington County elected officials partisan or nonpartisan?", Answer: "Partisan (candidates run with party affiliation)", Category: SDCategoryCounty},
	{Id: 63, Question: "Where is the Pennington County Courthouse located?", Answer: "315 St. Joseph Street, Rapid City", Category: SDCategoryCounty},
	{Id: 64, Question: "What services does Pennington County provide?", Answer: "Roads, law enforcement, courts, elections, property records, public health, and emergency services", Category: SDCategoryCounty},
	{Id: 65, Question: "How are county commissioners elected in Pennington County?", Answer: "By district; each commissioner represents a specific geographic area", Category: SDCategoryCounty},
	{Id: 66, Question: "What is the Pennington County Planning Commission?", Answer: "An appointed board that reviews zoning and land use decisions", Category: SDCategoryCounty},
	{Id: 67, Question: "Where do Pennington County residents vote?", Answer: "At designated polling places in their precinct, or by absentee ballot", Category: SDCategoryCounty},
	{Id: 68, Question: "What is the main source of revenue for Pennington County?", Answer: "Property taxes", Category: SDCategoryCounty},
	{Id: 69, Question: "Can citizens attend County Commission meetings?", Answer: "Yes, meetings are open to the public under South Dakota open meeting laws", Category: SDCategoryCounty},
	{Id: 70, Question: "What national park is partially located in Pennington County?", Answer: "Badlands National Park", Category: SDCategoryCounty},
	{Id: 71, Question: "What is the approximate population of Pennington County?", Answer: "Approximately 115,000 (second most populous county in SD)", Category: SDCategoryCounty},
	{Id: 72, Question: "What form of government does Rapid City have?", Answer: "Mayor-Council form of government", Category: SDCategoryMunicipal},
	{Id: 73, Question: "How is the Mayor of Rapid City elected?", Answer: "Elected at-large by all city voters", Category: SDCategoryMunicipal},
	{Id: 74, Question: "How long is the term for Rapid City's Mayor?", Answer: "4 years", Category: SDCategoryMunicipal},
	{Id: 75, Question: "What is the Rapid City Common Council?", Answer: "The legislative body of Rapid City government", Category: SDCategoryMunicipal},
	{Id: 76, Question: "How many members are on the Rapid City Common Council?", Answer: "10 Council Members", Category: SDCategoryMunicipal},
	{Id: 77, Question: "How are Rapid City Council members elected?", Answer: "By ward; 2 members from each of 5 wards", Category: SDCategoryMunicipal},
	{Id: 78, Question: "How long is a term for a Rapid City Council member?", Answer: "4 years (staggered terms)", Category: SDCategoryMunicipal},
	{Id: 79, Question: "Are Rapid City elections partisan or nonpartisan?", Answer: "Nonpartisan (no party affiliation on ballot)", Category: SDCategoryMunicipal},
	{Id: 80, Question: "When are Rapid City municipal elections held?", Answer: "First Tuesday after second Monday in June (odd years)", Category: SDCategoryMunicipal},
	{Id: 81, Question: "What does the City Finance Officer do?", Answer: "Manages city finances, budget, and serves as city clerk", Category: SDCategoryMunicipal},
	{Id: 82, Question: "What is the role of the City Attorney?", Answer: "Provides legal counsel to the city and prosecutes municipal ordinance violations", Category: SDCategoryMunicipal},
	{Id: 83, Question: "Who provides police services in Rapid City?", Answer: "Rapid City Police Department", Category: SDCategoryMunicipal},
	{Id: 84, Question: "Who provides fire protection in Rapid City?", Answer: "Rapid City Fire Department", Category: SDCategoryMunicipal},
	{Id: 85, Question: "What services does Rapid City provide to residents?", Answer: "Police, fire, water, sewer, streets, parks, planning, and code enforcement", Category: SDCategoryMunicipal},
	{Id: 86, Question: "What is a city ordinance?", Answer: "A local law passed by the City Council", Category: SDCategoryMunicipal},
	{Id: 87, Question: "What is zoning?", Answer: "Regulations that control how land and buildings can be used in different areas", Category: SDCategoryMunicipal},
	{Id: 88, Question: "What is the Rapid City Planning Commission?", Answer: "An appointed board that reviews development proposals and makes zoning recommendations", Category: SDCategoryMunicipal},
	{Id: 89, Question: "Where are Rapid City Council meetings held?", Answer: "City Hall Council Chambers, 300 Sixth Street", Category: SDCategoryMunicipal},
	{Id: 90, Question: "Can citizens speak at City Council meetings?", Answer: "Yes, during public comment periods and public hearings", Category: SDCategoryMunicipal},
	{Id: 91, Question: "What is an initiative in Rapid City?", Answer: "A process where citizens can propose ordinances through petitions", Category: SDCategoryMunicipal},
	{Id: 92, Question: "What is a referendum in Rapid City?", Answer: "A process where citizens can vote to approve or reject a Council decision", Category: SDCategoryMunicipal},
	{Id: 93, Question: "What is the main source of revenue for Rapid City?", Answer: "Sales tax and property tax", Category: SDCategoryMunicipal},
	{Id: 94, Question: "Does Rapid City have a local sales tax?", Answer: "Yes, a municipal sales tax in addition to state sales tax", Category: SDCategoryMunicipal},
	{Id: 95, Question: "What is Rapid City's approximate population?", Answer: "Approximately 75,000 (second largest city in South Dakota)", Category: SDCategoryMunicipal},
	{Id: 96, Question: "What river runs through Rapid City?", Answer: "Rapid Creek", Category: SDCategoryMunicipal},
	{Id: 97, Question: "What happened in Rapid City on June 9, 1972?", Answer: "The Rapid City Flood, caused by heavy rainfall and dam failure", Category: SDCategoryMunicipal},
	{Id: 98, Question: "What is the nickname of Rapid City?", Answer: "The City of Presidents (due to presidential statues downtown)", Category: SDCategoryMunicipal},
	{Id: 99, Question: "What military installation is near Rapid City?", Answer: "Ellsworth Air Force Base", Category: SDCategoryMunicipal},
	{Id: 100, Question: "How can residents get involved in Rapid City government?", Answer: "Attend meetings, serve on boards/commissions, vote, contact elected officials, or run for office", Category: SDCategoryMunicipal},
}
