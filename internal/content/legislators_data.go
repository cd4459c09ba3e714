package content

// USCongressMembers is South Dakota's congressional delegation.
// Source: sdlegislature.gov and congress.gov, 71st session.
var USCongressMembers = []Legislator{
	{Name: "John Thune", Chamber: ChamberUSSenate, District: 0, Party: PartyRepublican, Email: "john_thune@thune.senate.gov", Phone: "(202) 224-2321", Hometown: "Sioux Falls"},
	{Name: "Mike Rounds", Chamber: ChamberUSSenate, District: 0, Party: PartyRepublican, Email: "mike_rounds@rounds.senate.gov", Phone: "(202) 224-5842", Hometown: "Fort Pierre"},
	{Name: "Dusty Johnson", Chamber: ChamberUSHouse, District: 1, Party: PartyRepublican, Email: "dusty.johnson@mail.house.gov", Phone: "(202) 225-2801", Hometown: "Mitchell"},
}

// StateLegislators lists the state senate and house entries carried by the
// app. Refreshed each legislative session.
var StateLegislators = []Legislator{
	{Name: "Larry Tidemann", Chamber: ChamberSDSenate, District: 7, Party: PartyRepublican, Email: "larry.tidemann@sdlegislature.gov", Hometown: "Brookings"},
	{Name: "Helene Duhamel", Chamber: ChamberSDSenate, District: 32, Party: PartyRepublican, Email: "helene.duhamel@sdlegislature.gov", Hometown: "Rapid City"},
	{Name: "Michael Rohl", Chamber: ChamberSDSenate, District: 33, Party: PartyRepublican, Email: "michael.rohl@sdlegislature.gov", Hometown: "Aberdeen"},
	{Name: "Jim Bolin", Chamber: ChamberSDSenate, District: 16, Party: PartyRepublican, Email: "jim.bolin@sdlegislature.gov", Hometown: "Canton"},
	{Name: "Reynold Nesiba", Chamber: ChamberSDSenate, District: 15, Party: PartyDemocrat, Email: "reynold.nesiba@sdlegislature.gov", Hometown: "Sioux Falls"},
	{Name: "Jon Hansen", Chamber: ChamberSDHouse, District: 25, Party: PartyRepublican, Email: "jon.hansen@sdlegislature.gov", Hometown: "Dell Rapids"},
	{Name: "Tina Mulally", Chamber: ChamberSDHouse, District: 35, Party: PartyRepublican, Email: "tina.mulally@sdlegislature.gov", Hometown: "Rapid City"},
	{Name: "Scott Odenbach", Chamber: ChamberSDHouse, District: 31, Party: PartyRepublican, Email: "scott.odenbach@sdlegislature.gov", Hometown: "Spearfish"},
	{Name: "Peri Pourier", Chamber: ChamberSDHouse, District: 27, Party: PartyDemocrat, Email: "peri.pourier@sdlegislature.gov", Hometown: "Pine Ridge"},
	{Name: "Linda Duba", Chamber: ChamberSDHouse, District: 15, Party: PartyDemocrat, Email: "linda.duba@sdlegislature.gov", Hometown: "Sioux Falls"},
}
