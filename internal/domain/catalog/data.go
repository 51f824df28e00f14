package catalog

// Vineland Social Maturity Scale, Indian adaptation (Malin), 89 items.
//
// Weighted-scheme weights are the per-item month credits of each age
// block (months spanned by the block divided by its item count), rounded
// to tenths. Under the flat scheme every item scores one point.

type blockDef struct {
	key    string
	label  string
	weight float64
}

var blockDefs = []blockDef{
	{"0-1", "0–1", 0.8},
	{"1-2", "I–II", 0.8},
	{"2-3", "II–III", 1.2},
	{"3-4", "III–IV", 2.0},
	{"4-5", "IV–V", 2.0},
	{"5-6", "V–VI", 2.4},
	{"6-7", "VI–VII", 3.0},
	{"7-8", "VII–VIII", 2.4},
	{"8-9", "VIII–IX", 4.0},
	{"9-10", "IX–X", 3.0},
	{"10-11", "X–XI", 4.0},
	{"11-12", "XI–XII", 3.0},
	{"12-15", "XII–XV", 5.1},
}

type itemDef struct {
	id     int
	skill  string
	domain Domain
	block  string
}

var itemDefs = []itemDef{
	{1, "Crows, laughs", SOC, "0-1"},
	{2, "Balances head", SHG, "0-1"},
	{3, "Grasps objects within reach", SHG, "0-1"},
	{4, "Reaches for familiar persons", SOC, "0-1"},
	{5, "Rolls over (unassisted)", LOC, "0-1"},
	{6, "Occupies self unattended", OCC, "0-1"},
	{7, "Sits unsupported", LOC, "0-1"},
	{8, "Pulls self upright", LOC, "0-1"},
	{9, "\"Talks\", imitates sounds", COM, "0-1"},
	{10, "Drinks from cup or glass (assisted)", SHE, "0-1"},
	{11, "Moves about on floor (creeping, crawling)", LOC, "0-1"},
	{12, "Grasps with thumb and finger", SHG, "0-1"},
	{13, "Demands personal attention", SOC, "0-1"},
	{14, "Stands alone", LOC, "0-1"},
	{15, "Does not drool", SHG, "0-1"},
	{16, "Follows simple instructions", COM, "0-1"},

	{17, "Walks about room unattended", LOC, "1-2"},
	{18, "Marks with pencil or crayon or chalk", OCC, "1-2"},
	{19, "Masticates (chews) solid or semi-solid food", SHE, "1-2"},
	{20, "Pulls off clothes (shoes, sandals, socks)", SHD, "1-2"},
	{21, "Overcomes simple obstacles", SHG, "1-2"},
	{22, "Fetches or carries familiar objects", OCC, "1-2"},
	{23, "Drinks from cup or glass unassisted", SHE, "1-2"},
	{24, "Walks without support", LOC, "1-2"},
	{25, "Plays with other children", SOC, "1-2"},
	{26, "Eats with own hands (biscuits, bread, etc.)", SHE, "1-2"},
	{27, "Goes about house or yard", LOC, "1-2"},
	{28, "Discriminates edible substances from non-edibles", SHG, "1-2"},
	{29, "Uses names of familiar objects", COM, "1-2"},
	{30, "Walks upstairs unassisted", LOC, "1-2"},
	{31, "Unwraps sweets, chocolates", SHG, "1-2"},
	{32, "Talks in short sentences", COM, "1-2"},

	{33, "Signals to go to toilet", SHG, "2-3"},
	{34, "Initiates own play activities", OCC, "2-3"},
	{35, "Removes shirt or frock if unbuttoned", SHD, "2-3"},
	{36, "Eats with spoon / hands (food)", SHE, "2-3"},
	{37, "Gets drink (water) unassisted", SHG, "2-3"},
	{38, "Dries own hands", SHG, "2-3"},
	{39, "Avoids simple hazards", SD, "2-3"},
	{40, "Puts on shirt or frock unassisted (need not button)", SHD, "2-3"},
	{41, "Can do paper folding / cutting", OCC, "2-3"},
	{42, "Relates experiences", COM, "2-3"},

	{43, "Walks downstairs, one step at a time", LOC, "3-4"},
	{44, "Plays cooperatively at kindergarten level", SOC, "3-4"},
	{45, "Buttons shirt or frock", SHD, "3-4"},
	{46, "Helps at little household tasks", OCC, "3-4"},
	{47, "\"Performs\" for others (reciting, singing, dancing)", SOC, "3-4"},
	{48, "Washes hands unaided", SHG, "3-4"},

	{49, "Cares for self at toilet", SHG, "4-5"},
	{50, "Washes face unassisted", SHG, "4-5"},
	{51, "Goes about neighborhood unattended", LOC, "4-5"},
	{52, "Dresses self except for tying", SHD, "4-5"},
	{53, "Uses pencil or crayon or chalk for drawing", OCC, "4-5"},
	{54, "Plays competitive exercise games (tag, hide and seek, jumping rope)", SOC, "4-5"},

	{55, "Uses skates, wagon, bicycle, scooter", LOC, "5-6"},
	{56, "Writes simple words", COM, "5-6"},
	{57, "Plays simple table games (ludo, snakes & ladders)", SOC, "5-6"},
	{58, "Is trusted with money (small errands)", SD, "5-6"},
	{59, "Goes to school unattended", LOC, "5-6"},

	{60, "Uses table knife for spreading", SHE, "6-7"},
	{61, "Uses pencil for writing", OCC, "6-7"},
	{62, "Bathes self assisted", SHG, "6-7"},
	{63, "Goes to bed unassisted", SHG, "6-7"},

	{64, "Combs or brushes hair", SHG, "7-8"},
	{65, "Uses tools or utensils", OCC, "7-8"},
	{66, "Helps at routine household tasks (sweeping, dusting, watering plants)", OCC, "7-8"},
	{67, "Reads on own initiative", COM, "7-8"},
	{68, "Bathes self unaided", SHG, "7-8"},

	{69, "Looks after self at table", SHE, "8-9"},
	{70, "Makes minor purchases (buys things from shop)", SD, "8-9"},
	{71, "Goes about hometown freely", LOC, "8-9"},

	{72, "Writes short letters", COM, "9-10"},
	{73, "Makes telephone calls", COM, "9-10"},
	{74, "Does small remunerative work", OCC, "9-10"},
	{75, "Answers advertisement; responds to information", COM, "9-10"},

	{76, "Does household tasks on demand (cooking, stitching, cleaning)", OCC, "10-11"},
	{77, "Participates in skilled games and sports (cricket, basketball, badminton)", SOC, "10-11"},
	{78, "Responsible for own personal cleanliness", SHD, "10-11"},

	{79, "Uses simple mechanics / tools (bicycle repair, sewing machine)", OCC, "11-12"},
	{80, "Does routine household tasks independently", OCC, "11-12"},
	{81, "Buys own clothing accessories", SD, "11-12"},
	{82, "Goes to nearby places alone (cinema, market, fair)", LOC, "11-12"},

	{83, "Writes letters to get information (books, magazine, toys)", COM, "12-15"},
	{84, "Plans or participates in picnic trips, outdoor sports", SOC, "12-15"},
	{85, "Assisting in housework (caring for garden, cleaning car, washing window, waiting at table)", OCC, "12-15"},
	{86, "Is left to care for self or others", SD, "12-15"},
	{87, "Enjoys books, newspapers, magazines", COM, "12-15"},
	{88, "Plays difficult games (chess, carrom, etc.) and manages own spending money", SD, "12-15"},
	{89, "Engages in creative work (art, craft, tailoring, etc.)", OCC, "12-15"},
}
