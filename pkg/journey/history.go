package journey

// historyNodes is the built-in discovery history, in listening order.
var historyNodes = []Node{
	// Conscious blues-rock, the entry point.
	{ID: "Derek", Label: "Derek And The Dominos", Status: StatusDone, Note: "Layla Album. The Entry Point"},

	// Excavating Clapton.
	{ID: "Clapton", Label: "Eric Clapton (Solo)", Status: StatusDone, Note: "The Roots"},
	{ID: "Mayall", Label: "John Mayall And The Bluesbreakers", Status: StatusDone, Note: "The Beano Album. Talent Incubator"},

	// Power trio.
	{ID: "Cream", Label: "Cream", Status: StatusDone, Note: "Heavy Psychedelic Blues"},

	// Branches.
	{ID: "BlindFaith", Label: "Blind Faith", Status: StatusDone, Note: "Steve Winwood carries the load"},

	// Next stations.
	{ID: "PeterGreen", Label: "Fleetwood Mac (Early)", Status: StatusNext, Note: "Album \"The Pious Bird...\"\nTrack \"Albatross\""},
	{ID: "Allman", Label: "Allman Brothers Band", Status: StatusBacklog, Note: "Duane Allman (Slide Guitar)"},
}

var historyEdges = []Edge{
	{From: "Derek", To: "Clapton", Label: "Who is the guitarist?"},
	{From: "Clapton", To: "Mayall", Label: "Where did he come from?"},
	{From: "Mayall", To: "Cream", Label: "Where did Eric go?"},
	{From: "Cream", To: "BlindFaith", Label: "What after the breakup?"},

	// Recommendation branch, the current path.
	{From: "Mayall", To: "PeterGreen", Label: "Who replaced Eric?",
		Style: EdgeStyle{Color: "#dd6b20", Dash: DashDashed, PenWidth: 2.0}},

	// Layla -> Allman, for later.
	{From: "Derek", To: "Allman", Label: "Who is the 2nd guitarist?",
		Style: EdgeStyle{Dash: DashDotted}},
}

// History returns a fresh copy of the built-in journey.
func History() *Journey {
	j, err := Build(historyNodes, historyEdges)
	if err != nil {
		panic("journey: built-in history is invalid: " + err.Error())
	}
	return j
}
