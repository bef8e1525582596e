package reading

// The banks below are immutable. Selection code must copy before
// shuffling; the briefing banks are indexed by day of year and never
// shuffled at all.

var briefingBanks = map[string][]string{
	"Aries": {
		"The day opens like a starting gun. Your instinct to move first is correct; just pick the direction before noon.",
		"Heat without a hearth scatters. Gather your energy around one goal and watch how fast it catches.",
		"Someone needs you to lead without announcing that you are leading. Quiet initiative wins today.",
		"Your impatience is information. Whatever you cannot stop pushing toward is probably the real priority.",
	},
	"Taurus": {
		"Slow is not stuck. The thing you are building gains more from one steady hour than from a week of rushing.",
		"Comfort is your compass today; follow it toward the work that feels like tending, not forcing.",
		"Hold your ground gently. The pressure to decide quickly is someone else's tempo, not yours.",
		"An overdue pleasure wants scheduling. Treat rest as a commitment, not a leftover.",
	},
	"Gemini": {
		"Two conversations are really one conversation wearing different outfits. Name the common thread and both resolve.",
		"Your curiosity is the tool of the day. The question you are slightly embarrassed to ask unlocks the room.",
		"Scatter is a signal, not a flaw. Choose three threads, drop the rest, and brilliance follows.",
		"A message you almost do not send turns out to matter. Send the kind one.",
	},
	"Cancer": {
		"The tide favors the place where home and work meet. A small domestic fix pays emotional dividends all week.",
		"Protect the soft opening of the day. Who you talk to before ten decides the mood until dusk.",
		"You are holding more than your share. Set one thing down and notice that nothing falls.",
		"Intuition is loud today; logic can have the afternoon. Let the morning be felt, not argued.",
	},
	"Leo": {
		"The spotlight finds you without your asking. Use the attention for something you actually care about.",
		"Generosity is your power move today. Credit given returns doubled before the week ends.",
		"Your warmth is infrastructure; someone is building on it. Show up steady rather than dazzling.",
		"Pride and joy are neighbors. Visit the second one first and the first takes care of itself.",
	},
	"Virgo": {
		"One precise correction beats ten general improvements. Find the load-bearing detail.",
		"The list is not the life. Do the first three items, then let the afternoon improvise.",
		"Someone needs your eye, not your verdict. Point at the thing; let them name it.",
		"Perfection is hiding progress again. Ship the draft; annotate later.",
	},
	"Libra": {
		"Balance today is not the middle; it is knowing which side needs your weight. Lean deliberately.",
		"A decision you have been polishing is already made. Say it out loud and feel the relief.",
		"Beauty is functional today. Straightening the desk straightens the thinking.",
		"Two invitations compete. The quieter one holds the better company.",
	},
	"Scorpio": {
		"What is unsaid is running the meeting. Name one true thing and watch the room reorganize.",
		"Your focus can cut or cauterize today. Choose repair.",
		"A secret loosens its grip when you stop guarding it alone. Choose one trusted ear.",
		"Depth is your shortcut. The surface answer costs more time than the honest dig.",
	},
	"Sagittarius": {
		"The horizon is negotiable; the first step is not. Book the thing.",
		"Your humor is a key today. The tense conversation opens with the honest joke.",
		"Restlessness marks the trailhead. Follow it one hour out and you will know.",
		"Teach what you just learned while the uphill is still fresh in your legs.",
	},
	"Capricorn": {
		"The summit moves closer when you stop checking the view. Head down, one switchback today.",
		"Authority looks like calm today. The steadiest voice in the room sets the plan.",
		"An old discipline wants reviving. The twenty-minute version still counts.",
		"Build the boring scaffolding now; the impressive part goes up fast next week.",
	},
	"Aquarius": {
		"The odd idea is the right idea; it is just early. Write it down before consensus talks you out of it.",
		"Your detachment is a gift today. Be the one who sees the system while others argue the pieces.",
		"Community is the experiment. Introduce the unlikely pair and watch the chemistry.",
		"Rebel in the useful direction: break the routine that stopped serving you, keep the one that still does.",
	},
	"Pisces": {
		"The dream is data. Whatever surfaced before waking belongs somewhere in today's plans.",
		"Your empathy needs a container today. Help with edges, or the afternoon dissolves.",
		"Art is both the exit and the entrance. Ten creative minutes reset the day's whole current.",
		"The current is real; so is the rudder. Drift on purpose.",
	},
}

var doPool = []string{
	"Start the conversation you have been postponing.",
	"Write down the idea that keeps circling back.",
	"Take the scenic route and let your mind wander.",
	"Say yes to the invitation that scares you a little.",
	"Clear one small corner of clutter, physical or digital.",
	"Reach out to someone who crossed your mind this week.",
	"Move your body before noon, even briefly.",
	"Ask the question you think is too obvious to ask.",
	"Finish something small and let yourself feel finished.",
	"Trust the first draft; refine it tomorrow.",
	"Spend ten quiet minutes away from every screen.",
	"Let someone help you without supervising them.",
	"Revisit a goal you shelved earlier this year.",
	"Cook or eat something that reminds you of home.",
	"Back the plan up with one concrete number.",
	"Celebrate a win out loud instead of minimizing it.",
}

var dontPool = []string{
	"Don't reread old messages hunting for new meanings.",
	"Don't commit to a deadline mid-conversation.",
	"Don't mistake urgency for importance.",
	"Don't explain your decision twice to the same person.",
	"Don't shop your feelings away after sunset.",
	"Don't pick the fight that picked you.",
	"Don't promise speed when the work needs depth.",
	"Don't compare your morning to someone else's highlight reel.",
	"Don't sign anything you have not slept on.",
	"Don't fill every silence; some of them are working.",
	"Don't take the bait in the group chat.",
	"Don't let perfect block the merely excellent.",
	"Don't borrow tomorrow's worry at today's prices.",
	"Don't skip the meal that keeps you civil.",
	"Don't answer the late-night message before morning.",
	"Don't turn one setback into a verdict on yourself.",
}

type highlightTemplate struct {
	Title   string
	Details []string
}

var highlightTemplates = []highlightTemplate{
	{
		Title: "Moon sextile Mercury",
		Details: []string{
			"Feelings and words cooperate; say the hard thing gently.",
			"Your emotional read on the room is accurate. Trust it.",
			"A short message lands with surprising warmth.",
		},
	},
	{
		Title: "Venus trine Jupiter",
		Details: []string{
			"Charm scales today; ask for slightly more than feels polite.",
			"Pleasure and growth point the same direction for once.",
			"Generosity returns multiplied before sunset.",
		},
	},
	{
		Title: "Mercury conjunct Midheaven",
		Details: []string{
			"Your ideas carry further than usual; publish, post, or pitch.",
			"The right word at the right moment opens a professional door.",
			"Explain the plan once, clearly, and watch it travel.",
		},
	},
	{
		Title: "Mars trine Saturn",
		Details: []string{
			"Drive meets discipline; the grind feels almost frictionless.",
			"Slow power: one deliberate push moves the immovable thing.",
			"Your stamina outlasts the obstacle today.",
		},
	},
	{
		Title: "Sun sextile Uranus",
		Details: []string{
			"A small experiment pays off; change one variable.",
			"The unconventional choice is also the practical one.",
			"Freedom arrives through a side door you almost ignored.",
		},
	},
	{
		Title: "Venus square Neptune",
		Details: []string{
			"Romantic fog rolls in: verify before you idealize.",
			"The fantasy is instructive, not actionable. Enjoy it, then check.",
			"Boundaries keep tenderness from turning to static.",
		},
	},
	{
		Title: "Moon trine Pluto",
		Details: []string{
			"Emotional honesty goes subterranean and returns with treasure.",
			"You can name the undercurrent today. Naming it is power.",
			"Let one old feeling finish its sentence.",
		},
	},
	{
		Title: "Jupiter sextile Ascendant",
		Details: []string{
			"You look like luck to someone watching; act accordingly.",
			"Optimism spreads outward from your corner of the room.",
			"The bigger version of the plan is suddenly easy to describe.",
		},
	},
}

var luckyColors = []string{
	"Crimson",
	"Emerald",
	"Sapphire Blue",
	"Gold",
	"Silver",
	"Lavender",
	"Coral",
	"Teal",
	"Burgundy",
	"Ivory",
	"Midnight Blue",
	"Rose Quartz",
	"Amber",
	"Jade",
}

var luckyTimes = []string{
	"6:00 AM",
	"7:30 AM",
	"9:00 AM",
	"10:30 AM",
	"12:00 PM",
	"1:30 PM",
	"3:00 PM",
	"4:30 PM",
	"6:00 PM",
	"7:30 PM",
	"9:00 PM",
	"11:11 PM",
}
