package games

// PasswordLevel is one password-guessing exercise: the player reconstructs a
// weak password from publicly visible hints.
type PasswordLevel struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Password string   `json:"password"`
	Hints    []string `json:"hints"`
	Tip      string   `json:"tip"`
}

// PasswordLevels returns the full password-guessing catalog.
func PasswordLevels() []PasswordLevel {
	return passwordLevels
}

var passwordLevels = []PasswordLevel{
	{
		ID:       1,
		Title:    "Social Media Influencer",
		Password: "Fluffy2018",
		Hints: []string{
			"Instagram handle @fluffylover mentions their Persian cat 'Fluffy'",
			"Profile creation date: March 2018",
			"Bio states: 'Cat mom since 2018'",
			"Posts show cat named Fluffy in 40+ photos",
		},
		Tip: "Pet names combined with significant years are extremely common passwords.",
	},
	{
		ID:       2,
		Title:    "Corporate Employee",
		Password: "Spring2024!",
		Hints: []string{
			"Company enforces quarterly password changes",
			"Current season and year: Spring 2024",
			"Password policy: 8+ characters, 1 special character",
			"Previous passwords detected: Winter2023!, Fall2023!",
		},
		Tip: "Predictable patterns like Season+Year+! are easily guessed.",
	},
	{
		ID:       3,
		Title:    "Startup Founder",
		Password: "TechGenius99",
		Hints: []string{
			"LinkedIn: 'Tech enthusiast, founder of startup'",
			"Twitter handle: @TechGenius99",
			"Loves coding and innovation",
			"Joined LinkedIn in 1999 (birth year referenced in handle)",
		},
		Tip: "People often use their online handles or social media usernames as passwords.",
	},
	{
		ID:       4,
		Title:    "Sports Enthusiast",
		Password: "Lakers32!!!",
		Hints: []string{
			"All social media bios mention 'Die-hard Lakers fan'",
			"Wears Lakers gear in profile photos",
			"Favorite player: Magic Johnson (wore #32)",
			"Has 32 championship trophies in background photo",
		},
		Tip: "Favorite sports teams and players' numbers are common password components.",
	},
	{
		ID:       5,
		Title:    "Fitness Trainer",
		Password: "Gym@Strength8",
		Hints: []string{
			"Bio: 'Fitness coach at GymStrength'",
			"Instagram: 1800+ followers, all fitness content",
			"Started at GymStrength 8 years ago",
			"Posts daily workout motivation quotes",
		},
		Tip: "Workplace names and tenure combined with @ symbols are common.",
	},
	{
		ID:       6,
		Title:    "Gaming Streamer",
		Password: "Valorant123!!",
		Hints: []string{
			"Twitch channel: streams Valorant daily",
			"Has been rank 123 in ladder",
			"Username everywhere: GamerXPro",
			"Streams every day at 3PM",
		},
		Tip: "Favorite games combined with high scores or rank numbers are predictable.",
	},
	{
		ID:       7,
		Title:    "Wedding Planner",
		Password: "Sarah+John2022",
		Hints: []string{
			"Recently married in June 2022",
			"Wedding announcement on all social media",
			"Names: Sarah and John",
			"Uses hearts and wedding emojis",
		},
		Tip: "Significant life events like marriages are often embedded in passwords.",
	},
	{
		ID:       8,
		Title:    "Student",
		Password: "MyDog#Buddy07",
		Hints: []string{
			"Instagram: 50+ photos of dog named Buddy",
			"Born in 2007 (birthday visible on LinkedIn)",
			"Facebook: 'Dog lover'",
			"Posted: 'Buddy is my best friend'",
		},
		Tip: "Pets combined with birth years create memorable but guessable passwords.",
	},
	{
		ID:       9,
		Title:    "World Traveler",
		Password: "Paris2015Summer",
		Hints: []string{
			"Instagram: Album titled 'Paris Summer 2015'",
			"1,200+ photos, mostly travel",
			"Post: 'Best trip of my life - Paris 2015'",
			"Pinterest board: 'Dream destinations'",
		},
		Tip: "Travel memories with locations and dates are often used as passwords.",
	},
	{
		ID:       10,
		Title:    "Parents",
		Password: "Emma&Lucas01",
		Hints: []string{
			"Facebook: 'So proud of Emma (age 13) and Lucas (age 11)'",
			"Instagram bio: 'Mom/Dad of two'",
			"Children's birth order: Emma is older",
			"Family photo shows two children",
		},
		Tip: "Children's names and birth order info are dangerously common in passwords.",
	},
	{
		ID:       11,
		Title:    "Music Teacher",
		Password: "Beethoven1770!",
		Hints: []string{
			"Bio: 'Classical music teacher'",
			"Posts about composers daily",
			"Favorite: Ludwig van Beethoven",
			"1770: Beethoven's birth year",
		},
		Tip: "Historical figures and dates related to interests are guessable patterns.",
	},
	{
		ID:       12,
		Title:    "Bookworm",
		Password: "HP_Snape666",
		Hints: []string{
			"Reading list: All Harry Potter books",
			"Goodreads: 'HP superfan'",
			"Favorite character: Severus Snape",
			"666: Appears in HP fan theories",
		},
		Tip: "Fiction references and character names are common but weak passwords.",
	},
}
