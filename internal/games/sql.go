package games

// SQLCodeLine is one displayed line of a code sample, flagged when it is the
// injectable statement.
type SQLCodeLine struct {
	Line       string `json:"line"`
	Vulnerable bool   `json:"vulnerable"`
}

// SQLLevel is one SQL-injection-spotting exercise. VulnerableLine is the
// index of the flawed line, or -1 for a secure sample.
type SQLLevel struct {
	ID             int           `json:"id"`
	Title          string        `json:"title"`
	Code           []SQLCodeLine `json:"code"`
	VulnerableLine int           `json:"vulnerableLine"`
	Tip            string        `json:"tip"`
}

// SQLLevels returns the full SQL-injection catalog.
func SQLLevels() []SQLLevel {
	return sqlLevels
}

var sqlLevels = []SQLLevel{
	{
		ID:    1,
		Title: "Login Authentication",
		Code: []SQLCodeLine{
			{Line: "def login(username, password):", Vulnerable: false},
			{Line: `    query = "SELECT * FROM users WHERE username='" + username + "' AND password='" + password + "'"`, Vulnerable: true},
			{Line: "    result = database.execute(query)", Vulnerable: false},
			{Line: "    return result", Vulnerable: false},
		},
		VulnerableLine: 1,
		Tip:            "String concatenation in SQL queries is the primary vulnerability. Use parameterized queries (prepared statements) instead of concatenation.",
	},
	{
		ID:    2,
		Title: "Search Box",
		Code: []SQLCodeLine{
			{Line: "def search_products(search_term):", Vulnerable: false},
			{Line: `    query = f"SELECT * FROM products WHERE name LIKE '%{search_term}%'"`, Vulnerable: true},
			{Line: "    return database.execute(query)", Vulnerable: false},
		},
		VulnerableLine: 1,
		Tip:            `F-strings and template literals can be exploited. Always use parameterized queries: "SELECT * FROM products WHERE name LIKE ?"`,
	},
	{
		ID:    3,
		Title: "User Profile Update",
		Code: []SQLCodeLine{
			{Line: "def update_profile(user_id, bio):", Vulnerable: false},
			{Line: `    query = "UPDATE users SET bio='" + bio + "' WHERE id=" + str(user_id)`, Vulnerable: true},
			{Line: "    database.execute(query)", Vulnerable: false},
		},
		VulnerableLine: 1,
		Tip:            "UPDATE statements are also vulnerable to SQL injection. The attacker could inject: bio'; DROP TABLE users;--",
	},
	{
		ID:    4,
		Title: "Secure Implementation",
		Code: []SQLCodeLine{
			{Line: "def login_secure(username, password):", Vulnerable: false},
			{Line: `    query = "SELECT * FROM users WHERE username=? AND password=?"`, Vulnerable: false},
			{Line: "    result = database.execute(query, [username, password])", Vulnerable: false},
			{Line: "    return result", Vulnerable: false},
		},
		VulnerableLine: -1,
		Tip:            "This is the CORRECT way! Parameterized queries use ? placeholders and pass data separately, preventing injection.",
	},
	{
		ID:    5,
		Title: "Comment-based Injection",
		Code: []SQLCodeLine{
			{Line: "def get_user_by_id(user_id):", Vulnerable: false},
			{Line: `    query = "SELECT * FROM users WHERE id=" + str(user_id) + " -- Get user details"`, Vulnerable: true},
			{Line: "    return database.execute(query)", Vulnerable: false},
		},
		VulnerableLine: 1,
		Tip:            `Using -- comments can bypass authentication. Attacker could inject: 1 OR 1=1 -- to bypass logic. Always use parameterized queries with ?".`,
	},
	{
		ID:    6,
		Title: "Email Field Injection",
		Code: []SQLCodeLine{
			{Line: "def find_user_by_email(email):", Vulnerable: false},
			{Line: `    query = "SELECT id, username FROM users WHERE email='" + email + "'"`, Vulnerable: true},
			{Line: "    result = database.execute(query)", Vulnerable: false},
			{Line: "    return result[0] if result else None", Vulnerable: false},
		},
		VulnerableLine: 1,
		Tip:            "Email fields are common injection points. Attacker could input: admin@test.com' OR '1'='1 to bypass email verification.",
	},
	{
		ID:    7,
		Title: "DELETE Statement Injection",
		Code: []SQLCodeLine{
			{Line: "def delete_comment(comment_id):", Vulnerable: false},
			{Line: `    query = "DELETE FROM comments WHERE id=" + str(comment_id)`, Vulnerable: true},
			{Line: "    database.execute(query)", Vulnerable: false},
		},
		VulnerableLine: 1,
		Tip:            "DELETE statements without parameterized queries can delete entire tables. Attacker could inject: 1; DROP TABLE comments;-- to delete all comments.",
	},
	{
		ID:    8,
		Title: "UNION-Based Injection",
		Code: []SQLCodeLine{
			{Line: "def search_books(keyword):", Vulnerable: false},
			{Line: `    query = "SELECT title, author FROM books WHERE title LIKE '%" + keyword + "%'"`, Vulnerable: true},
			{Line: "    return database.execute(query)", Vulnerable: false},
		},
		VulnerableLine: 1,
		Tip:            "UNION-based injection can extract data from other tables. Attacker could inject: %' UNION SELECT username, password FROM users -- to leak credentials.",
	},
	{
		ID:    9,
		Title: "Time-Based Blind Injection",
		Code: []SQLCodeLine{
			{Line: "def verify_username(username):", Vulnerable: false},
			{Line: `    query = "SELECT * FROM users WHERE username='" + username + "'"`, Vulnerable: true},
			{Line: "    start = time.time()", Vulnerable: false},
			{Line: "    database.execute(query)", Vulnerable: false},
			{Line: "    return time.time() - start > 5", Vulnerable: false},
		},
		VulnerableLine: 1,
		Tip:            "Time-based blind SQL injection bypasses filters. Attacker could inject: admin' AND IF(1=1, SLEEP(5), 0) -- to confirm database structure.",
	},
	{
		ID:    10,
		Title: "Stacked Queries Injection",
		Code: []SQLCodeLine{
			{Line: "def update_last_login(user_id):", Vulnerable: false},
			{Line: `    query = "UPDATE users SET last_login=NOW() WHERE id=" + str(user_id)`, Vulnerable: true},
			{Line: "    database.execute(query)", Vulnerable: false},
		},
		VulnerableLine: 1,
		Tip:            "Stacked queries allow executing multiple SQL statements. Attacker could inject: 1; INSERT INTO users VALUES(999, 'hacker', 'password'); -- to create accounts.",
	},
	{
		ID:    11,
		Title: "Second-Order Injection",
		Code: []SQLCodeLine{
			{Line: "def save_profile(user_id, bio):", Vulnerable: false},
			{Line: `    query = "INSERT INTO profiles (user_id, bio) VALUES (" + str(user_id) + ", '" + bio + "')"`, Vulnerable: true},
			{Line: "    database.execute(query)", Vulnerable: false},
			{Line: `    later_query = "SELECT bio FROM profiles WHERE user_id=" + str(user_id)`, Vulnerable: true},
			{Line: "    display_to_user(database.execute(later_query))", Vulnerable: false},
		},
		VulnerableLine: 1,
		Tip:            "Second-order injection stores malicious SQL for later execution. Always use parameterized queries at every database operation.",
	},
	{
		ID:    12,
		Title: "SECURE - All Parameters",
		Code: []SQLCodeLine{
			{Line: "def secure_search(search_term, sort_column):", Vulnerable: false},
			{Line: "    # Whitelist allowed columns for sort", Vulnerable: false},
			{Line: `    allowed_columns = ["title", "author", "date"]`, Vulnerable: false},
			{Line: "    if sort_column not in allowed_columns:", Vulnerable: false},
			{Line: `        sort_column = "title"`, Vulnerable: false},
			{Line: `    query = "SELECT * FROM books WHERE title LIKE ? ORDER BY " + sort_column`, Vulnerable: false},
			{Line: `    return database.execute(query, ["%"+search_term+"%"])`, Vulnerable: false},
		},
		VulnerableLine: -1,
		Tip:            "Proper protection uses: 1) Parameterized queries for data, 2) Whitelists for dynamic column names, 3) Prepared statements everywhere.",
	},
}
