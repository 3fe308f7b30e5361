// Package games holds the static quiz level catalogs served by the API.
package games

// PhishingQuestion is the multiple-choice prompt attached to a level.
// Correct indexes into Choices.
type PhishingQuestion struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Correct int      `json:"correct"`
}

// PhishingLevel is one phishing-recognition exercise.
type PhishingLevel struct {
	ID         int              `json:"id"`
	Title      string           `json:"title"`
	Type       string           `json:"type"`
	Difficulty string           `json:"difficulty"`
	Sender     string           `json:"sender"`
	Message    string           `json:"message"`
	Highlights []string         `json:"highlights"`
	Question   PhishingQuestion `json:"question"`
	Tip        string           `json:"tip"`
}

// PhishingLevels returns the full phishing catalog.
func PhishingLevels() []PhishingLevel {
	return phishingLevels
}

// PhishingLevelByID returns the level with the given id, or false.
func PhishingLevelByID(id int) (PhishingLevel, bool) {
	for _, level := range phishingLevels {
		if level.ID == id {
			return level, true
		}
	}
	return PhishingLevel{}, false
}

var phishingLevels = []PhishingLevel{
	{
		ID:         1,
		Title:      "PayPal Security Alert",
		Type:       "Email",
		Difficulty: "easy",
		Sender:     "security@paypa1-alert.com",
		Message:    "Your PayPal account requires immediate verification. Unusual activity detected from IP 203.45.12.88 in Nigeria. Click here to secure your account within 24 hours or account will be permanently limited. Case ID: PP-8472-URGENT",
		Highlights: []string{"paypa1-alert.com", "immediate verification", "Click here", "24 hours", "permanently limited"},
		Question: PhishingQuestion{
			Prompt: "What makes this email suspicious?",
			Choices: []string{
				"Domain uses '1' instead of 'l' in PayPal (typosquatting)",
				"Email mentions unusual activity",
				"Case ID is present",
				"Mentions a specific IP address",
			},
			Correct: 0,
		},
		Tip: "Always check the sender's domain carefully. Legitimate PayPal emails come from @paypal.com, not variations with numbers or extra words.",
	},
	{
		ID:         2,
		Title:      "Microsoft 365 Expiration",
		Type:       "Email",
		Difficulty: "medium",
		Sender:     "no-reply@microsoft-security.services",
		Message:    "Your Microsoft 365 subscription expires today. To maintain access to your files and email, renew immediately at microsoft-renewal.services/verify. Enter your credentials to confirm renewal.",
		Highlights: []string{"microsoft-security.services", "expires today", "immediately", "microsoft-renewal.services", "Enter your credentials"},
		Question: PhishingQuestion{
			Prompt: "Which red flags indicate this is phishing?",
			Choices: []string{
				"Uses urgent language and threatens data loss",
				"Links to suspicious domains not owned by Microsoft",
				"Requests credential entry through a link",
				"All of the above",
			},
			Correct: 3,
		},
		Tip: "Real Microsoft emails never ask you to click links to enter credentials. They use microsoft.com domains only.",
	},
	{
		ID:         3,
		Title:      "Amazon Order Verification",
		Type:       "Email",
		Difficulty: "easy",
		Sender:     "amazon-customer-service@amaz0n-security.com",
		Message:    "Your Amazon order #404-5891245-2847562 requires verification to be completed. Due to unusual payment activity, we need to confirm your identity. Click 'Verify Account' and enter your details to proceed. Verification must be completed within 12 hours.",
		Highlights: []string{"amaz0n-security.com", "unusual payment activity", "Click 'Verify Account'", "enter your details", "within 12 hours"},
		Question: PhishingQuestion{
			Prompt: "Why is this email fraudulent?",
			Choices: []string{
				"Amazon official domain is amazon.com, not amaz0n with a zero",
				"Legitimate Amazon never asks to verify account via email links",
				"Creates artificial urgency",
				"All of the above",
			},
			Correct: 3,
		},
		Tip: "Amazon will never ask you to verify sensitive information via email. If you're concerned, log into Amazon.com directly without clicking the email link.",
	},
	{
		ID:         4,
		Title:      "Apple ID Locked",
		Type:       "Email",
		Difficulty: "medium",
		Sender:     "noreply@appleid-verify.co.uk",
		Message:    "Your Apple ID has been locked for security. We've detected unusual activity from your account (location: Moscow). To unlock your account, please verify your identity immediately at https://appleid-verify.co.uk/verify-identity. Enter your Apple ID password and two-factor code.",
		Highlights: []string{"appleid-verify.co.uk", "locked for security", "unusual activity", "immediately", "Enter your Apple ID password and two-factor code"},
		Question: PhishingQuestion{
			Prompt: "What's the main red flag here?",
			Choices: []string{
				"Real Apple uses appleid.apple.com, not third-party domains",
				"Apple never asks for 2FA codes via email",
				"Generic salutation 'Dear User'",
				"Both A and B",
			},
			Correct: 3,
		},
		Tip: "Apple will NEVER ask you to verify your password or 2FA code via email. Always go directly to apple.com/account.",
	},
	{
		ID:         5,
		Title:      "Bank Account Compromise Alert",
		Type:       "Email",
		Difficulty: "medium",
		Sender:     "security.alerts@yourbank-security.org",
		Message:    "URGENT: Suspicious login attempt detected on your account. Unauthorized access from IP 192.168.1.1 in China. Your account has been temporarily locked. To restore access, click here to verify your identity with your account number, PIN, and Social Security Number within 24 hours or your account will be closed.",
		Highlights: []string{"yourbank-security.org", "URGENT", "Suspicious login attempt", "your account number, PIN, and Social Security Number", "within 24 hours"},
		Question: PhishingQuestion{
			Prompt: "Which red flags indicate this is phishing?",
			Choices: []string{
				"Banks don't email you asking for PIN or SSN",
				"Legitimate banks use their official domain (.com/.net), not 'yourbank-security.org'",
				"Uses ALL CAPS for urgency",
				"All of the above are red flags",
			},
			Correct: 3,
		},
		Tip: "No legitimate bank will EVER ask for your PIN, SSN, or full account number via email. Banks also don't send links to verify security - they direct you to call them.",
	},
	{
		ID:         6,
		Title:      "Instagram Account Suspicion",
		Type:       "Email",
		Difficulty: "easy",
		Sender:     "noreply@instagram-alerts.com",
		Message:    "Hi there, We've detected several failed login attempts to your Instagram account from different locations. For your security, we need you to verify your account immediately. Click the link below and enter your username and password to confirm it's really you. https://instagram-alerts.com/verify",
		Highlights: []string{"instagram-alerts.com", "failed login attempts", "verify your account immediately", "enter your username and password"},
		Question: PhishingQuestion{
			Prompt: "Why would this be a phishing attempt?",
			Choices: []string{
				"Instagram.com is the real domain, not instagram-alerts.com",
				"Instagram never asks to re-enter password via email links",
				"Real Instagram uses two-factor authentication, not email verification",
				"All of the above",
			},
			Correct: 3,
		},
		Tip: "Social media companies send security alerts, but they never ask you to confirm via email links. Always log into the app directly or website.",
	},
	{
		ID:         7,
		Title:      "Tax Refund Scam",
		Type:       "Email",
		Difficulty: "medium",
		Sender:     "refund@irs-account-verification.gov",
		Message:    "Congratulations! You are eligible for a tax refund of $1,247.89. The IRS has approved your claim. To process your refund, please verify your information: Full Name, SSN, Date of Birth, and Bank Account Details. Click here to claim your refund now or it will be forfeited in 3 days.",
		Highlights: []string{"irs-account-verification.gov", "tax refund", "SSN", "forfeited in 3 days", "click here"},
		Question: PhishingQuestion{
			Prompt: "What's suspicious about this email?",
			Choices: []string{
				"IRS domains end in .gov, not 'irs-account-verification.gov'",
				"IRS never asks for personal info via email",
				"IRS never sends unsolicited refund emails or uses email links for claims",
				"All of the above are red flags",
			},
			Correct: 3,
		},
		Tip: "The IRS will never contact you by email for tax refunds. They mail official letters. Be especially suspicious of unsolicited tax refund offers - this is a common scam.",
	},
	{
		ID:         8,
		Title:      "Google Account Alert",
		Type:       "Email",
		Difficulty: "medium",
		Sender:     "noreply@google-alerts-verify.com",
		Message:    "Someone tried to access your Google account on an unusual device. Google has blocked this attempt, but to secure your account, we need you to verify your identity within 2 hours. Click here to review your account activity and enter your password to proceed.",
		Highlights: []string{"google-alerts-verify.com", "unusual device", "within 2 hours", "enter your password"},
		Question: PhishingQuestion{
			Prompt: "How can you identify this as phishing?",
			Choices: []string{
				"Google never asks for password confirmation via email",
				"Legitimate alerts come from accounts.google.com, not 'google-alerts-verify.com'",
				"Creates artificial time pressure",
				"All of the above",
			},
			Correct: 3,
		},
		Tip: "Google will notify you of suspicious activity, but they never ask you to click links to verify your password. If concerned, log into myaccount.google.com directly.",
	},
	{
		ID:         9,
		Title:      "Package Delivery Failure",
		Type:       "Email",
		Difficulty: "easy",
		Sender:     "delivery-update@fedex-tracking.co",
		Message:    "Your FedEx package (tracking #7392847563829) could not be delivered. To reschedule delivery or claim your package, please update your delivery information and confirm your identity at https://fedex-tracking.co/delivery-update. Update must be completed within 24 hours or package will be returned.",
		Highlights: []string{"fedex-tracking.co", "update your delivery information", "confirm your identity", "within 24 hours"},
		Question: PhishingQuestion{
			Prompt: "What indicates this is phishing?",
			Choices: []string{
				"FedEx domains use fedex.com, not 'fedex-tracking.co'",
				"Legitimate companies use official domains only",
				"Creates urgency without real reason",
				"Both A and B",
			},
			Correct: 3,
		},
		Tip: "Package delivery companies always use their official websites. If you need to reschedule, go directly to fedex.com or ups.com in a new browser tab without clicking email links.",
	},
	{
		ID:         10,
		Title:      "LinkedIn Job Opportunity",
		Type:       "Email",
		Difficulty: "easy",
		Sender:     "hr@linkedIn-careers.biz",
		Message:    "Hi, we've reviewed your LinkedIn profile and want to offer you an exciting job opportunity! Position: Senior Developer, Salary: $150,000. To apply, please click here and complete your profile with full details including: Full Name, Address, Phone, Email, Date of Birth, Passport Details. Apply now: https://linkedin-careers.biz/apply",
		Highlights: []string{"linkedIn-careers.biz", "click here", "full details", "Passport Details"},
		Question: PhishingQuestion{
			Prompt: "Why is this likely a phishing scam?",
			Choices: []string{
				"LinkedIn.com is the real domain, not 'linkedin-careers.biz'",
				"Real job offers don't request passport details via email",
				"Legitimate jobs use LinkedIn's platform, not suspicious links",
				"All of the above",
			},
			Correct: 3,
		},
		Tip: "Job scams often target unemployed or job-seeking individuals. LinkedIn uses linkedin.com only. Never provide passport or personal ID details before official hiring.",
	},
	{
		ID:         11,
		Title:      "Netflix Billing Problem",
		Type:       "Email",
		Difficulty: "medium",
		Sender:     "billing@netflix-account-security.net",
		Message:    "Your Netflix billing information has expired. Please update your payment method immediately to avoid service interruption. Click here to update your credit card information, expiration date, and CVV code. Do this within 48 hours or your account will be permanently suspended.",
		Highlights: []string{"netflix-account-security.net", "expired", "Click here", "credit card information", "CVV code", "within 48 hours"},
		Question: PhishingQuestion{
			Prompt: "What makes this email suspicious?",
			Choices: []string{
				"Netflix domains use netflix.com only, not 'netflix-account-security.net'",
				"Netflix never asks for CVV codes via email",
				"Netflix handles billing through their website/app, not email links",
				"All of the above are red flags",
			},
			Correct: 3,
		},
		Tip: "Never enter payment card details (especially CVV) through email links. Always update billing directly on the company's official website or app.",
	},
	{
		ID:         12,
		Title:      "Password Reset Spoofing",
		Type:       "Email",
		Difficulty: "medium",
		Sender:     "support@your-organization-security.com",
		Message:    "Your password will expire in 3 days. To change your password, click this link and enter your current password along with a new password. Password must be at least 12 characters. https://your-organization-security.com/reset-password",
		Highlights: []string{"your-organization-security.com", "expire in 3 days", "enter your current password", "click this link"},
		Question: PhishingQuestion{
			Prompt: "What's the red flag in this email?",
			Choices: []string{
				"Real organizations don't ask for current password via reset links",
				"Domain doesn't match official company domain",
				"Creates false urgency about password expiration",
				"All of the above",
			},
			Correct: 3,
		},
		Tip: "Password reset links should only ask for a new password, never your current one. Legitimate companies rarely expire passwords unless for compliance reasons.",
	},
	{
		ID:         13,
		Title:      "Casino Winnings Notification",
		Type:       "Email",
		Difficulty: "easy",
		Sender:     "claims@lottery-winnings.club",
		Message:    "CONGRATULATIONS! You have won $50,000 in the International Lottery! You were randomly selected from 10 million email addresses. To claim your prize, you must: 1) Verify your identity, 2) Pay processing fee of $200, 3) Provide banking details. Click here to claim your prize: https://lottery-winnings.club/claim",
		Highlights: []string{"lottery-winnings.club", "CONGRATULATIONS", "randomly selected", "Pay processing fee", "provide banking details"},
		Question: PhishingQuestion{
			Prompt: "Why is this definitely a scam?",
			Choices: []string{
				"You didn't enter any lottery",
				"Legitimate lotteries never ask for processing fees",
				"Legitimate lotteries don't ask for money upfront to claim prizes",
				"All of the above",
			},
			Correct: 3,
		},
		Tip: "If you didn't enter a lottery, you can't win it. Legitimate lotteries NEVER ask for processing fees or upfront payments to claim winnings. Delete immediately.",
	},
	{
		ID:         14,
		Title:      "Inheritance Scam",
		Type:       "Email",
		Difficulty: "easy",
		Sender:     "attorney@inheritence-claim.legal",
		Message:    "You have been identified as an heir to an unclaimed inheritance of $2.5 million from a relative in Nigeria who passed away. To claim your inheritance, please provide: Full legal name, address, phone, date of birth, passport copy, and bank account details. Respond immediately! https://inheritence-claim.legal/inherit",
		Highlights: []string{"inheritence-claim.legal", "unclaimed inheritance", "passed away", "passport copy", "bank account details"},
		Question: PhishingQuestion{
			Prompt: "What are the obvious scam indicators?",
			Choices: []string{
				"You don't have relatives in Nigeria",
				"Legitimate inheritance never requires upfront personal/banking details",
				"Professional lawyers don't handle via mass email",
				"All are major red flags",
			},
			Correct: 3,
		},
		Tip: "Inheritance scams target people hoping for unexpected money. No legitimate inheritance claim will ever ask for passport or banking details via email from strangers.",
	},
	{
		ID:         15,
		Title:      "Dropbox Storage Warning",
		Type:       "Email",
		Difficulty: "medium",
		Sender:     "notifications@dropboxx-alerts.com",
		Message:    "Your Dropbox storage is 98% full and will stop syncing in 24 hours. To upgrade your account, click here and provide your billing information including full credit card number, expiration, and CVV. Upgrade now to maintain access: https://dropboxx-alerts.com/upgrade-now",
		Highlights: []string{"dropboxx-alerts.com", "98% full", "stop syncing in 24 hours", "full credit card number", "Click here"},
		Question: PhishingQuestion{
			Prompt: "How can you identify this as phishing?",
			Choices: []string{
				"Dropbox official domain is dropbox.com, not 'dropboxx-alerts.com'",
				"Dropbox upgrades through official website, not email links",
				"Never enter full credit card info anywhere except official payment pages",
				"All of the above",
			},
			Correct: 3,
		},
		Tip: "Storage company alerts are common phishing targets. Dropbox handles upgrades through dropbox.com only. Always navigate directly without clicking email links.",
	},
}
