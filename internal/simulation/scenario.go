// Package simulation holds the simulated-call scenario catalog, voice
// selection, and the caller response generator.
package simulation

import "math/rand"

type Category string

const (
	CategoryScam       Category = "scam"
	CategoryLegitimate Category = "legitimate"
)

// Scenario is one scripted caller persona. The catalog is defined at process
// start and never mutated.
type Scenario struct {
	ID           string   `json:"id"`
	Category     Category `json:"type"`
	Difficulty   string   `json:"difficulty"`
	CallerName   string   `json:"caller_name"`
	Company      string   `json:"company"`
	Phone        string   `json:"phone"`
	Opening      string   `json:"opening"`
	Followups    []string `json:"followups"`
	InfoRequests []string `json:"info_requests"`
	RedFlags     []string `json:"red_flags"`
}

// Catalog is a read-only scenario set, safe for concurrent use.
type Catalog struct {
	scenarios []Scenario
	byID      map[string]Scenario
	pick      func(n int) int
}

func NewCatalog() *Catalog {
	byID := make(map[string]Scenario, len(callScenarios))
	for _, s := range callScenarios {
		byID[s.ID] = s
	}
	return &Catalog{
		scenarios: callScenarios,
		byID:      byID,
		pick:      rand.Intn,
	}
}

// Lookup resolves a scenario id. Unknown ids resolve to the first catalog
// entry: ids originate from the client and a typo must not break the call.
func (c *Catalog) Lookup(id string) Scenario {
	if s, ok := c.byID[id]; ok {
		return s
	}
	return c.scenarios[0]
}

func (c *Catalog) All() []Scenario {
	return c.scenarios
}

// Random picks a scenario for a new simulated call.
func (c *Catalog) Random() Scenario {
	return c.scenarios[c.pick(len(c.scenarios))]
}

var callScenarios = []Scenario{
	{
		ID:         "paypal_scam",
		Category:   CategoryScam,
		Difficulty: "medium",
		CallerName: "David Richardson",
		Company:    "PayPal Security",
		Phone:      "+1 (415) 555-0147",
		Opening:    "Good afternoon, this is David Richardson from PayPal Security. We've detected fraudulent activity on your account. I need to verify some information to secure it. Can you confirm the last 4 digits of the credit card on file?",
		Followups: []string{
			"Thank you. Now I need your social security number to verify your identity in our system.",
			"Perfect. For security purposes, I'll need to send you a verification code via email. What's the email address associated with your account?",
			"One more thing - can you provide your account password so I can reset the security settings?",
		},
		InfoRequests: []string{"credit_card", "ssn", "email", "password"},
		RedFlags:     []string{"verify information", "confirm details", "security check"},
	},
	{
		ID:         "paypal_unusual_activity",
		Category:   CategoryScam,
		Difficulty: "easy",
		CallerName: "PayPal Support",
		Company:    "PayPal",
		Phone:      "+1 (415) 555-0148",
		Opening:    "Hi there, this is PayPal support calling about unusual activity on your account from China. For your security, we need to confirm your full name and date of birth right now.",
		Followups: []string{
			"Thank you. Now can you provide your account password to verify you're the real owner?",
			"Great! We also need your bank routing number to confirm we have the right account on file.",
		},
		InfoRequests: []string{"name", "birthdate", "password", "bank"},
		RedFlags:     []string{"unusual activity", "for your security", "right now"},
	},
	{
		ID:         "paypal_refund_scam",
		Category:   CategoryScam,
		Difficulty: "medium",
		CallerName: "Mark Johnson",
		Company:    "PayPal Fraud Department",
		Phone:      "+1 (415) 555-0149",
		Opening:    "Good morning! This is Mark Johnson from PayPal Fraud Department. We're processing a refund for you from a recent unauthorized transaction. To release the funds, I need to verify your identity. What's your account email?",
		Followups: []string{
			"Perfect. Now, what's the 3-digit security code on the back of your payment method?",
			"One more thing - can you confirm your full social security number so I can expedite this refund?",
		},
		InfoRequests: []string{"email", "cvv", "ssn"},
		RedFlags:     []string{"refund processing", "expedite", "verify identity"},
	},
	{
		ID:         "microsoft_scam",
		Category:   CategoryScam,
		Difficulty: "hard",
		CallerName: "Agent Marcus Chen",
		Company:    "Microsoft Tech Support",
		Phone:      "+1 (206) 555-0198",
		Opening:    "Hello, this is Agent Marcus Chen from Microsoft Windows Support. We've detected multiple security threats on your computer. This is very urgent. Are you at your computer right now so I can help you fix this?",
		Followups: []string{
			"Okay, I need remote access to diagnose the problem. Can you please read me the 6-digit code on your screen? It should be under Support & Recovery Assistant.",
			"Perfect, I'm connected now. I'm seeing malware signatures and registry errors. I need your credit card number to purchase the advanced security software to remove this.",
			"Before we proceed, I need your social security number for the license registration.",
		},
		InfoRequests: []string{"password", "credit_card", "ssn"},
		RedFlags:     []string{"remote access", "urgent", "threats detected", "credit card"},
	},
	{
		ID:         "windows_defender_alert",
		Category:   CategoryScam,
		Difficulty: "medium",
		CallerName: "Tom Wilson",
		Company:    "Windows Security Center",
		Phone:      "+1 (206) 555-0199",
		Opening:    "Hi, we're calling from Windows Security Center. Your computer has multiple viruses and spyware that are sending your passwords to hackers. We can fix this immediately. Can you provide your credit card to download our premium antivirus?",
		Followups: []string{
			"Great! I'll need the full credit card number including the CVV on the back.",
			"And I'll need your billing address and zip code to complete the purchase.",
		},
		InfoRequests: []string{"credit_card", "cvv", "address"},
		RedFlags:     []string{"viruses detected", "sending passwords", "credit card", "immediately"},
	},
	{
		ID:         "irs_scam",
		Category:   CategoryScam,
		Difficulty: "hard",
		CallerName: "Agent Michael Torres",
		Company:    "IRS",
		Phone:      "+1 (202) 555-0134",
		Opening:    "This is Agent Michael Torres from the Internal Revenue Service. We have an issue with your 2024 tax return. You owe $8,500 in back taxes. I can help you resolve this today, but I need to verify your identity. What's your full social security number?",
		Followups: []string{
			"Thank you. Now, to set up the payment, I need your bank account number and routing number.",
			"For the wire transfer, I'll also need your date of birth for verification.",
			"We can accept iTunes gift cards or Google Play cards as payment. Do you have access to purchase those today?",
		},
		InfoRequests: []string{"ssn", "bank", "birthdate", "payment"},
		RedFlags:     []string{"social security", "bank account", "payment", "wire transfer", "gift cards"},
	},
	{
		ID:         "irs_arrest_warrant",
		Category:   CategoryScam,
		Difficulty: "hard",
		CallerName: "Federal Agent Johnson",
		Company:    "IRS Criminal Investigation",
		Phone:      "+1 (202) 555-0135",
		Opening:    "This is Federal Agent Johnson with the IRS. There's an arrest warrant issued for tax evasion under your name. To avoid immediate arrest and jail time, you need to settle your tax debt right now. Can you pay $15,000 via wire transfer today?",
		Followups: []string{
			"The warrant is in the system right now. You must pay before 5 PM today.",
			"I need your bank details to process the wire transfer immediately.",
		},
		InfoRequests: []string{"bank", "payment"},
		RedFlags:     []string{"arrest warrant", "jail time", "immediately", "wire transfer", "threat"},
	},
	{
		ID:         "amazon_account_locked",
		Category:   CategoryScam,
		Difficulty: "medium",
		CallerName: "Amazon Security Team",
		Company:    "Amazon",
		Phone:      "+1 (206) 555-0150",
		Opening:    "Your Amazon account has been locked due to suspicious login attempts. To unlock your account and restore access immediately, I need to verify your information. What's the email address on your account?",
		Followups: []string{
			"What's your account password to verify your identity?",
			"I also need your full name and date of birth for our records.",
		},
		InfoRequests: []string{"email", "password", "name", "birthdate"},
		RedFlags:     []string{"account locked", "suspicious activity", "immediately", "verify"},
	},
	{
		ID:         "google_account_compromised",
		Category:   CategoryScam,
		Difficulty: "medium",
		CallerName: "Google Security",
		Company:    "Google Account Recovery",
		Phone:      "+1 (650) 555-0200",
		Opening:    "We detected unauthorized access to your Google account from Russia. For your security, we need to verify your information immediately. What's your Gmail address?",
		Followups: []string{
			"What's your account recovery phone number?",
			"Now I need your account password to lock out the hackers.",
		},
		InfoRequests: []string{"email", "phone", "password"},
		RedFlags:     []string{"unauthorized access", "Russia", "security", "immediately"},
	},
	{
		ID:         "lottery_prize_scam",
		Category:   CategoryScam,
		Difficulty: "easy",
		CallerName: "Lucky Lottery Winners",
		Company:    "National Lottery Commission",
		Phone:      "+1 (888) 555-0201",
		Opening:    "Congratulations! You've won $500,000 in our national lottery drawing! To claim your prize, I need to verify your identity. Can you provide your full name and social security number?",
		Followups: []string{
			"Perfect! To release your winnings, we need a $2,000 wire transfer for processing fees.",
			"Once you send that, your $500,000 will be transferred to your account.",
		},
		InfoRequests: []string{"name", "ssn", "payment"},
		RedFlags:     []string{"won lottery", "congratulations", "wire transfer", "processing fees"},
	},
	{
		ID:         "bank_fraud_alert",
		Category:   CategoryScam,
		Difficulty: "medium",
		CallerName: "Bank Security Officer",
		Company:    "Your Bank",
		Phone:      "+1 (800) 555-0202",
		Opening:    "Your bank account has unauthorized transactions. For your protection, we've temporarily locked your account. To reactivate it, I need your account number and PIN right now.",
		Followups: []string{
			"What's your routing number and bank account number?",
			"I also need your 4-digit PIN to verify it's really you.",
		},
		InfoRequests: []string{"account", "pin", "routing"},
		RedFlags:     []string{"unauthorized transactions", "locked account", "right now", "verify"},
	},
	{
		ID:         "prince_scam",
		Category:   CategoryScam,
		Difficulty: "easy",
		CallerName: "Prince Okonkwo",
		Company:    "International Business",
		Phone:      "+234 123 456 7890",
		Opening:    "Good day to you. My name is Prince Okonkwo. I am calling regarding a business opportunity. I have a substantial amount of money - $50 million - that needs to be transferred to a trustworthy person. I believe you could be the right beneficiary. To proceed, I need some personal information.",
		Followups: []string{
			"First, what is your full name and date of birth?",
			"Excellent. Now I need your bank account number so we can make the transfer.",
			"For the processing fees, I will need you to wire $5,000 USD to cover legal and banking costs. Can you arrange this?",
		},
		InfoRequests: []string{"name", "birthdate", "bank", "payment"},
		RedFlags:     []string{"money transfer", "beneficiary", "bank account", "processing fee"},
	},
	{
		ID:         "inheritance_scam",
		Category:   CategoryScam,
		Difficulty: "easy",
		CallerName: "Attorney David Smith",
		Company:    "International Law Firm",
		Phone:      "+44 20 7946 0958",
		Opening:    "Hello, I'm attorney David Smith. I'm calling regarding an inheritance you're entitled to from a distant relative. They passed away and left you approximately $2.3 million in their will. To claim this, I need your full legal name and date of birth.",
		Followups: []string{
			"I also need your bank account details so we can wire the funds.",
			"There's a small processing fee of $1,500. Can you wire that to get started?",
		},
		InfoRequests: []string{"name", "birthdate", "bank", "payment"},
		RedFlags:     []string{"inheritance", "distant relative", "processing fee"},
	},
	{
		ID:         "electric_bill_scam",
		Category:   CategoryScam,
		Difficulty: "medium",
		CallerName: "Customer Service",
		Company:    "Electric Company",
		Phone:      "+1 (555) 555-0203",
		Opening:    "This is calling from your electric company. Your bill is 3 months overdue and we're about to shut off your power in 2 hours. To keep your service active, we need immediate payment via gift card. Do you have access to Target or iTunes right now?",
		Followups: []string{
			"We'll need you to purchase $500 in gift cards and provide the codes.",
			"Once we receive the codes, we'll restore your power immediately.",
		},
		InfoRequests: []string{"payment", "gift_card_codes"},
		RedFlags:     []string{"overdue", "shut off power", "gift card", "immediately", "urgent"},
	},
	{
		ID:         "apple_support_scam",
		Category:   CategoryScam,
		Difficulty: "medium",
		CallerName: "Apple Technician",
		Company:    "Apple Support",
		Phone:      "+1 (408) 555-0204",
		Opening:    "Hi, this is Apple Support. We've detected suspicious activity on your iCloud account from a foreign location. Your account has been flagged for security. Can you confirm your Apple ID email address so I can secure it?",
		Followups: []string{
			"What's your Apple ID password to verify ownership?",
			"I'm going to need to request a verification code. What's the phone number associated with your Apple ID?",
		},
		InfoRequests: []string{"email", "password", "phone"},
		RedFlags:     []string{"suspicious activity", "foreign location", "verify", "iCloud"},
	},
	{
		ID:         "medicare_fraud",
		Category:   CategoryScam,
		Difficulty: "medium",
		CallerName: "Medicare Specialist",
		Company:    "Medicare Benefits",
		Phone:      "+1 (800) 555-0205",
		Opening:    "Hi, this is Medicare calling. Your benefits have been suspended due to a billing issue. To restore your coverage immediately, I need your Medicare number and Social Security number to verify.",
		Followups: []string{
			"I also need your credit card to update your account information.",
			"Your benefits will be restored once we process this verification.",
		},
		InfoRequests: []string{"medicare_number", "ssn", "credit_card"},
		RedFlags:     []string{"suspended benefits", "immediately", "verify", "Medicare number"},
	},
	{
		ID:         "water_bill_scam",
		Category:   CategoryScam,
		Difficulty: "medium",
		CallerName: "City Water Department",
		Company:    "Water Services",
		Phone:      "+1 (555) 555-0206",
		Opening:    "Your water service will be disconnected today due to unpaid bills totaling $450. To prevent disconnection, we can accept immediate payment. What payment method do you prefer?",
		Followups: []string{
			"We accept wire transfer or Google Play cards.",
			"If payment isn't made within 1 hour, we'll send a technician to shut off your water.",
		},
		InfoRequests: []string{"payment"},
		RedFlags:     []string{"disconnection", "unpaid bills", "immediate payment", "within 1 hour"},
	},
	{
		ID:         "car_insurance_scam",
		Category:   CategoryScam,
		Difficulty: "medium",
		CallerName: "Insurance Agent",
		Company:    "Auto Insurance Company",
		Phone:      "+1 (555) 555-0207",
		Opening:    "Hi, this is your car insurance company calling. We have you on file for a claim from an accident. To process your $8,000 settlement, I need to verify some information. What's your driver's license number?",
		Followups: []string{
			"I also need your Social Security number and date of birth.",
			"For the payout, I'll need your bank account information.",
		},
		InfoRequests: []string{"license", "ssn", "birthdate", "bank"},
		RedFlags:     []string{"accident claim", "settlement", "verify", "payout"},
	},
	{
		ID:         "ebay_account_update",
		Category:   CategoryScam,
		Difficulty: "easy",
		CallerName: "eBay Account Team",
		Company:    "eBay",
		Phone:      "+1 (408) 555-0208",
		Opening:    "We're calling from eBay. Your account payment method has expired. To keep your account active and prevent suspension, we need to update your credit card information right now.",
		Followups: []string{
			"What's your credit card number and expiration date?",
			"I also need the 3-digit security code on the back.",
		},
		InfoRequests: []string{"credit_card", "expiration", "cvv"},
		RedFlags:     []string{"payment method expired", "account suspension", "right now"},
	},
	{
		ID:         "legitimate_call",
		Category:   CategoryLegitimate,
		Difficulty: "easy",
		CallerName: "Jennifer Murphy",
		Company:    "Your Bank",
		Phone:      "+1 (800) 555-0123",
		Opening:    "Hi, this is Jennifer Murphy from your bank. We're just doing a routine security check on your account. Nothing to worry about - we're not asking for any personal information. We just want to confirm you haven't reported any suspicious activity recently. Have you noticed anything unusual?",
		Followups: []string{
			"Great, thank you for confirming that. We also wanted to let you know about our new fraud protection service if you're interested.",
			"That's all we needed. Thank you for your time today. Have a great day!",
		},
		InfoRequests: []string{},
		RedFlags:     []string{},
	},
	{
		ID:         "legitimate_card_offer",
		Category:   CategoryLegitimate,
		Difficulty: "easy",
		CallerName: "Sarah Johnson",
		Company:    "Credit Card Services",
		Phone:      "+1 (800) 555-0211",
		Opening:    "Hi! This is Sarah Johnson from Credit Card Services. We're calling because you qualify for a premium credit card with 0% APR for 12 months. Would you like to hear more details about this offer?",
		Followups: []string{
			"The offer comes with no annual fee and excellent rewards. Are you interested?",
			"If not, no problem! Is there anything else I can help you with today?",
		},
		InfoRequests: []string{},
		RedFlags:     []string{},
	},
	{
		ID:         "legitimate_survey",
		Category:   CategoryLegitimate,
		Difficulty: "easy",
		CallerName: "Research Institute",
		Company:    "Market Research",
		Phone:      "+1 (555) 555-0212",
		Opening:    "Hello! We're conducting a brief market research survey and would appreciate your feedback. This will only take about 5 minutes. Do you have a few minutes to participate?",
		Followups: []string{
			"Great! We'll never ask for personal information. Just your opinions on some topics.",
			"Thank you so much for your time. Have a wonderful day!",
		},
		InfoRequests: []string{},
		RedFlags:     []string{},
	},
	{
		ID:         "legitimate_appointment_reminder",
		Category:   CategoryLegitimate,
		Difficulty: "easy",
		CallerName: "Dr. Smith Office",
		Company:    "Medical Office",
		Phone:      "+1 (555) 555-0213",
		Opening:    "Hi, this is calling from Dr. Smith's office. We're just reminding you that you have an appointment scheduled for tomorrow at 2 PM. Please call us back at this number if you need to reschedule.",
		Followups: []string{
			"We look forward to seeing you tomorrow!",
			"Thank you for being our patient!",
		},
		InfoRequests: []string{},
		RedFlags:     []string{},
	},
}
