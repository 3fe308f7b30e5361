package simulation

// VoiceProfile is one of exactly two fixed speech voices. The provider voice
// ids are ElevenLabs voices; the Google synthesizer maps Type instead.
type VoiceProfile struct {
	Type    string // "male" or "female"
	VoiceID string
	Name    string
}

var (
	VoiceMale   = VoiceProfile{Type: "male", VoiceID: "SOYHLrjzK2X1ezoPC6cr", Name: "Agent"}
	VoiceFemale = VoiceProfile{Type: "female", VoiceID: "pFZP5JQG7iQjIQuC4Bku", Name: "Agent"}
)

// scenario id -> voice type. Ids without an entry speak with the male voice.
var scenarioVoices = map[string]string{
	"paypal_scam":                 "male",
	"paypal_unusual_activity":     "female",
	"paypal_refund_scam":          "male",
	"microsoft_scam":              "male",
	"windows_defender_alert":      "female",
	"irs_scam":                    "male",
	"irs_arrest_warrant":          "female",
	"amazon_account_locked":       "female",
	"amazon_prime_scam":           "female",
	"google_account_compromised":  "female",
	"apple_id_locked":             "female",
	"lottery_prize_scam":          "male",
	"bank_fraud_alert":            "female",
	"prince_scam":                 "male",
	"inheritance_scam":            "female",
	"legitimate_call":             "female",
	"paypal_scam_variant_1":       "male",
	"microsoft_tech_support":      "female",
	"wells_fargo_scam":            "female",
	"social_security_scam":        "male",
	"tax_refund_scam":             "female",
	"apple_account_compromised":   "female",
	"google_account_alert":        "female",
	"facebook_security_alert":     "female",
	"mortgage_company_scam":       "male",
	"tech_support_virus":          "male",
	"emergency_grandparent_scam":  "male",
}

// VoiceFor maps a scenario id to its voice profile. Total: every input
// resolves to one of the two profiles.
func VoiceFor(scenarioID string) VoiceProfile {
	if scenarioVoices[scenarioID] == "female" {
		return VoiceFemale
	}
	return VoiceMale
}
