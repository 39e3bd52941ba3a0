package domain

// Message is a fully rendered notification ready for the mail transport.
// The tracking token is embedded in HTMLBody as part of the beacon URL so a
// later beacon fetch can be attributed without a separate token table.
type Message struct {
	To            string `json:"to"`
	Subject       string `json:"subject"`
	HTMLBody      string `json:"html_body"`
	TextBody      string `json:"text_body"`
	TrackingToken string `json:"tracking_token"`
}
