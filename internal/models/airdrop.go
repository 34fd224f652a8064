package models

// AirdropResponse is the upstream airdrop_balance payload.
type AirdropResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    *AirdropData `json:"data"`
}

// AirdropData keeps balance and claim as pointers so an absent or null field
// can be told apart from a zero value.
type AirdropData struct {
	Balance    *float64           `json:"balance"`
	Multiplier float64            `json:"multiplier"`
	Extra      float64            `json:"extra"`
	Rules      map[string]float64 `json:"rules"`
	Claim      *bool              `json:"claim"`
}
