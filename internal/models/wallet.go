package models

// WalletResult is one upstream lookup for one address. It lives for a single request.
type WalletResult struct {
	WalletAddress string  `json:"walletAddress"`
	Balance       float64 `json:"balance"`
	Claim         bool    `json:"claim"`
}

// Eligible reports whether the wallet still holds a meaningful unclaimed balance.
func (w WalletResult) Eligible() bool {
	return w.Balance > 1 && !w.Claim
}

type ProcessedResponse struct {
	FilteredWallets []WalletResult `json:"filteredWallets"`
	TotalBalance    float64        `json:"totalBalance"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
