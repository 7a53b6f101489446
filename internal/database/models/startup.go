package models

// Startup represents a client startup raising money through the team
type Startup struct {
	StartupID         string `json:"startup_id"`
	StartupName       string `json:"startup_name"`
	Status            Status `json:"status"`
	PitchDeckURL      string `json:"pitch_deck_url"`
	DataRoomURL       string `json:"data_room_url"`
	PLURL             string `json:"pl_url"`
	InvestmentMemoURL string `json:"investment_memo_url"`
	Notes             string `json:"notes"`
}
