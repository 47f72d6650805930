package models

type Team struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Disabled       bool   `json:"disabled"`
}

const (
	DefaultTeamPrimaryColor   = "#ffffff"
	DefaultTeamSecondaryColor = "#bbbbbb"
)
