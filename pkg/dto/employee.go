package dto

type CreateEmployee struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
