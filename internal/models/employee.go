package models

type Employee struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Disabled bool   `json:"disabled"`
}

const DefaultEmployeeColor = "#ffffff"

// EmployeeIDs returns the ids of employees in their original order.
func EmployeeIDs(employees []Employee) []int64 {
	ids := make([]int64, len(employees))
	for i, e := range employees {
		ids[i] = e.ID
	}
	return ids
}
