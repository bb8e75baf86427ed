package user

import "time"

type Address struct {
	Label       string `json:"label,omitempty"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	Pincode     string `json:"pincode"`
	IsDefault   bool   `json:"is_default"`
}

type User struct {
	ID           string
	FullName     string
	Mobile       string
	Email        string
	PasswordHash string
	Addresses    []Address
	CreatedAt    time.Time
}

type RegisterInput struct {
	FullName    string
	Mobile      string
	Email       string
	Password    string
	AddressLine string
	City        string
	Pincode     string
}
