package domain

import "time"

type Customer struct {
	ID              int32      `json:"id"`
	Code            string     `json:"customer_code"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	LicenseNumber   string     `json:"license_number,omitempty"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty"`
	Country         string     `json:"country_of_residence,omitempty"`
	IsLoyaltyMember bool       `json:"is_loyalty_member"`
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

type CustomerUpdate struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Phone         *string
	LicenseNumber *string
	Country       *string
}

func (u *CustomerUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil &&
		u.Phone == nil && u.LicenseNumber == nil && u.Country == nil
}
