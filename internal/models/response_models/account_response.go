package response_models

import (
	"fitple/internal/models/db_models"
)

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Role         string `json:"role,omitempty"`
}

type ReadUserResponse struct {
	ID              string  `json:"id"`
	AccountID       string  `json:"accountId"`
	UserName        string  `json:"userName"`
	Nickname        string  `json:"nickname"`
	Email           string  `json:"email"`
	PhoneNumber     string  `json:"phoneNumber"`
	Balance         float64 `json:"balance"`
	UserPicture     string  `json:"userPicture"`
	Zipcode         string  `json:"zipcode"`
	MainAddress     string  `json:"mainAddress"`
	DetailedAddress string  `json:"detailedAddress"`
}

func NewReadUserResponse(u *db_models.User) ReadUserResponse {
	return ReadUserResponse{
		ID:              u.ID.String(),
		AccountID:       u.AccountID,
		UserName:        u.UserName,
		Nickname:        u.Nickname,
		Email:           u.Email,
		PhoneNumber:     u.PhoneNumber,
		Balance:         u.Balance,
		UserPicture:     u.UserPicture,
		Zipcode:         u.Zipcode,
		MainAddress:     u.MainAddress,
		DetailedAddress: u.DetailedAddress,
	}
}

type ReadOwnerResponse struct {
	ID                         string `json:"id"`
	AccountID                  string `json:"accountId"`
	OwnerName                  string `json:"ownerName"`
	Nickname                   string `json:"nickname"`
	Email                      string `json:"email"`
	OwnerPhoneNumber           string `json:"ownerPhoneNumber"`
	OwnerPicture               string `json:"ownerPicture"`
	BusinessRegistrationNumber string `json:"businessRegistrationNumber"`
	BusinessName               string `json:"businessName"`
	Zipcode                    string `json:"zipcode"`
	MainAddress                string `json:"mainAddress"`
	DetailedAddress            string `json:"detailedAddress"`
}

func NewReadOwnerResponse(o *db_models.Owner) ReadOwnerResponse {
	return ReadOwnerResponse{
		ID:                         o.ID.String(),
		AccountID:                  o.AccountID,
		OwnerName:                  o.OwnerName,
		Nickname:                   o.Nickname,
		Email:                      o.Email,
		OwnerPhoneNumber:           o.PhoneNumber,
		OwnerPicture:               o.OwnerPicture,
		BusinessRegistrationNumber: o.BusinessRegistrationNumber,
		BusinessName:               o.BusinessName,
		Zipcode:                    o.Zipcode,
		MainAddress:                o.MainAddress,
		DetailedAddress:            o.DetailedAddress,
	}
}

type TrainerResponse struct {
	ID             string  `json:"id"`
	TrainerName    string  `json:"trainerName"`
	TrainerPicture string  `json:"trainerPicture"`
	TrainerInfo    string  `json:"trainerInfo"`
	PtPrice        float64 `json:"ptPrice"`
	IsMembership   bool    `json:"isMembership"`
}
