package request_models

type LoginRequest struct {
	AccountID string `json:"accountId" binding:"required,max=15"`
	Password  string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type UserSignupRequest struct {
	UserName                    string   `json:"userName" binding:"required,max=50"`
	Balance                     *float64 `json:"balance" binding:"required"`
	AccountID                   string   `json:"accountId" binding:"required,max=15"`
	Password                    string   `json:"password" binding:"required,min=8,max=255"`
	ConfirmPassword             string   `json:"confirmPassword" binding:"required,min=8,max=255"`
	Email                       string   `json:"email" binding:"required,email,max=255"`
	PhoneNumber                 string   `json:"phoneNumber" binding:"required,max=15"`
	ResidentRegistrationNumber  string   `json:"residentRegistrationNumber" binding:"max=13"`
	ForeignerRegistrationNumber string   `json:"foreignerRegistrationNumber" binding:"max=13"`
	IsForeigner                 bool     `json:"isForeigner"`
	Nickname                    string   `json:"nickname" binding:"max=255"`
}

type OwnerSignupRequest struct {
	OwnerName                   string `json:"ownerName" binding:"required,max=50"`
	ResidentRegistrationNumber  string `json:"residentRegistrationNumber" binding:"max=13"`
	ForeignerRegistrationNumber string `json:"foreignerRegistrationNumber" binding:"max=13"`
	IsForeigner                 bool   `json:"isForeigner"`
	AccountID                   string `json:"accountId" binding:"required,max=15"`
	Password                    string `json:"password" binding:"required,min=8,max=255"`
	ConfirmPassword             string `json:"confirmPassword" binding:"required,min=8,max=255"`
	Email                       string `json:"email" binding:"required,email,max=255"`
	OwnerPhoneNumber            string `json:"ownerPhoneNumber" binding:"required,max=15"`
	BusinessRegistrationNumber  string `json:"businessRegistrationNumber" binding:"required,max=10"`
	BusinessName                string `json:"businessName" binding:"required,max=255"`
	Zipcode                     string `json:"zipcode" binding:"required,max=10"`
	MainAddress                 string `json:"mainAddress" binding:"required,max=255"`
	DetailedAddress             string `json:"detailedAddress" binding:"required,max=255"`
	Nickname                    string `json:"nickname" binding:"max=255"`
}

type UpdateUserProfileRequest struct {
	Nickname        string `json:"nickname"`
	Zipcode         string `json:"zipcode"`
	MainAddress     string `json:"mainAddress"`
	DetailedAddress string `json:"detailedAddress"`
	UserPicture     string `json:"userPicture"`
	Password        string `json:"password" binding:"required"`
}

type UpdateOwnerProfileRequest struct {
	Nickname         string `json:"nickname"`
	Email            string `json:"email" binding:"omitempty,email"`
	OwnerPicture     string `json:"ownerPicture"`
	Zipcode          string `json:"zipcode"`
	MainAddress      string `json:"mainAddress"`
	DetailedAddress  string `json:"detailedAddress"`
	OwnerPhoneNumber string `json:"ownerPhoneNumber"`
	Password         string `json:"password" binding:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=255"`
}
