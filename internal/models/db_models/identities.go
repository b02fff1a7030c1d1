package db_models

type User struct {
	BaseModel
	Account
	UserName                    string  `json:"userName"`
	Balance                     float64 `json:"balance"`
	ResidentRegistrationNumber  string  `json:"-"`
	ForeignerRegistrationNumber string  `json:"-"`
	IsForeigner                 bool    `json:"isForeigner"`
	UserPicture                 string  `json:"userPicture"`
	Zipcode                     string  `json:"zipcode"`
	MainAddress                 string  `json:"mainAddress"`
	DetailedAddress             string  `json:"detailedAddress"`
}

type Owner struct {
	BaseModel
	Account
	OwnerName                   string `json:"ownerName"`
	ResidentRegistrationNumber  string `json:"-"`
	ForeignerRegistrationNumber string `json:"-"`
	IsForeigner                 bool   `json:"isForeigner"`
	OwnerPicture                string `json:"ownerPicture"`
	BusinessRegistrationNumber  string `json:"businessRegistrationNumber"`
	BusinessName                string `json:"businessName"`
	Zipcode                     string `json:"zipcode"`
	MainAddress                 string `json:"mainAddress"`
	DetailedAddress             string `json:"detailedAddress"`

	Stores []Store `gorm:"foreignKey:OwnerID" json:"-"`
}

type Trainer struct {
	BaseModel
	Account
	TrainerName    string  `json:"trainerName"`
	TrainerInfo    string  `json:"trainerInfo"`
	TrainerPicture string  `json:"trainerPicture"`
	PtPrice        float64 `json:"ptPrice"`
	IsMembership   bool    `json:"isMembership"`
}
