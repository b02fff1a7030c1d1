package request_models

type StoreRequest struct {
	StoreName     string `json:"storeName" binding:"required,max=255"`
	Address       string `json:"address"`
	StreetAddress string `json:"streetAddress"`
	PostalCode    string `json:"postalCode"`
	StoreInfo     string `json:"storeInfo"`
	StoreHour     string `json:"storeHour"`
	StoreTel      string `json:"storeTel"`
}
