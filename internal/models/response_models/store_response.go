package response_models

import "fitple/internal/models/db_models"

type StoreResponse struct {
	ID            string `json:"id"`
	StoreName     string `json:"storeName"`
	Address       string `json:"address"`
	StreetAddress string `json:"streetAddress"`
	PostalCode    string `json:"postalCode"`
	StoreInfo     string `json:"storeInfo"`
	StoreHour     string `json:"storeHour"`
	StoreTel      string `json:"storeTel"`
	OwnerID       string `json:"ownerId"`
	CreatedAt     int64  `json:"createdAt"`
}

type StoreSimpleResponse struct {
	ID        string `json:"id"`
	StoreName string `json:"storeName"`
	Address   string `json:"address"`
	StoreTel  string `json:"storeTel"`
}

func NewStoreResponse(s *db_models.Store) StoreResponse {
	return StoreResponse{
		ID:            s.ID.String(),
		StoreName:     s.StoreName,
		Address:       s.Address,
		StreetAddress: s.StreetAddress,
		PostalCode:    s.PostalCode,
		StoreInfo:     s.StoreInfo,
		StoreHour:     s.StoreHour,
		StoreTel:      s.StoreTel,
		OwnerID:       s.OwnerID.String(),
		CreatedAt:     s.CreatedAt,
	}
}

func NewStoreSimpleResponse(s *db_models.Store) StoreSimpleResponse {
	return StoreSimpleResponse{
		ID:        s.ID.String(),
		StoreName: s.StoreName,
		Address:   s.Address,
		StoreTel:  s.StoreTel,
	}
}
