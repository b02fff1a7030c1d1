package controllers

import (
	"net/http"

	"fitple/internal/models/request_models"
	"fitple/internal/services"
	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
)

type StoreController struct {
	storeService services.StoreServiceInterface
}

func NewStoreController(storeService services.StoreServiceInterface) *StoreController {
	return &StoreController{
		storeService: storeService,
	}
}

// CreateStore godoc
// @Summary Register a store for the calling owner
// @Tags Stores
// @Accept json
// @Produce json
// @Param request body request_models.StoreRequest true "Store payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/stores/owners [post]
func (s *StoreController) CreateStore(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	store, err := s.storeService.CreateStore(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, store, "매장 등록 성공")
}

// UpdateStore godoc
// @Summary Update a store owned by the caller
// @Tags Stores
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param request body request_models.StoreRequest true "Store payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/stores/owners/{storeId} [put]
func (s *StoreController) UpdateStore(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	storeID, ok := uuidParam(c, "storeId")
	if !ok {
		return
	}

	var req request_models.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	store, err := s.storeService.UpdateStore(c.Request.Context(), principal, storeID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, store, "매장 수정 성공")
}

// DeleteStore godoc
// @Summary Delete a store owned by the caller
// @Tags Stores
// @Param storeId path string true "Store ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/stores/owners/{storeId} [delete]
func (s *StoreController) DeleteStore(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	storeID, ok := uuidParam(c, "storeId")
	if !ok {
		return
	}

	if err := s.storeService.DeleteStore(c.Request.Context(), principal, storeID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "매장 삭제 성공")
}

func (s *StoreController) FindAll(c *gin.Context) {
	stores, err := s.storeService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stores, "매장 목록 조회 성공")
}

func (s *StoreController) FindByID(c *gin.Context) {
	storeID, ok := uuidParam(c, "storeId")
	if !ok {
		return
	}

	store, err := s.storeService.FindByID(c.Request.Context(), storeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, store, "매장 조회 성공")
}

func (s *StoreController) FindAllByOwner(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	stores, err := s.storeService.FindAllByOwner(c.Request.Context(), principal)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stores, "점주 매장 목록 조회 성공")
}

func (s *StoreController) FindOwnerStoreByID(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	storeID, ok := uuidParam(c, "storeId")
	if !ok {
		return
	}

	store, err := s.storeService.FindOwnerStoreByID(c.Request.Context(), principal, storeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, store, "점주 매장 조회 성공")
}
