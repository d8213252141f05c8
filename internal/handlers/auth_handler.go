package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/reservation-api/internal/auth"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/httpresp"
	authuc "github.com/BruksfildServices01/reservation-api/internal/usecase/auth"
)

type AuthHandler struct {
	login  *authuc.Login
	signup *authuc.Signup
}

func NewAuthHandler(login *authuc.Login, signup *authuc.Signup) *AuthHandler {
	return &AuthHandler{login: login, signup: signup}
}

// --------- Requests ---------

type LoginRequest struct {
	LoginID  string `json:"loginId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CustomerSignupRequest struct {
	LoginID  string `json:"loginId" binding:"required,min=4,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type RestaurantSignupRequest struct {
	LoginID  string `json:"loginId" binding:"required,min=4,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"omitempty,max=100"`
	Phone    string `json:"phone" binding:"omitempty,phone"`
}

// --------- Handlers ---------

func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	h.doLogin(c, auth.RoleCustomer, httpresp.MsgCustomerLogin)
}

func (h *AuthHandler) RestaurantLogin(c *gin.Context) {
	h.doLogin(c, auth.RoleRestaurant, httpresp.MsgRestaurantLogin)
}

func (h *AuthHandler) doLogin(c *gin.Context, role auth.Role, message string) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	token, err := h.login.Execute(c.Request.Context(), role, req.LoginID, req.Password)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, message, token)
}

func (h *AuthHandler) CustomerSignup(c *gin.Context) {
	var req CustomerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	h.doSignup(c, auth.RoleCustomer, authuc.SignupInput{
		LoginID:  req.LoginID,
		Password: req.Password,
	})
}

func (h *AuthHandler) RestaurantSignup(c *gin.Context) {
	var req RestaurantSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	h.doSignup(c, auth.RoleRestaurant, authuc.SignupInput{
		LoginID:  req.LoginID,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
}

func (h *AuthHandler) doSignup(c *gin.Context, role auth.Role, in authuc.SignupInput) {
	res, err := h.signup.Execute(c.Request.Context(), role, in)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.Created(c, httpresp.MsgSignup, res)
}
