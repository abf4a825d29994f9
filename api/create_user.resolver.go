package api

import (
	"roboadvisor/internal/apperrors"

	"github.com/gin-gonic/gin"
)

type createUserResponse struct {
	Username       string `json:"username"`
	AlreadyExisted bool   `json:"alreadyExisted"`
}

func (m ApiHandler) createUser(c *gin.Context) {
	username := c.Param("username")
	if err := validateUsername(username); err != nil {
		returnErrorJson(err, c)
		return
	}

	alreadyExisted, err := m.UserRepository.EnsureExists(m.Db, username)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, createUserResponse{
		Username:       username,
		AlreadyExisted: alreadyExisted,
	})
}

func validateUsername(username string) error {
	if username == "" {
		return apperrors.ValidationError{Reason: "username is required"}
	}
	if len(username) > 64 {
		return apperrors.ValidationError{Reason: "username must be <= 64 characters"}
	}
	return nil
}
