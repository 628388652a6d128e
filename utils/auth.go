package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/pelayanandata/portal-go/types"
	"github.com/pelayanandata/portal-go/workflow"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

func GetUserIDFromContext(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// ActorFromContext shapes session claims into the workflow actor.
func ActorFromContext(c *gin.Context) (workflow.Actor, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return workflow.Actor{}, err
	}
	return workflow.Actor{ID: claims.UserID, Role: claims.Role}, nil
}
