package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/harmonylane/studio-admin-api/pkg/errors"
)

// intParam parses a numeric path parameter. Non-numeric ids are a validation
// failure, not a lookup miss.
func intParam(c *gin.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid "+name+" parameter")
	}
	return value, nil
}
