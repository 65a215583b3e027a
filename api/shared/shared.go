package shared

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReturnCode defines the type defines to identify return codes
type ReturnCode string

const (
	// ReturnCodeSuccess defines a successful request
	ReturnCodeSuccess ReturnCode = "successful"

	// ReturnCodeInternalError defines a request which hasn't been executed successfully due to an internal error
	ReturnCodeInternalError ReturnCode = "internal_issue"

	// ReturnCodeRequestError defines a request which hasn't been executed successfully due to a bad request received
	ReturnCodeRequestError ReturnCode = "bad_request"
)

// GenericAPIResponse defines the structure of all responses on API endpoints
type GenericAPIResponse struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error"`
	Code  ReturnCode  `json:"code"`
}

// RespondWithSuccess sends a success response with the provided payload
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(
		http.StatusOK,
		GenericAPIResponse{
			Data:  data,
			Error: "",
			Code:  ReturnCodeSuccess,
		},
	)
}

// RespondWithValidationError sends a bad-request response for malformed input
func RespondWithValidationError(c *gin.Context, err error, innerErr error) {
	c.JSON(
		http.StatusBadRequest,
		GenericAPIResponse{
			Data:  nil,
			Error: fmt.Sprintf("%s: %s", err.Error(), innerErr.Error()),
			Code:  ReturnCodeRequestError,
		},
	)
}

// RespondWithInternalError sends an internal-error response
func RespondWithInternalError(c *gin.Context, err error, innerErr error) {
	c.JSON(
		http.StatusInternalServerError,
		GenericAPIResponse{
			Data:  nil,
			Error: fmt.Sprintf("%s: %s", err.Error(), innerErr.Error()),
			Code:  ReturnCodeInternalError,
		},
	)
}
