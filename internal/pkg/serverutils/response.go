package serverutils

type BaseResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(message string, data interface{}) *BaseResponse {
	return &BaseResponse{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) *BaseResponse {
	return &BaseResponse{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ErrorResponseWithDetails attaches structured details (validation failures, error causes).
func ErrorResponseWithDetails(code int, message string, details interface{}) *BaseResponse {
	res := ErrorResponse(code, message)
	res.Details = details
	return res
}
